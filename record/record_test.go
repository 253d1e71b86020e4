package record

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pkr(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestFormatCNIC(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"4210112345671", "42101-1234567-1"},
		{"42101-1234567-1", "42101-1234567-1"},
		{"42101 1234567 1", "42101-1234567-1"},
		{"123456789012", "123456789012"},
		{"12345678901234", "12345678901234"},
		{"", ""},
		{"n/a", "n/a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCNIC(tt.in), "FormatCNIC(%q)", tt.in)
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "PKR 2,500,000", FormatMoney(pkr(2500000)))
	assert.Equal(t, "PKR 0", FormatMoney(decimal.Zero))
	assert.Equal(t, "PKR 1,234.5", FormatMoney(decimal.RequireFromString("1234.50")))
	assert.Equal(t, "PKR -5,000", FormatMoney(pkr(-5000)))
}

func TestPaymentDescriptions(t *testing.T) {
	tests := []struct {
		name          string
		entry         PaymentEntry
		desc, details string
	}{
		{"cash", PaymentEntry{Method: MethodCash, Detail: "ignored"}, "Cash", ""},
		{"online", PaymentEntry{Method: MethodOnlineBanking, Detail: "IBFT 991"}, "Online Banking", "IBFT 991"},
		{"legacy bank alias", PaymentEntry{Method: "Bank", Detail: "HBL"}, "Online Banking", "HBL"},
		{"token", PaymentEntry{Method: MethodToken, Detail: "advance"}, "Token", "advance"},
		{"cheque full", PaymentEntry{Method: MethodCheque, ChequeNo: "001", BankName: "MCB", AccountTitle: "A. Khan"}, "Cheque", "No: 001, Bank: MCB, Title: A. Khan"},
		{"cheque partial", PaymentEntry{Method: MethodCheque, BankName: "MCB"}, "Cheque", "Bank: MCB"},
		{"unknown", PaymentEntry{Method: "barter"}, "barter", ""},
		{"empty", PaymentEntry{}, "—", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.desc, tt.entry.Description())
			assert.Equal(t, tt.details, tt.entry.Details())
		})
	}
}

func TestTotalsAndBalanceContract(t *testing.T) {
	d := &Document{
		Amount: pkr(3000000),
		Payments: []PaymentEntry{
			{Method: MethodCash, Amount: pkr(1000000)},
			{Method: MethodCheque, Amount: pkr(1500000)},
			{Method: MethodToken, Amount: decimal.Zero},
		},
		Balance: pkr(500000),
	}
	assert.True(t, d.TotalReceived().Equal(pkr(2500000)))
	assert.Len(t, d.ReceivedPayments(), 2)
	require.NoError(t, d.CheckBalance())

	d.Balance = pkr(1)
	assert.ErrorIs(t, d.CheckBalance(), ErrBalanceMismatch)
}

func TestCheckReceived(t *testing.T) {
	d := &Document{
		Payments: []PaymentEntry{
			{Method: MethodCash, Amount: pkr(1000000)},
			{Method: MethodCheque, Amount: pkr(1500000)},
		},
	}
	require.NoError(t, d.CheckReceived(), "no stored amount")

	d.AmountReceived = pkr(2500000)
	require.NoError(t, d.CheckReceived())

	d.AmountReceived = pkr(1000000)
	err := d.CheckReceived()
	assert.ErrorIs(t, err, ErrReceivedMismatch)
	assert.Contains(t, err.Error(), "have 1000000, want 2500000")
}

func TestSettlement(t *testing.T) {
	due := (&Document{Balance: pkr(250)}).Settlement()
	assert.Equal(t, "Balance Due", due.Label)
	assert.True(t, due.Amount.Equal(pkr(250)))

	excess := (&Document{Balance: pkr(-250)}).Settlement()
	assert.Equal(t, "Excess Received", excess.Label)
	assert.True(t, excess.Amount.Equal(pkr(250)))
}

func TestSingleCashPaymentScenario(t *testing.T) {
	d := &Document{
		Amount:   pkr(2500000),
		Payments: []PaymentEntry{{Method: MethodCash, Amount: pkr(2500000)}},
		Balance:  decimal.Zero,
	}
	assert.True(t, d.TotalReceived().Equal(pkr(2500000)))
	require.NoError(t, d.CheckBalance())
	assert.Equal(t, "Balance Due", d.Settlement().Label)
}

func TestTitleVariants(t *testing.T) {
	d := &Document{}
	assert.Equal(t, TitleDeliveryOrder, d.TitleOrDefault())
	assert.False(t, d.IsDelivery())
	assert.False(t, d.IsPurchase())

	d.Title = "Vehicle Purchase Order"
	assert.True(t, d.IsPurchase())
	assert.False(t, d.IsDelivery())

	d.Title = TitleDeliveryOrder
	assert.True(t, d.IsDelivery())
}

func TestPartyFallbacks(t *testing.T) {
	d := &Document{
		Showroom:  Showroom{Name: "Prime Motors", OwnerName: "Bilal", Address: "Shahrah-e-Faisal", Phone: "021-111", NIC: "4210112345671"},
		CreatedBy: Operator{Name: "Operator One", Phone: "0300"},
		Owner:     Party{FatherName: "Aslam"},
	}
	owner := d.OwnerParty()
	assert.Equal(t, "Prime Motors", owner.Name)
	assert.Equal(t, "4210112345671", owner.CNIC)
	assert.Equal(t, "Shahrah-e-Faisal", owner.Address)

	seller := d.SellerParty()
	assert.Equal(t, "Bilal", seller.Name)
	assert.Equal(t, "Aslam", seller.FatherName)

	agent := d.AgentParty()
	assert.Equal(t, "Operator One", agent.Name)
	assert.Equal(t, "0300", agent.Phone)
	assert.Equal(t, "Operator One", d.Salesman())
}

func TestIsCarMarkaz(t *testing.T) {
	assert.True(t, Showroom{Name: "Car Markaz"}.IsCarMarkaz())
	assert.True(t, Showroom{Name: "  CAR  markaz Karachi"}.IsCarMarkaz())
	assert.False(t, Showroom{Name: "Car Mart"}.IsCarMarkaz())
}

func TestEffectiveDate(t *testing.T) {
	tx := NewDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	own := NewDate(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, tx, PaymentEntry{}.EffectiveDate(tx))
	assert.Equal(t, own, PaymentEntry{Date: own}.EffectiveDate(tx))
}

func TestDecode(t *testing.T) {
	in := `{
		"id": "66f1c2",
		"documentTitle": "VEHICLE PURCHASE ORDER",
		"transactionDate": "2025-05-04T10:00:00Z",
		"amount": 2500000,
		"balance": "0",
		"paymentMethods": [{"method": "cash", "amount": 2500000}],
		"vehicle": {"make": "Toyota", "hp": "1300cc", "cplcVerification": "C-19"},
		"forCarDealers": true
	}`
	d, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "66f1c2", d.ID)
	assert.True(t, d.IsPurchase())
	assert.True(t, d.ForDealers)
	assert.True(t, d.HasCPLC())
	assert.Equal(t, "1300cc", d.Vehicle.EngineCapacity)
	require.NoError(t, d.CheckBalance())

	_, err = Decode(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestDecodeTokenReceipt(t *testing.T) {
	in := `{"id":"t1","fromMrMrs":"Ahmed","fatherName":"Rashid","amountReceived":50000,"totalPrice":900000,"remainingBalance":850000,"createdAt":"2025-01-02T00:00:00Z"}`
	tr, err := DecodeTokenReceipt(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "Ahmed S/O Rashid", tr.ReceivedFrom())
	assert.True(t, tr.TotalPrice.Sub(tr.AmountReceived).Equal(tr.RemainingBalance))
}
