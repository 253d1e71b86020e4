package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a payment entry was settled.
type PaymentMethod string

const (
	MethodCash          PaymentMethod = "cash"
	MethodOnlineBanking PaymentMethod = "online_banking"
	MethodCheque        PaymentMethod = "cheque"
	MethodToken         PaymentMethod = "token"

	// methodBank is the legacy spelling of MethodOnlineBanking.
	methodBank PaymentMethod = "bank"
)

// ErrBalanceMismatch is returned by CheckBalance when the stored balance does
// not equal amount minus the received payments.
var ErrBalanceMismatch = errors.New("record: balance does not match amount minus payments")

// ErrReceivedMismatch is returned by CheckReceived when the stored amount
// received differs from the sum of the payment entries.
var ErrReceivedMismatch = errors.New("record: amount received does not match payments")

// PaymentEntry is one line of the payment breakdown.
type PaymentEntry struct {
	Method PaymentMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	Date   Date            `json:"date,omitempty"`

	// Detail is free text for online banking and token payments.
	Detail string `json:"bankDetails,omitempty"`

	ChequeNo     string `json:"chequeNo,omitempty"`
	BankName     string `json:"bankName,omitempty"`
	AccountTitle string `json:"accountTitle,omitempty"`
}

// Normalized returns the method in canonical lower-case form, mapping the
// legacy "bank" alias to online banking.
func (p PaymentEntry) Normalized() PaymentMethod {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(string(p.Method))))
	if m == methodBank {
		return MethodOnlineBanking
	}
	return m
}

// Description is the label printed in the payment table's first column.
func (p PaymentEntry) Description() string {
	switch p.Normalized() {
	case MethodCash:
		return "Cash"
	case MethodOnlineBanking:
		return "Online Banking"
	case MethodToken:
		return "Token"
	case MethodCheque:
		return "Cheque"
	case "":
		return "—"
	default:
		return string(p.Method)
	}
}

// Details is the text printed in the payment table's details column.
func (p PaymentEntry) Details() string {
	switch p.Normalized() {
	case MethodOnlineBanking, MethodToken:
		return p.Detail
	case MethodCheque:
		var parts []string
		if p.ChequeNo != "" {
			parts = append(parts, "No: "+p.ChequeNo)
		}
		if p.BankName != "" {
			parts = append(parts, "Bank: "+p.BankName)
		}
		if p.AccountTitle != "" {
			parts = append(parts, "Title: "+p.AccountTitle)
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// EffectiveDate returns the entry's date, or fallback when the entry has none.
func (p PaymentEntry) EffectiveDate(fallback Date) Date {
	if !p.Date.IsZero() {
		return p.Date
	}
	return fallback
}

// ReceivedPayments returns the entries with a positive amount, in order.
func (d *Document) ReceivedPayments() []PaymentEntry {
	out := make([]PaymentEntry, 0, len(d.Payments))
	for _, p := range d.Payments {
		if p.Amount.IsPositive() {
			out = append(out, p)
		}
	}
	return out
}

// TotalReceived sums the positive payment entries.
func (d *Document) TotalReceived() decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.ReceivedPayments() {
		total = total.Add(p.Amount)
	}
	return total
}

// CheckBalance verifies the upstream contract
// balance = amount - sum(payment amounts). The engine never recomputes the
// balance; it only displays what it was given.
func (d *Document) CheckBalance() error {
	want := d.Amount.Sub(d.TotalReceived())
	if !d.Balance.Equal(want) {
		return fmt.Errorf("%w: have %s, want %s", ErrBalanceMismatch, d.Balance, want)
	}
	return nil
}

// CheckReceived verifies a stored amount received against TotalReceived.
// A zero amount received means none was stored. Documents always print
// TotalReceived.
func (d *Document) CheckReceived() error {
	if d.AmountReceived.IsZero() {
		return nil
	}
	if want := d.TotalReceived(); !d.AmountReceived.Equal(want) {
		return fmt.Errorf("%w: have %s, want %s", ErrReceivedMismatch, d.AmountReceived, want)
	}
	return nil
}

// Settlement is the closing line of the payment summary.
type Settlement struct {
	Label  string
	Amount decimal.Decimal // always non-negative
}

// Settlement labels a negative balance as an excess rather than a due amount.
func (d *Document) Settlement() Settlement {
	if d.Balance.IsNegative() {
		return Settlement{Label: "Excess Received", Amount: d.Balance.Abs()}
	}
	return Settlement{Label: "Balance Due", Amount: d.Balance}
}
