// Package record defines the fully resolved, denormalized input of the
// document engine: one transaction joined with its sale/purchase account,
// vehicle, showroom branding and the operator who created it.
//
// Records are read-only for the duration of a render. Every field is
// optional; absent values render as empty strings.
package record

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Document titles produced by the back office.
const (
	TitleDeliveryOrder = "VEHICLE DELIVERY ORDER"
	TitlePurchaseOrder = "VEHICLE PURCHASE ORDER"
	TitleTokenReceipt  = "TOKEN RECEIPT"
)

// Document is one delivery order or purchase order.
type Document struct {
	ID            string `json:"id"`
	ReceiptNumber string `json:"receiptNumber,omitempty"`
	Title         string `json:"documentTitle,omitempty"`
	Type          string `json:"type,omitempty"` // sale or purchase
	Date          Date   `json:"transactionDate,omitempty"`
	DeliveryTime  string `json:"deliveryTime,omitempty"`

	Showroom  Showroom `json:"showroom"`
	CreatedBy Operator `json:"createdBy"`
	Vehicle   Vehicle  `json:"vehicle"`

	Owner     Party `json:"owner"`
	Seller    Party `json:"seller"`
	Purchaser Party `json:"purchaser"`
	Agent     Party `json:"agent"`

	SalesmanName           string `json:"salesmanName,omitempty"`
	PurchaserSalesmanName  string `json:"purchaserSalesmanName,omitempty"`
	SellerBiometricDate    Date   `json:"sellerBiometricDate,omitempty"`
	PurchaserBiometricDate Date   `json:"purchaserBiometricDate,omitempty"`

	Amount         decimal.Decimal `json:"amount"`
	Payments       []PaymentEntry  `json:"paymentMethods,omitempty"`
	AmountReceived decimal.Decimal `json:"amountReceived"`
	Balance        decimal.Decimal `json:"balance"`

	DocumentDetails []string `json:"documentDetails,omitempty"`
	Remarks         string   `json:"remarks,omitempty"`
	Notes           string   `json:"notes,omitempty"`

	// ForDealers selects the dealer layout instead of the standard
	// seller/purchaser signature block.
	ForDealers bool `json:"forCarDealers,omitempty"`
}

// Party is a natural person named on a document.
type Party struct {
	Name       string `json:"name,omitempty"`
	FatherName string `json:"fatherName,omitempty"`
	CNIC       string `json:"cnic,omitempty"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// Operator is the back-office user who created the transaction.
type Operator struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	CNIC    string `json:"cnic,omitempty"`
}

// Showroom carries branding for the header and footer.
type Showroom struct {
	ID             string      `json:"id,omitempty"`
	Name           string      `json:"name,omitempty"`
	Address        string      `json:"address,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	OwnerName      string      `json:"ownerName,omitempty"`
	CNIC           string      `json:"cnic,omitempty"`
	NIC            string      `json:"nic,omitempty"`
	LogoPath       string      `json:"logoPath,omitempty"`
	LetterheadPath string      `json:"letterheadPath,omitempty"`
	Social         SocialLinks `json:"socialLinks"`
}

// SocialLinks are printed in the footer of unbranded showrooms.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Vehicle describes the car being sold or bought.
type Vehicle struct {
	Make                string `json:"make,omitempty"`
	Model               string `json:"model,omitempty"`
	Color               string `json:"color,omitempty"`
	ChassisNo           string `json:"chassisNo,omitempty"`
	EngineNo            string `json:"engineNo,omitempty"`
	RegistrationNo      string `json:"registrationNo,omitempty"`
	DateOfRegistration  Date   `json:"dateOfRegistration,omitempty"`
	EngineCapacity      string `json:"hp,omitempty"`
	YearOfManufacturing string `json:"yearOfManufacturing,omitempty"`

	RegistrationBookNo   string `json:"registrationBookNo,omitempty"`
	SalesCertificateNo   string `json:"salesCertificateBillOfEntryNo,omitempty"`
	SalesCertificateDate Date   `json:"salesCertificateDate,omitempty"`
	InvoiceNo            string `json:"invoiceNo,omitempty"`
	InvoiceDate          Date   `json:"invoiceDate,omitempty"`

	CPLCVerification string `json:"cplcVerification,omitempty"`
	CPLCDate         Date   `json:"cplcDate,omitempty"`
	CPLCTime         string `json:"cplcTime,omitempty"`
}

// Decode reads a JSON encoded Document.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("record: decoding document: %w", err)
	}
	return &d, nil
}

// TitleOrDefault returns the document title, defaulting to a delivery order.
func (d *Document) TitleOrDefault() string {
	if t := strings.TrimSpace(d.Title); t != "" {
		return t
	}
	return TitleDeliveryOrder
}

// IsDelivery reports whether the title names a delivery document.
func (d *Document) IsDelivery() bool {
	return strings.Contains(strings.ToUpper(d.Title), "DELIVERY")
}

// IsPurchase reports whether the title names a purchase document.
func (d *Document) IsPurchase() bool {
	return strings.Contains(strings.ToUpper(d.Title), "PURCHASE")
}

// HasCPLC reports whether a CPLC verification value is present.
func (d *Document) HasCPLC() bool {
	return strings.TrimSpace(d.Vehicle.CPLCVerification) != ""
}

// OwnerParty returns the registered owner, falling back to the showroom's
// own details for fields that were left empty.
func (d *Document) OwnerParty() Party {
	s := d.Showroom
	return Party{
		Name:       first(d.Owner.Name, s.Name, s.OwnerName),
		FatherName: d.Owner.FatherName,
		CNIC:       first(d.Owner.CNIC, s.CNIC, s.NIC),
		Address:    first(d.Owner.Address, s.Address),
		Phone:      first(d.Owner.Phone, s.Phone),
	}
}

// SellerParty returns the seller, falling back to the owner.
func (d *Document) SellerParty() Party {
	o := d.OwnerParty()
	s := d.Showroom
	return Party{
		Name:       first(d.Seller.Name, d.Owner.Name, s.OwnerName, s.Name),
		FatherName: first(d.Seller.FatherName, d.Owner.FatherName),
		CNIC:       first(d.Seller.CNIC, d.Owner.CNIC, s.NIC, s.CNIC),
		Address:    first(d.Seller.Address, o.Address),
		Phone:      first(d.Seller.Phone, o.Phone),
	}
}

// AgentParty returns the agent, falling back to the creating operator.
func (d *Document) AgentParty() Party {
	c := d.CreatedBy
	return Party{
		Name:    first(d.Agent.Name, c.Name),
		CNIC:    first(d.Agent.CNIC, c.CNIC),
		Address: first(d.Agent.Address, c.Address),
		Phone:   first(d.Agent.Phone, c.Phone),
	}
}

// Salesman returns the selling side's salesman, falling back to the operator.
func (d *Document) Salesman() string {
	return first(d.SalesmanName, d.CreatedBy.Name)
}

// IsCarMarkaz reports whether the showroom uses the Car Markaz branding.
// Case and whitespace in the name are ignored.
func (s Showroom) IsCarMarkaz() bool {
	compact := strings.Join(strings.Fields(strings.ToLower(s.Name)), "")
	return strings.Contains(compact, "carmarkaz")
}

// Exists reports whether any showroom information was resolved.
func (s Showroom) Exists() bool {
	return s.Name != "" || s.ID != ""
}

// WithFather appends the "S/O" (son of) suffix when a father name is known.
func WithFather(name, father string) string {
	if father == "" {
		return name
	}
	return name + " S/O " + father
}

func first(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
