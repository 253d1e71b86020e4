package record

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// TokenReceipt acknowledges an advance (token) paid against a car before the
// sale is completed.
type TokenReceipt struct {
	ID        string   `json:"id"`
	Showroom  Showroom `json:"showroom"`
	CreatedAt Date     `json:"createdAt"`

	AmountReceived decimal.Decimal `json:"amountReceived"`
	FromName       string          `json:"fromMrMrs,omitempty"`
	FatherName     string          `json:"fatherName,omitempty"`

	// ChassisNo identifies the car the token was paid for.
	ChassisNo      string `json:"onBehalfOfSellingCar,omitempty"`
	Make           string `json:"make,omitempty"`
	Model          string `json:"model,omitempty"`
	RegistrationNo string `json:"registrationNo,omitempty"`
	Year           string `json:"yearOfManufacture,omitempty"`
	Colour         string `json:"colour,omitempty"`

	TotalPrice       decimal.Decimal `json:"totalPrice"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	Note             string          `json:"note,omitempty"`

	Purchaser Party `json:"purchaser"`
	Seller    Party `json:"seller"`
}

// DecodeTokenReceipt reads a JSON encoded TokenReceipt.
func DecodeTokenReceipt(r io.Reader) (*TokenReceipt, error) {
	var t TokenReceipt
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("record: decoding token receipt: %w", err)
	}
	return &t, nil
}

// ReceivedFrom is the payer line, with the father name when known.
func (t *TokenReceipt) ReceivedFrom() string {
	return WithFather(t.FromName, t.FatherName)
}
