// services/payfast-api/handlers/types.go
package handlers

import "github.com/shopspring/decimal"

type PaymentIn struct {
	Name         string          `json:"name"`
	Surname      string          `json:"surname"`
	Email        string          `json:"email"`
	MobileNumber string          `json:"mobile_number,omitempty"` // optional
	ItemName     string          `json:"item_name"`
	Amount       decimal.Decimal `json:"amount"`
	ConfirmEmail bool            `json:"confirm_email"`
}

type PaymentURLOut struct {
	PaymentURL string `json:"payment_url"`
}

type IPNOut struct {
	Valid       bool   `json:"valid"`
	PFPaymentID string `json:"pf_payment_id,omitempty"`
}
