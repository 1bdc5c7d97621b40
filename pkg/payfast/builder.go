// payfast-gateway/pkg/payfast/builder.go
package payfast

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/example/payfast-gateway/pkg/config"
	"github.com/example/payfast-gateway/pkg/errors"
)

// PaymentRequest is the immutable input to BuildPaymentURL.
// https://developers.payfast.co.za/docs#step_1_form_fields
type PaymentRequest struct {
	Name         string
	Surname      string
	Email        string
	MobileNumber string // optional; omitted from the signature when blank
	ItemName     string
	Amount       decimal.Decimal
	ConfirmEmail bool
}

// BuildPaymentURL assembles the redirect URL for the PayFast process page:
// sorted form fields, then the computed signature appended as the final
// 'signature' parameter. The passphrase never appears in the URL; it only
// participates inside Sign as the trailing canonical-string pair.
func BuildPaymentURL(req PaymentRequest, cfg config.Merchant) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	fields := NewFieldSet()
	fields.Set("merchant_id", cfg.MerchantID)
	fields.Set("merchant_key", cfg.MerchantKey)
	fields.Set("return_url", cfg.ReturnURL)
	fields.Set("cancel_url", cfg.CancelURL)
	fields.Set("notify_url", cfg.NotifyURL)
	fields.Set("name_first", req.Name)
	fields.Set("name_last", req.Surname)
	fields.Set("email_address", req.Email)
	fields.Set("amount", req.Amount.StringFixed(2))
	fields.Set("item_name", req.ItemName)
	fields.Set("email_confirmation", boolFlag(req.ConfirmEmail))
	fields.Set("confirmation_address", req.Email)

	// A blank cell_number must be omitted entirely. Including it empty would
	// change the canonical string and the signature PayFast recomputes.
	if strings.TrimSpace(req.MobileNumber) != "" {
		fields.Set("cell_number", req.MobileNumber)
	}

	sig := Sign(fields, cfg.Passphrase)

	base := cfg.BaseURL()
	if base == "" {
		return "", errors.New(errors.CodeURLBuild, "gateway base URL is empty")
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteByte('?')
	b.WriteString(CanonicalString(fields, "")) // query and hash input share one encoding
	b.WriteByte('&')
	b.WriteString(SignatureField)
	b.WriteByte('=')
	b.WriteString(sig)
	return b.String(), nil
}

func boolFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
