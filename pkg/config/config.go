// payfast-gateway/pkg/config/config.go
package config

import (
	"os"
	"strconv"

	"github.com/example/payfast-gateway/pkg/errors"
)

// Merchant holds the PayFast merchant settings. Loaded once at startup and
// passed by value into whatever needs it; nothing in pkg/payfast reads the
// environment on its own.
type Merchant struct {
	MerchantID  string
	MerchantKey string
	Passphrase  string

	ProcessURL string
	SandboxURL string
	ReturnURL  string
	CancelURL  string
	NotifyURL  string

	UseSandbox bool
}

// BaseURL picks the gateway endpoint for the active environment.
func (m Merchant) BaseURL() string {
	if m.UseSandbox {
		return m.SandboxURL
	}
	return m.ProcessURL
}

// Validate reports the first missing required setting. MerchantID and
// MerchantKey have no workable default; everything else either has one or is
// checked downstream.
func (m Merchant) Validate() error {
	if m.MerchantID == "" {
		return errors.New(errors.CodeConfigMissing, "PAYFAST_MERCHANT_ID is not set")
	}
	if m.MerchantKey == "" {
		return errors.New(errors.CodeConfigMissing, "PAYFAST_MERCHANT_KEY is not set")
	}
	return nil
}

// MerchantFromEnv reads the PAYFAST_* variables. Call Validate before use.
func MerchantFromEnv() Merchant {
	return Merchant{
		MerchantID:  os.Getenv("PAYFAST_MERCHANT_ID"),
		MerchantKey: os.Getenv("PAYFAST_MERCHANT_KEY"),
		Passphrase:  os.Getenv("PAYFAST_PASSPHRASE"),
		ProcessURL:  getenv("PAYFAST_URL", "https://www.payfast.co.za/eng/process"),
		SandboxURL:  getenv("PAYFAST_SANDBOX_URL", "https://sandbox.payfast.co.za/eng/process"),
		ReturnURL:   os.Getenv("PAYFAST_RETURN_URL"),
		CancelURL:   os.Getenv("PAYFAST_CANCEL_URL"),
		NotifyURL:   os.Getenv("PAYFAST_NOTIFY_URL"),
		UseSandbox:  getbool("USE_PAYFAST_SANDBOX", true),
	}
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getbool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}
