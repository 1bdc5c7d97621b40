// services/payfast-api/handlers/payfast_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/payfast-gateway/pkg/config"
	"github.com/example/payfast-gateway/pkg/envelope"
	"github.com/example/payfast-gateway/pkg/payfast"
)

func testDeps() Deps {
	return Deps{Cfg: config.Merchant{
		MerchantID:  "10000100",
		MerchantKey: "46f0cd694581a",
		Passphrase:  "securepassphrase",
		ProcessURL:  "https://www.payfast.co.za/eng/process",
		SandboxURL:  "https://sandbox.payfast.co.za/eng/process",
		ReturnURL:   "https://example.com/return",
		CancelURL:   "https://example.com/cancel",
		NotifyURL:   "https://example.com/notify",
		UseSandbox:  true,
	}}
}

const validPayment = `{
	"name": "John",
	"surname": "Doe",
	"email": "john.doe@example.com",
	"mobile_number": "0123456789",
	"item_name": "Test Item",
	"amount": 100.00,
	"confirm_email": true
}`

func TestGeneratePaymentURL(t *testing.T) {
	h := GeneratePaymentURLHandler(testDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payfast/generate-payment-url",
		strings.NewReader(validPayment))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var out PaymentURLOut
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.True(t, strings.HasPrefix(out.PaymentURL,
		"https://sandbox.payfast.co.za/eng/process?"), out.PaymentURL)

	u, err := url.Parse(out.PaymentURL)
	require.NoError(t, err)
	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "10000100", q.Get("merchant_id"))
	assert.Equal(t, "100.00", q.Get("amount"))
	assert.Equal(t, "0123456789", q.Get("cell_number"))
	assert.Len(t, q.Get("signature"), 32)
}

func TestGeneratePaymentURLRejectsBadJSON(t *testing.T) {
	h := GeneratePaymentURLHandler(testDeps())

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGeneratePaymentURLListsMissingFields(t *testing.T) {
	h := GeneratePaymentURLHandler(testDeps())

	req := httptest.NewRequest(http.MethodPost, "/x",
		strings.NewReader(`{"name":"John","amount":-5}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := rr.Body.String()
	for _, f := range []string{"surname", "email", "item_name", "amount"} {
		assert.Contains(t, body, f)
	}
	assert.NotContains(t, body, "name_first") // wire names stay internal
}

func TestGeneratePaymentURLConfigFailureIsGeneric(t *testing.T) {
	d := testDeps()
	d.Cfg.MerchantKey = ""
	h := GeneratePaymentURLHandler(d)

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(validPayment))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "PAYFAST_MERCHANT_KEY")
	assert.NotContains(t, rr.Body.String(), "CONFIG_MISSING")
}

func signedIPNForm(passphrase string) url.Values {
	fs := payfast.NewFieldSet()
	fs.Set("m_payment_id", "ORDER-001")
	fs.Set("pf_payment_id", "1089250")
	fs.Set("payment_status", "COMPLETE")
	fs.Set("amount_gross", "100.00")

	form := url.Values{}
	for _, k := range fs.SortedKeys() {
		v, _ := fs.Get(k)
		form.Set(k, v)
	}
	form.Set("signature", payfast.Sign(fs, passphrase))
	return form
}

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payfast/validate-ipn",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestValidateIPNAcceptsSigned(t *testing.T) {
	h := ValidateIPNHandler(testDeps())

	rr := postForm(t, h, signedIPNForm("securepassphrase"))
	require.Equal(t, http.StatusOK, rr.Code)

	var out IPNOut
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.True(t, out.Valid)
	assert.Equal(t, "1089250", out.PFPaymentID)
}

func TestValidateIPNRejectsBadSignature(t *testing.T) {
	h := ValidateIPNHandler(testDeps())

	form := signedIPNForm("securepassphrase")
	form.Set("amount_gross", "999.00") // tampered after signing
	rr := postForm(t, h, form)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	form = signedIPNForm("wrongphrase")
	rr = postForm(t, h, form)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestValidateIPNRejectsMissingSignature(t *testing.T) {
	h := ValidateIPNHandler(testDeps())

	form := signedIPNForm("securepassphrase")
	form.Del("signature")
	rr := postForm(t, h, form)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// End-to-end contract through the envelope middleware: the shape every
// consumer actually sees.
func TestEnvelopedContract(t *testing.T) {
	wrap := envelope.Middleware()

	t.Run("generate success", func(t *testing.T) {
		h := wrap(GeneratePaymentURLHandler(testDeps()))
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(validPayment))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		var env envelope.Envelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		assert.True(t, env.Success)
		assert.Equal(t, http.StatusCreated, env.StatusCode)
		assert.Nil(t, env.Errors)
	})

	t.Run("invalid ipn is success=false", func(t *testing.T) {
		h := wrap(ValidateIPNHandler(testDeps()))
		rr := postForm(t, h, signedIPNForm("wrongphrase"))

		var env envelope.Envelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		assert.False(t, env.Success)
		assert.Equal(t, http.StatusBadRequest, env.StatusCode)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "invalid IPN signature", env.Errors[0])
	})

	t.Run("validation errors land in errors", func(t *testing.T) {
		h := wrap(GeneratePaymentURLHandler(testDeps()))
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		var env envelope.Envelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		assert.False(t, env.Success)
		require.Len(t, env.Errors, 1)
		assert.Contains(t, env.Errors[0], "missing or invalid fields")
	})
}
