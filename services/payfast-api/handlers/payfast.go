// services/payfast-api/handlers/payfast.go
package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/example/payfast-gateway/pkg/config"
	m "github.com/example/payfast-gateway/pkg/metrics"
	"github.com/example/payfast-gateway/pkg/payfast"
	"github.com/example/payfast-gateway/services/payfast-api/queue"
)

const serviceName = "payfast-api"

type Deps struct {
	Cfg config.Merchant
	Bus *queue.Bus // nil disables IPN fan-out
}

// GeneratePaymentURLHandler validates the request and returns the signed
// PayFast redirect URL. Validation runs before any signing happens.
func GeneratePaymentURLHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in PaymentIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeText(w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}

		if missing := validatePaymentIn(in); len(missing) > 0 {
			writeText(w, http.StatusBadRequest,
				"missing or invalid fields: "+strings.Join(missing, ", "))
			return
		}

		url, err := payfast.BuildPaymentURL(payfast.PaymentRequest{
			Name:         in.Name,
			Surname:      in.Surname,
			Email:        in.Email,
			MobileNumber: in.MobileNumber,
			ItemName:     in.ItemName,
			Amount:       in.Amount,
			ConfirmEmail: in.ConfirmEmail,
		}, d.Cfg)
		if err != nil {
			// coded detail stays in the log, never in the body
			log.Printf("[%s] build payment url: %v", serviceName, err)
			writeText(w, http.StatusInternalServerError,
				"An error occurred while processing your request.")
			return
		}

		writeJSON(w, http.StatusCreated, PaymentURLOut{PaymentURL: url})
	}
}

// ValidateIPNHandler verifies a PayFast notification post. An invalid
// signature is a 400, not an internal error; verified notifications are
// published to Kafka best-effort.
func ValidateIPNHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			m.IncIPNValidation(serviceName, "INVALID")
			writeText(w, http.StatusBadRequest, "invalid IPN signature")
			return
		}
		fields := payfast.FromValues(r.PostForm)

		if !payfast.ValidateNotification(fields, d.Cfg.Passphrase) {
			m.IncIPNValidation(serviceName, "INVALID")
			writeText(w, http.StatusBadRequest, "invalid IPN signature")
			return
		}
		m.IncIPNValidation(serviceName, "VALID")

		pfID, _ := fields.Get("pf_payment_id")
		if d.Bus != nil {
			publishVerified(d.Bus, fields)
		}

		writeJSON(w, http.StatusOK, IPNOut{Valid: true, PFPaymentID: pfID})
	}
}

// publishVerified hands the notification to the bus. The IPN is already
// acknowledged as valid; a broker hiccup must not turn that into a failure,
// so errors are logged and dropped.
func publishVerified(bus *queue.Bus, fields payfast.FieldSet) {
	payload := make(map[string]string, fields.Len())
	for _, k := range fields.SortedKeys() {
		v, _ := fields.Get(k)
		payload[k] = v
	}
	b, _ := json.Marshal(payload)

	key, ok := fields.Get("pf_payment_id")
	if !ok {
		key, _ = fields.Get("m_payment_id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := bus.PublishVerified(ctx, []byte(key), b); err != nil {
		m.IncRequest(serviceName, "FAILED", "KAFKA_PUBLISH")
		log.Printf("[%s] publish verified ipn: %v", serviceName, err)
		return
	}
	m.IncRequest(serviceName, "SUCCESS", "KAFKA_PUBLISH")
}

func validatePaymentIn(in PaymentIn) []string {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Surname) == "" {
		missing = append(missing, "surname")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(in.ItemName) == "" {
		missing = append(missing, "item_name")
	}
	if !in.Amount.IsPositive() {
		missing = append(missing, "amount")
	}
	return missing
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
