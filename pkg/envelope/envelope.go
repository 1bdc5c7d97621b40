// payfast-gateway/pkg/envelope/envelope.go
package envelope

import "encoding/json"

// Envelope is the one response shape this API ever emits. Data and Errors
// serialize as null when unset, never as absent keys.
type Envelope struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Data       any      `json:"data"`
	Errors     []string `json:"errors"`
	StatusCode int      `json:"statusCode"`
}

const (
	msgSuccess    = "Request was successful"
	msgNonSuccess = "An error occurred"
	msgUnexpected = "An unexpected error occurred."
	errInternal   = "An internal error occurred."
)

// Format converts a finished handler result into an Envelope. It is a pure
// function of (status, body); the middleware only buffers and hands off.
//
// 2xx: the captured body becomes data — embedded as-is when it is valid
// JSON, as a plain string otherwise, null when empty. Anything else: the
// captured body text becomes the sole errors entry.
func Format(status int, body []byte) Envelope {
	if status >= 200 && status < 300 {
		return Envelope{
			Success:    true,
			Message:    msgSuccess,
			Data:       asData(body),
			StatusCode: status,
		}
	}
	return Envelope{
		Success:    false,
		Message:    msgNonSuccess,
		Errors:     []string{string(body)},
		StatusCode: status,
	}
}

// Internal builds the fixed 500 envelope for a handler panic or a failure
// inside the enveloping itself. No detail from the original error is
// included; that goes to the log only.
func Internal() Envelope {
	return Envelope{
		Success:    false,
		Message:    msgUnexpected,
		Errors:     []string{errInternal},
		StatusCode: 500,
	}
}

func asData(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
