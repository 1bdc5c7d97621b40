// payfast-gateway/pkg/envelope/middleware.go
package envelope

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// bodyRecorder buffers everything the downstream handler writes. The status
// code is not final until the handler returns, so nothing goes to the wire
// before then.
type bodyRecorder struct {
	header http.Header
	buf    bytes.Buffer
	status int
}

func newBodyRecorder() *bodyRecorder {
	return &bodyRecorder{header: make(http.Header), status: http.StatusOK}
}

func (r *bodyRecorder) Header() http.Header { return r.header }

func (r *bodyRecorder) WriteHeader(code int) { r.status = code }

func (r *bodyRecorder) Write(b []byte) (int, error) { return r.buf.Write(b) }

// Middleware wraps every handler so each response leaves as an Envelope.
// Requests whose path starts with one of skipPrefixes (metrics, health,
// docs) pass through untouched.
func Middleware(skipPrefixes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range skipPrefixes {
				if strings.HasPrefix(r.URL.Path, p) {
					next.ServeHTTP(w, r)
					return
				}
			}

			rec := newBodyRecorder()

			env := func() Envelope {
				defer func() {
					if p := recover(); p != nil {
						log.Printf("[envelope] handler panic on %s %s: %v", r.Method, r.URL.Path, p)
					}
				}()
				next.ServeHTTP(rec, r)
				return Format(rec.status, rec.buf.Bytes())
			}()
			if env.StatusCode == 0 {
				// the deferred recover ran; the zero Envelope from the
				// aborted closure is replaced wholesale
				env = Internal()
			}

			writeEnvelope(w, env)
		})
	}
}

func writeEnvelope(w http.ResponseWriter, env Envelope) {
	body, err := json.Marshal(env)
	if err != nil {
		// Failing to serialize the envelope is itself fatal to the request.
		log.Printf("[envelope] marshal failed: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fallback, _ := json.Marshal(Internal())
		_, _ = w.Write(fallback)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.StatusCode)
	_, _ = w.Write(body)
}
