// services/payfast-api/main.go
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/example/payfast-gateway/pkg/config"
	"github.com/example/payfast-gateway/pkg/envelope"
	m "github.com/example/payfast-gateway/pkg/metrics"
	"github.com/example/payfast-gateway/services/payfast-api/handlers"
	"github.com/example/payfast-gateway/services/payfast-api/queue"
)

const serviceName = "payfast-api"

func main() {
	cfg := config.MerchantFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("merchant config: %v", err)
	}

	var bus *queue.Bus
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		bus = queue.New(
			strings.Split(brokers, ","),
			getenv("KAFKA_IPN_TOPIC", "payfast.ipn.verified"),
		)
	}

	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(metricsMiddleware)
	// every business response leaves as an Envelope; ops endpoints pass through
	r.Use(envelope.Middleware("/metrics", "/healthz", "/docs"))

	// metrics & health
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":      true,
			"service": serviceName,
			"ts":      time.Now().UTC(),
		})
	}).Methods(http.MethodGet)

	// API
	deps := handlers.Deps{Cfg: cfg, Bus: bus}
	r.HandleFunc("/api/v1/payfast/generate-payment-url",
		handlers.GeneratePaymentURLHandler(deps)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/payfast/validate-ipn",
		handlers.ValidateIPNHandler(deps)).Methods(http.MethodPost)

	addr := getenv("HTTP_ADDR", ":8080")
	server := &http.Server{
		Addr:         addr,
		Handler:      cors.AllowAll().Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	log.Printf("%s listening at %s (sandbox=%v)", serviceName, addr, cfg.UseSandbox)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

/*************** Request ID middleware ***************/
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

/*************** Metrics middleware ***************/
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		statusLabel := "FAILED"
		if rec.status >= 200 && rec.status < 400 {
			statusLabel = "SUCCESS"
		}
		m.IncRequest(serviceName, statusLabel, r.Method)
		m.ObserveDuration(serviceName, statusLabel, time.Since(start).Seconds())
	})
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
