// cmd/ipn-worker/main.go
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"

	m "github.com/example/payfast-gateway/pkg/metrics"
)

const serviceName = "ipn-worker"

// notification is the verified IPN as published by payfast-api: the raw
// gateway form fields, already signature-checked.
type notification map[string]string

func main() {
	brokers := env("KAFKA_BROKERS", "kafka:9092")
	topic := env("KAFKA_IPN_TOPIC", "payfast.ipn.verified")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{brokers},
		Topic:    topic,
		GroupID:  "ipn-worker",
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[%s] started, topic=%s", serviceName, topic)
	for {
		msg, err := r.ReadMessage(ctx)
		if err != nil {
			log.Printf("read err: %v", err)
			return
		}

		var n notification
		if err := json.Unmarshal(msg.Value, &n); err != nil {
			log.Printf("bad msg: %v", err)
			m.IncRequest(serviceName, "FAILED", "CONSUME")
			continue
		}

		// Settlement / fulfilment hangs off here; for now just account for it.
		log.Printf("[%s] ipn pf_payment_id=%s status=%s amount_gross=%s",
			serviceName, n["pf_payment_id"], n["payment_status"], n["amount_gross"])
		m.IncRequest(serviceName, "SUCCESS", "CONSUME")
	}
}

func env(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
