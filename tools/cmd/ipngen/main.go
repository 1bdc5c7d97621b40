// payfast-gateway/tools/cmd/ipngen/main.go
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/example/payfast-gateway/pkg/payfast"
)

// Emits signed sample IPN bodies (one urlencoded form body per line) for
// load tests and the integration test. Every line verifies against the
// given passphrase.
func main() {
	n := flag.Int("n", 100, "number of sample notifications")
	out := flag.String("out", "tests/data/sample_ipns.txt", "output path")
	passphrase := flag.String("passphrase", "securepassphrase", "merchant passphrase to sign with")
	flag.Parse()

	rand.Seed(time.Now().UnixNano())

	if err := os.MkdirAll("tests/data", 0o755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	statuses := []string{"COMPLETE", "FAILED", "PENDING"}
	for i := 0; i < *n; i++ {
		gross := 10 + rand.Float64()*1000
		fee := gross * 0.023

		fields := payfast.NewFieldSet()
		fields.Set("m_payment_id", fmt.Sprintf("ORDER-%06d", i+1))
		fields.Set("pf_payment_id", fmt.Sprintf("%d", 1000000+rand.Intn(9000000)))
		fields.Set("payment_status", statuses[rand.Intn(len(statuses))])
		fields.Set("item_name", fmt.Sprintf("Item %d", i+1))
		fields.Set("amount_gross", fmt.Sprintf("%.2f", gross))
		fields.Set("amount_fee", fmt.Sprintf("-%.2f", fee))
		fields.Set("amount_net", fmt.Sprintf("%.2f", gross-fee))
		fields.Set("merchant_id", "10000100")

		sig := payfast.Sign(fields, *passphrase)
		line := payfast.CanonicalString(fields, "") + "&" + payfast.SignatureField + "=" + sig
		if _, err := fmt.Fprintln(w, line); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("generated %s (%d notifications)", *out, *n)
}
