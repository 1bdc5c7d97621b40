// payfast-gateway/pkg/payfast/sign.go
package payfast

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// SignatureField is the query parameter PayFast uses to carry the signature.
const SignatureField = "signature"

// CanonicalString renders the exact hash input: key=encoded(value) pairs in
// ascending byte order of key, joined by '&'. A non-empty passphrase is
// appended as a trailing '&passphrase=<encoded>' pair after the sorted data
// fields; the passphrase key itself is never encoded, only its value. The
// passphrase is a shared secret and must never appear in any transmitted
// query string.
func CanonicalString(fields FieldSet, passphrase string) string {
	var b strings.Builder
	for i, k := range fields.SortedKeys() {
		if i > 0 {
			b.WriteByte('&')
		}
		v, _ := fields.Get(k)
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(Encode(v))
	}
	if passphrase != "" {
		if fields.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString("passphrase=")
		b.WriteString(Encode(passphrase))
	}
	return b.String()
}

// Sign computes the PayFast signature: MD5 over the UTF-8 bytes of the
// canonical string, rendered as 32 lowercase hex characters. The gateway
// mandates MD5 bit-for-bit; substituting a stronger digest would simply
// mismatch on their side. Pure function of (fields, passphrase).
func Sign(fields FieldSet, passphrase string) string {
	sum := md5.Sum([]byte(CanonicalString(fields, passphrase)))
	return hex.EncodeToString(sum[:])
}
