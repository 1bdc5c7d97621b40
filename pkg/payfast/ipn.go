// payfast-gateway/pkg/payfast/ipn.go
package payfast

// ValidateNotification checks a PayFast IPN post: strip the received
// signature, recompute over the remaining fields with the merchant
// passphrase, compare byte for byte. Case is significant; an uppercased but
// otherwise correct signature is still a mismatch, same as on PayFast's side.
//
// Malformed input is never an error, only invalid. The caller's FieldSet is
// left untouched so it can still be logged in full.
func ValidateNotification(fields FieldSet, passphrase string) bool {
	received, ok := fields.Get(SignatureField)
	if !ok {
		return false
	}

	data := fields.Clone()
	data.Delete(SignatureField)

	return Sign(data, passphrase) == received
}
