// payfast-gateway/pkg/payfast/encode.go
package payfast

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes a single field value the way PayFast's own decoder
// expects: space becomes '+', A-Z a-z 0-9 '-' '_' '.' pass through, every
// other byte becomes %XX with uppercase hex. This matches PHP urlencode,
// which the gateway's reference integration uses, so the same convention is
// applied on the outbound build path and the inbound verify path. Note '~'
// is escaped here, unlike net/url.QueryEscape.
//
// Encoding applies to values only, never to the '=' or '&' separators.
// The empty string encodes to the empty string; Encode cannot fail.
func Encode(s string) string {
	var n int
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) && s[i] != ' ' {
			n++
		}
	}
	if n == 0 {
		// only spaces need swapping, if any
		b := []byte(s)
		changed := false
		for i, c := range b {
			if c == ' ' {
				b[i] = '+'
				changed = true
			}
		}
		if !changed {
			return s
		}
		return string(b)
	}

	out := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case unreserved(c):
			out = append(out, c)
		case c == ' ':
			out = append(out, '+')
		default:
			out = append(out, '%', upperhex[c>>4], upperhex[c&0x0F])
		}
	}
	return string(out)
}

func unreserved(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '.'
}
