// payfast-gateway/pkg/errors/errors.go
package errors

import "fmt"

// Error codes used across the gateway.
const (
	CodeConfigMissing = "CONFIG_MISSING"
	CodeSigning       = "SIGNING"
	CodeURLBuild      = "URL_BUILD"
)

type E struct {
	Code    string
	Message string
	Err     error
}

func (e E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e E) Unwrap() error { return e.Err }

func Wrap(code, msg string, err error) error {
	return E{Code: code, Message: msg, Err: err}
}

func New(code, msg string) error {
	return E{Code: code, Message: msg}
}

// CodeOf returns the code carried by err, or "" for plain errors.
func CodeOf(err error) string {
	if e, ok := err.(E); ok {
		return e.Code
	}
	return ""
}
