package guardrails

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when piped input is not text.
var ErrInvalidUTF8 = errors.New("stdin contained invalid UTF-8")

// CheckInput returns an error if data cannot be sent as a text message.
func CheckInput(data []byte) error {
	if !utf8.Valid(data) {
		return ErrInvalidUTF8
	}
	return nil
}
