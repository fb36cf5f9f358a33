package literal

import (
	"errors"
	"fmt"
)

// ErrNotMapping is matched by the error ParseMapping returns when the input
// is a valid literal of some other kind.
var ErrNotMapping = errors.New("literal is not a mapping")

// SyntaxError reports where and why a literal could not be parsed.
type SyntaxError struct {
	// Offset is the byte offset into the input.
	Offset int
	Msg    string

	err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.err
}
