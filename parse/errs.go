package parse

import (
	"errors"
	"fmt"

	"github.com/rjson-format/go-rjson/token"
)

// ErrParse is wrapped by every error raised for malformed input, as
// opposed to I/O failures when draining a reader.
var ErrParse = errors.New("parse error")

// Error reports a grammar violation at a specific location.
type Error struct {
	Msg string
	Pos token.Pos
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrParse, e.Msg, e.Pos)
}

func (e *Error) Unwrap() error { return ErrParse }
