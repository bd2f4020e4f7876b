package encode

import "errors"

var (
	ErrEncoding = errors.New("encoding error")
	ErrBadEol   = errors.New(`line ending must be "\n" or "\r\n"`)
)
