// Package format names the output styles understood by go-rjson.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	// RJSONFormat is the relaxed, comment-preserving format.
	RJSONFormat Format = iota
	// JSONFormat is 2-space pretty-printed JSON without comments.
	JSONFormat
	// CompactFormat is JSON with no extra whitespace.
	CompactFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"r":       RJSONFormat,
		"rjson":   RJSONFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"c":       CompactFormat,
		"compact": CompactFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case RJSONFormat:
		return []byte("rjson"), nil
	case JSONFormat:
		return []byte("json"), nil
	case CompactFormat:
		return []byte("compact"), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool  { return f == JSONFormat || f == CompactFormat }
func (f Format) IsRJSON() bool { return f == RJSONFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case RJSONFormat:
		return ".rjson"
	case JSONFormat, CompactFormat:
		return ".json"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{RJSONFormat, JSONFormat, CompactFormat}
}
