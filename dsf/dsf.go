// Package dsf provides ready-made extension value providers for
// scalars outside the standard type set. Providers are handed to the
// parser and writer in order; the first one to recognize a quoteless
// scalar wins.
package dsf

import (
	"math"
	"strconv"
	"strings"

	"github.com/rjson-format/go-rjson/ir"
)

type mathProvider struct{}

// Math returns a provider for the non-finite floating point values
// NaN, Inf and -Inf, which the number grammar rejects.
func Math() ir.ExtProvider {
	return mathProvider{}
}

func (mathProvider) Name() string {
	return "math"
}

func (mathProvider) Parse(text string) (any, bool) {
	switch text {
	case "NaN":
		return math.NaN(), true
	case "Inf", "+Inf", "Infinity":
		return math.Inf(1), true
	case "-Inf", "-Infinity":
		return math.Inf(-1), true
	}
	return nil, false
}

func (mathProvider) Format(v any) (string, bool) {
	f, ok := v.(float64)
	if !ok {
		return "", false
	}
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Inf", true
	case math.IsInf(f, -1):
		return "-Inf", true
	}
	return "", false
}

type hexProvider struct {
	stringify bool
}

// Hex returns a provider for hexadecimal integers written as 0x1a2b.
// When stringify is true the value is written back in hex form,
// otherwise it is written as a plain decimal integer.
func Hex(stringify bool) ir.ExtProvider {
	return hexProvider{stringify: stringify}
}

func (hexProvider) Name() string {
	return "hex"
}

func (hexProvider) Parse(text string) (any, bool) {
	if len(text) < 3 || !strings.HasPrefix(text, "0x") {
		return nil, false
	}
	v, err := strconv.ParseInt(text[2:], 16, 64)
	if err != nil {
		return nil, false
	}
	return v, true
}

func (h hexProvider) Format(v any) (string, bool) {
	i, ok := v.(int64)
	if !ok {
		return "", false
	}
	if h.stringify {
		return "0x" + strconv.FormatInt(i, 16), true
	}
	return strconv.FormatInt(i, 10), true
}
