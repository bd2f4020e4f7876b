package token

import "strconv"

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// TryParseNumber checks value against the relaxed number grammar:
// optional leading minus, an integer part that is a bare zero or starts
// with a nonzero digit, an optional fraction and exponent, and optional
// trailing whitespace. With stopAtNext set, text after the trailing
// whitespace is tolerated when it begins a stop token (comma, closing
// bracket, or comment opener); otherwise any trailing text rejects the
// number.
func TryParseNumber(value string, stopAtNext bool) (float64, bool) {
	idx, n := 0, len(value)
	if idx < n && value[idx] == '-' {
		idx++
	}
	if idx >= n {
		return 0, false
	}
	first := value[idx]
	idx++
	if !isDigit(first) {
		return 0, false
	}
	if first == '0' && idx < n && isDigit(value[idx]) {
		// leading zero is not allowed
		return 0, false
	}
	for idx < n && isDigit(value[idx]) {
		idx++
	}

	// frac
	if idx < n && value[idx] == '.' {
		idx++
		if idx >= n || !isDigit(value[idx]) {
			return 0, false
		}
		idx++
		for idx < n && isDigit(value[idx]) {
			idx++
		}
	}

	// exp
	if idx < n && (value[idx] == 'e' || value[idx] == 'E') {
		idx++
		if idx < n && (value[idx] == '+' || value[idx] == '-') {
			idx++
		}
		if idx >= n || !isDigit(value[idx]) {
			return 0, false
		}
		idx++
		for idx < n && isDigit(value[idx]) {
			idx++
		}
	}

	last := idx
	for idx < n && IsWhiteSpace(int(value[idx])) {
		idx++
	}

	foundStop := false
	if idx < n && stopAtNext {
		switch c := value[idx]; c {
		case ',', '}', ']', '#':
			foundStop = true
		case '/':
			foundStop = idx+1 < n && (value[idx+1] == '/' || value[idx+1] == '*')
		}
	}
	if idx < n && !foundStop {
		return 0, false
	}

	f, err := strconv.ParseFloat(value[:last], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
