package ir

// ExtProvider recognizes and formats extension scalar values: types
// outside the standard JSON set that parse from and format to plain
// text during scanning and writing. Providers are consulted in order;
// the first to recognize a piece of text wins.
type ExtProvider interface {
	Name() string

	// Parse tries to recognize text as a value of this provider's
	// type. The text is a trimmed quoteless scalar.
	Parse(text string) (any, bool)

	// Format renders a value previously produced by Parse. The result
	// must contain no newlines and must not itself read back as a
	// different scalar kind.
	Format(v any) (string, bool)
}
