// Package token provides the character-level machinery shared by the
// go-rjson parsers and writer: a one-character-lookahead source cursor
// with capture support, source positions for error reporting, the
// relaxed number grammar, string quoting and escaping helpers, and
// comment marker formatting/stripping.
package token
