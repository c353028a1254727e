// Package format defines the byte-level constants of the Newick grammar
// shared by the parser and the serializer.
//
// Newick encodes a tree as nested parenthesized lists with optional node
// labels and optional ":length" edge weights, terminated by a semicolon:
//
//	(A:0.1,B:0.2,(C:0.3,D:0.4)E:0.5)F;
//
// Comments are bracketed ("[...]") and may appear anywhere outside a quoted
// label. Labels are either bare or quoted with a matching pair of single or
// double quotes.
package format

// Structural bytes of the grammar.
const (
	SubtreeStart = '(' // begins a descendant list
	SubtreeEnd   = ')' // ends a descendant list
	Sibling      = ',' // separates siblings within a descendant list
	LengthStart  = ':' // introduces an edge-length token
	CommentStart = '[' // begins a comment
	CommentEnd   = ']' // ends a comment
	SingleQuote  = '\''
	DoubleQuote  = '"'
	Terminal     = ';' // ends the tree
)

// IOBufferSize is the chunk size used when feeding the parser from a file or
// an in-memory buffer. Tokens may span chunk boundaries; nothing in the
// lexer assumes otherwise.
const IOBufferSize = 16384

// IsSpace reports whether b is insignificant ASCII whitespace outside of
// labels and lengths.
func IsSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// IsLabelEnd reports whether b terminates an unquoted label. The terminating
// byte is not part of the label and is reprocessed by the caller.
func IsLabelEnd(b byte) bool {
	return b == LengthStart || b == Sibling || b == SubtreeEnd || b == Terminal
}

// IsLengthEnd reports whether b terminates an edge-length token. The
// terminating byte is reprocessed by the caller.
func IsLengthEnd(b byte) bool {
	return b == Sibling || b == SubtreeEnd || b == Terminal
}
