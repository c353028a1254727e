// Package newick parses Newick-formatted phylogenetic trees into compact
// tree stores.
//
// # Overview
//
// The parser is a byte-level finite-state lexer fed by fixed-size chunks,
// so files of any size parse in bounded memory and tokens may freely span
// read boundaries. The same state machine consumes files (Open) and
// in-memory input (ParseBytes, ParseString).
//
// Supported grammar (subset of the Newick conventions):
//
//	tree     := subtree ';'
//	subtree  := leaf | internal
//	internal := '(' subtree (',' subtree)* ')' [label] [':' length]
//	leaf     := [label] [':' length]
//
// Labels are bare (terminated by ':', ',', ')' or ';', surrounding spaces
// trimmed) or quoted with a matching pair of single or double quotes.
// Bracketed comments ("[...]") are skipped anywhere outside a quoted label,
// including inside a length token. UTF-16 input with a byte-order mark is
// transcoded transparently.
//
// # Errors
//
// Grammar violations (unbalanced parentheses, structural bytes with no
// valid current node, trailing content after the semicolon, end of input
// before the semicolon, unparseable lengths) abort the parse immediately
// and wrap ErrMalformed; no partial tree is ever returned. File-open
// failures return the underlying *fs.PathError unchanged.
package newick
