// Package source provides the byte sources that feed the Newick parser.
//
// A Source yields successive chunks of input. The file-backed source reads
// through a fixed-size buffer so memory stays bounded regardless of file
// size; the in-memory source serves windows over an existing slice so both
// paths exercise the same chunk-boundary handling in the lexer.
//
// Input encoding is normalized transparently: a UTF-8 BOM is stripped, and
// UTF-16 input (either endianness, BOM-marked) is transcoded to UTF-8.
package source

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/phylokit/phylokit/internal/format"
)

// Source yields successive chunks of Newick input. Next returns io.EOF once
// the input is exhausted. The returned slice is only valid until the next
// call to Next.
type Source interface {
	Next() ([]byte, error)
	Close() error
}

// bomTransformer decodes UTF-16 input when a BOM announces it and otherwise
// passes UTF-8 through (stripping a UTF-8 BOM if present).
func bomTransformer() transform.Transformer {
	return unicode.BOMOverride(unicode.UTF8.NewDecoder())
}

// hasUTF16BOM reports whether data begins with a UTF-16 byte-order mark.
func hasUTF16BOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xFE, 0xFF}) || bytes.HasPrefix(data, []byte{0xFF, 0xFE})
}

// Bytes is an in-memory Source serving fixed-size windows over a slice.
type Bytes struct {
	data   []byte
	off    int
	window int
}

// NewBytes returns a Source over data, normalizing the encoding up front.
func NewBytes(data []byte) (*Bytes, error) {
	return NewBytesWindow(data, format.IOBufferSize)
}

// NewBytesWindow is NewBytes with an explicit window size. Small windows are
// used by tests to force tokens across chunk boundaries.
func NewBytesWindow(data []byte, window int) (*Bytes, error) {
	if hasUTF16BOM(data) || bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		normalized, _, err := transform.Bytes(bomTransformer(), data)
		if err != nil {
			return nil, err
		}
		data = normalized
	}
	if window <= 0 {
		window = format.IOBufferSize
	}
	return &Bytes{data: data, window: window}, nil
}

// Next returns the next window of the slice, or io.EOF when exhausted.
func (b *Bytes) Next() ([]byte, error) {
	if b.off >= len(b.data) {
		return nil, io.EOF
	}
	end := b.off + b.window
	if end > len(b.data) {
		end = len(b.data)
	}
	chunk := b.data[b.off:end]
	b.off = end
	return chunk, nil
}

// Close is a no-op for in-memory sources.
func (b *Bytes) Close() error { return nil }
