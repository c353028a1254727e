package source

import (
	"io"
	"os"

	"golang.org/x/text/transform"

	"github.com/phylokit/phylokit/internal/format"
)

// File is a Source that streams a file through a fixed-size buffer. The file
// handle is held only for the duration of parsing; callers must Close it as
// soon as the parse finishes, success or failure.
type File struct {
	f   *os.File
	r   io.Reader
	buf []byte
}

// OpenFile opens path for reading and advises the kernel that access will be
// sequential. Open errors are returned as-is so callers can distinguish them
// from malformed input.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fadviseSequential(f)
	return &File{
		f:   f,
		r:   transform.NewReader(f, bomTransformer()),
		buf: make([]byte, format.IOBufferSize),
	}, nil
}

// Next reads the next chunk into the source's buffer. The returned slice is
// only valid until the following call.
func (s *File) Next() ([]byte, error) {
	for {
		n, err := s.r.Read(s.buf)
		if n > 0 {
			return s.buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Close releases the underlying file handle.
func (s *File) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
