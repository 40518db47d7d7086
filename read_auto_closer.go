package loganalyzer

import (
	"io"
)

// ReadAutoCloser wraps an io.ReadCloser, and closes it automatically once it
// has been completely read.
type ReadAutoCloser struct {
	r io.ReadCloser
}

// NewReadAutoCloser returns a ReadAutoCloser wrapping the supplied Reader. If
// the Reader is not a Closer, it is wrapped in a NopCloser to make it
// closable.
func NewReadAutoCloser(r io.Reader) ReadAutoCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return ReadAutoCloser{rc}
	}
	return ReadAutoCloser{io.NopCloser(r)}
}

// Close closes the data source associated with a, and returns the result of
// that close operation.
func (a ReadAutoCloser) Close() error {
	if a.r == nil {
		return nil
	}
	return a.r.Close()
}

// Read reads up to len(b) bytes from a's underlying reader into b. It returns
// the number of bytes read and any error encountered. At end of file, Read
// returns 0, io.EOF and closes the underlying reader. On a zero
// ReadAutoCloser, Read returns 0, io.EOF.
func (a ReadAutoCloser) Read(b []byte) (n int, err error) {
	if a.r == nil {
		return 0, io.EOF
	}
	n, err = a.r.Read(b)
	if err == io.EOF {
		a.Close()
	}
	return n, err
}
