// Package loganalyzer reads a log stream line by line and summarises it:
// counts per severity level, an HTTP status-code histogram, the busiest
// client IP addresses, and the most recent errors and warnings.
//
// Analysis starts from a Source, which carries a reader and an error status:
//
//	stats, err := loganalyzer.File("/var/log/nginx/access.log").Analyze()
//
// If opening the source fails, its error status is set and Analyze simply
// returns that error, so sources can be built and analyzed without checking
// for errors at each step:
//
//	s := loganalyzer.File("doesnt_exist.log")
//	_, err := s.Analyze()
//	fmt.Println(err)
//
// Output: open doesnt_exist.log: no such file or directory
//
// The detection rules are deliberately simple heuristics. In particular, any
// whitespace-delimited integer between 100 and 599 counts as a status code,
// so ports, PIDs and byte counts in that range are counted too.
package loganalyzer

import (
	"io"
)

// Source represents a stream of log lines with an associated ReadAutoCloser.
type Source struct {
	Reader ReadAutoCloser
	name   string
	err    error
}

// NewSource returns a pointer to a new empty source.
func NewSource() *Source {
	return &Source{
		Reader: ReadAutoCloser{},
		err:    nil,
	}
}

// Close closes the source's associated reader. This is always safe to do,
// because sources created from a non-closable reader are wrapped in a
// NopCloser.
func (s *Source) Close() error {
	if s == nil {
		return nil
	}
	return s.Reader.Close()
}

// Error returns the last error returned by any source operation, or nil
// otherwise.
func (s *Source) Error() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Name returns the name the source was created with: a file path, "-" for
// standard input, or the command line for Exec. It is empty for Echo.
func (s *Source) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Read reads up to len(b) bytes from the source into b. It returns the
// number of bytes read and any error encountered. At end of file, or on a nil
// source, Read returns 0, io.EOF.
func (s *Source) Read(b []byte) (int, error) {
	if s == nil {
		return 0, io.EOF
	}
	return s.Reader.Read(b)
}

// SetError sets the source's error status to the specified error. A non-nil
// error also closes the reader.
func (s *Source) SetError(err error) {
	if s != nil {
		if err != nil {
			s.Close()
		}
		s.err = err
	}
}

// WithReader takes an io.Reader, and associates the source with that reader.
// If necessary, the reader will be automatically closed once it has been
// completely read.
func (s *Source) WithReader(r io.Reader) *Source {
	if s == nil {
		return nil
	}
	s.Reader = NewReadAutoCloser(r)
	return s
}

// WithName sets the name reported for the source and returns the modified
// source.
func (s *Source) WithName(name string) *Source {
	if s == nil {
		return nil
	}
	s.name = name
	return s
}

// WithError sets the source's error status to the specified error and
// returns the modified source.
func (s *Source) WithError(err error) *Source {
	s.SetError(err)
	return s
}
