package loganalyzer

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by Analyze when a line is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Analyze analyzes the file at path and returns the resulting statistics, or
// an error.
func Analyze(path string) (*Stats, error) {
	return File(path).Analyze()
}

// Analyze reads every line from the source, adds it to a new Stats, and
// closes the source. If the source has error status, or any line fails to
// read, Analyze returns nil and the error; statistics gathered before the
// failure are discarded. On a read failure the source's error status is also
// set.
func (s *Source) Analyze() (*Stats, error) {
	if s.Error() != nil {
		return nil, s.Error()
	}
	defer s.Close()
	stats := NewStats()
	scanner := newScanner(s)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			err := fmt.Errorf("line %d: %w", stats.TotalLines+1, ErrInvalidUTF8)
			s.SetError(err)
			return nil, err
		}
		stats.AnalyzeLine(line)
	}
	if err := scanner.Err(); err != nil {
		s.SetError(err)
		return nil, err
	}
	return stats, nil
}

// newScanner returns a line scanner over s with no practical limit on line
// length.
func newScanner(s *Source) *bufio.Scanner {
	scanner := bufio.NewScanner(s)
	scanner.Buffer(make([]byte, 4096), math.MaxInt)
	return scanner
}
