package loganalyzer_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/opslog/loganalyzer"
)

func TestReadAutoCloserReadsAllDataAndClosesFile(t *testing.T) {
	t.Parallel()
	want, err := os.ReadFile("testdata/small.log")
	if err != nil {
		t.Fatal(err)
	}
	input, err := os.Open("testdata/small.log")
	if err != nil {
		t.Fatal(err)
	}
	acr := loganalyzer.NewReadAutoCloser(input)
	got, err := io.ReadAll(acr)
	if err != nil {
		t.Error(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("want %q, got %q", want, got)
	}
	_, err = io.ReadAll(acr)
	if err == nil {
		t.Error("input not closed after reading")
	}
}

func TestReadAutoCloserWrapsNonClosableReader(t *testing.T) {
	t.Parallel()
	acr := loganalyzer.NewReadAutoCloser(bytes.NewReader([]byte("INFO hello\n")))
	if _, err := io.ReadAll(acr); err != nil {
		t.Fatal(err)
	}
	if err := acr.Close(); err != nil {
		t.Errorf("closing NopCloser: %v", err)
	}
}

func TestZeroReadAutoCloserReadsEOF(t *testing.T) {
	t.Parallel()
	var acr loganalyzer.ReadAutoCloser
	n, err := acr.Read(make([]byte, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("want 0, io.EOF, got %d, %v", n, err)
	}
	if err := acr.Close(); err != nil {
		t.Errorf("want nil closing zero value, got %v", err)
	}
}
