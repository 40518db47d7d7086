package loganalyzer_test

import (
	"testing"

	"github.com/opslog/loganalyzer"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		line   string
		want   loganalyzer.Level
		wantOK bool
	}{
		{"ERROR disk full", loganalyzer.LevelError, true},
		{"error: disk full", loganalyzer.LevelError, true},
		{"WARN low memory", loganalyzer.LevelWarn, true},
		{"Warning: low memory", loganalyzer.LevelWarn, true},
		{"INFO started", loganalyzer.LevelInfo, true},
		{"debug: cache hit", loganalyzer.LevelDebug, true},
		{"INFO retrying after error", loganalyzer.LevelError, true},
		{"DEBUG warn threshold reached", loganalyzer.LevelWarn, true},
		{"information desk", loganalyzer.LevelInfo, true},
		{"worker started", "", false},
		{"", "", false},
	}
	for _, tc := range tcs {
		got, ok := loganalyzer.Classify(tc.line)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("Classify(%q): want %q, %t, got %q, %t", tc.line, tc.want, tc.wantOK, got, ok)
		}
	}
}

func TestLevelIsWarning(t *testing.T) {
	t.Parallel()
	for level, want := range map[loganalyzer.Level]bool{
		loganalyzer.LevelError:   false,
		loganalyzer.LevelWarn:    true,
		loganalyzer.LevelWarning: true,
		loganalyzer.LevelInfo:    false,
		loganalyzer.LevelDebug:   false,
	} {
		if got := level.IsWarning(); got != want {
			t.Errorf("%s.IsWarning(): want %t, got %t", level, want, got)
		}
	}
}
