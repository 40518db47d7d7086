package loganalyzer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/opslog/loganalyzer"
)

var ignoreOrder = cmpopts.IgnoreUnexported(loganalyzer.Stats{})

func TestAnalyzeLineCountsUnmarkedLineWithoutTouchingLevels(t *testing.T) {
	t.Parallel()
	s := loganalyzer.NewStats()
	s.AnalyzeLine("ERROR first")
	before := len(s.Levels)
	s.AnalyzeLine("worker started")
	if s.TotalLines != 2 {
		t.Errorf("want 2 total lines, got %d", s.TotalLines)
	}
	if len(s.Levels) != before || s.Levels[loganalyzer.LevelError] != 1 {
		t.Errorf("levels changed by unmarked line: %v", s.Levels)
	}
	if len(s.Errors) != 1 || len(s.Warnings) != 0 {
		t.Errorf("samples changed by unmarked line: errors %q, warnings %q", s.Errors, s.Warnings)
	}
}

func TestAnalyzeLineAddsErrorLinesOnlyToErrors(t *testing.T) {
	t.Parallel()
	s := loganalyzer.NewStats()
	lines := []string{
		"ERROR plain",
		"Error: with warning text",
		"  error warn info debug  ",
	}
	for _, line := range lines {
		s.AnalyzeLine(line)
	}
	if !cmp.Equal(lines, s.Errors) {
		t.Error(cmp.Diff(lines, s.Errors))
	}
	if len(s.Warnings) != 0 {
		t.Errorf("want no warnings, got %q", s.Warnings)
	}
}

func TestAnalyzeLineRecordsWarningLineOnceAsWarn(t *testing.T) {
	t.Parallel()
	s := loganalyzer.NewStats()
	s.AnalyzeLine("warn: this is a WARNING")
	want := map[loganalyzer.Level]int{loganalyzer.LevelWarn: 1}
	if !cmp.Equal(want, s.Levels) {
		t.Error(cmp.Diff(want, s.Levels))
	}
	if !cmp.Equal([]string{"warn: this is a WARNING"}, s.Warnings) {
		t.Errorf("want the line in warnings exactly once, got %q", s.Warnings)
	}
}

func TestAnalyzeLineTakesAtMostOneIPAndOneStatusCodePerLine(t *testing.T) {
	t.Parallel()
	s := loganalyzer.NewStats()
	s.AnalyzeLine("10.0.0.1 -> 10.0.0.2 200 404")
	wantIPs := map[string]int{"10.0.0.1": 1}
	if !cmp.Equal(wantIPs, s.IPAddresses) {
		t.Error(cmp.Diff(wantIPs, s.IPAddresses))
	}
	wantCodes := map[int]int{200: 1}
	if !cmp.Equal(wantCodes, s.StatusCodes) {
		t.Error(cmp.Diff(wantCodes, s.StatusCodes))
	}
}

func TestAnalyzeThreeLineLogGivesExpectedStats(t *testing.T) {
	t.Parallel()
	got, err := loganalyzer.Analyze("testdata/small.log")
	if err != nil {
		t.Fatal(err)
	}
	want := &loganalyzer.Stats{
		TotalLines: 3,
		Levels: map[loganalyzer.Level]int{
			loganalyzer.LevelError: 1,
			loganalyzer.LevelInfo:  1,
			loganalyzer.LevelWarn:  1,
		},
		Errors:      []string{"ERROR 500 at 10.0.0.1"},
		Warnings:    []string{"WARN 404 at 10.0.0.2"},
		IPAddresses: map[string]int{"10.0.0.1": 2, "10.0.0.2": 1},
		StatusCodes: map[int]int{500: 1, 200: 1, 404: 1},
	}
	if !cmp.Equal(want, got, ignoreOrder) {
		t.Error(cmp.Diff(want, got, ignoreOrder))
	}
}

func TestAnalyzeEmptyFileGivesZeroStats(t *testing.T) {
	t.Parallel()
	got, err := loganalyzer.Analyze("testdata/empty.log")
	if err != nil {
		t.Fatal(err)
	}
	want := loganalyzer.NewStats()
	if !cmp.Equal(want, got, ignoreOrder) {
		t.Error(cmp.Diff(want, got, ignoreOrder))
	}
}

func TestAnalyzeLevelCountsNeverExceedTotalLines(t *testing.T) {
	t.Parallel()
	s, err := loganalyzer.Analyze("testdata/access.log")
	if err != nil {
		t.Fatal(err)
	}
	var sum int
	for _, n := range s.Levels {
		sum += n
	}
	if sum > s.TotalLines {
		t.Errorf("level counts sum to %d, more than %d total lines", sum, s.TotalLines)
	}
	if s.TotalLines != 9 {
		t.Errorf("want 9 total lines, got %d", s.TotalLines)
	}
	if sum != 8 {
		t.Errorf("want 8 classified lines, got %d", sum)
	}
}
