package loganalyzer

import "strings"

// Level is the severity assigned to a log line.
type Level string

const (
	LevelError   Level = "ERROR"
	LevelWarn    Level = "WARN"
	LevelWarning Level = "WARNING"
	LevelInfo    Level = "INFO"
	LevelDebug   Level = "DEBUG"
)

// levelMarkers is checked in order; the first marker found in a line wins.
// WARN precedes WARNING, so a line containing "warning" is always recorded
// as WARN.
var levelMarkers = []Level{
	LevelError,
	LevelWarn,
	LevelWarning,
	LevelInfo,
	LevelDebug,
}

// Classify returns the level of line, found by searching it
// case-insensitively for each level marker in priority order. It returns
// false if the line contains none of them.
func Classify(line string) (Level, bool) {
	upper := strings.ToUpper(line)
	for _, level := range levelMarkers {
		if strings.Contains(upper, string(level)) {
			return level, true
		}
	}
	return "", false
}

// IsWarning reports whether l is one of the warning levels.
func (l Level) IsWarning() bool {
	return l == LevelWarn || l == LevelWarning
}
