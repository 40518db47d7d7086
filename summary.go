package loganalyzer

import (
	"sort"
	"strings"
)

const (
	// DefaultTopIPs is the number of IP addresses listed in a report.
	DefaultTopIPs = 10
	// DefaultRecent is the number of recent errors and warnings listed.
	DefaultRecent = 5
)

// Options controls how much detail a Summary keeps. Zero fields take the
// defaults.
type Options struct {
	Source string
	TopIPs int
	Recent int
}

func (o Options) topIPs() int {
	if o.TopIPs <= 0 {
		return DefaultTopIPs
	}
	return o.TopIPs
}

func (o Options) recent() int {
	if o.Recent <= 0 {
		return DefaultRecent
	}
	return o.Recent
}

// LevelCount is the number of lines at one level, and their share of all
// lines as a percentage.
type LevelCount struct {
	Level   Level   `json:"level"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// StatusCount is the number of lines carrying one status code.
type StatusCount struct {
	Code  int `json:"code"`
	Count int `json:"count"`
}

// IPCount is the number of lines carrying one IP address.
type IPCount struct {
	IP    string `json:"ip"`
	Count int    `json:"count"`
}

// Summary is a sorted, report-ready view of Stats.
type Summary struct {
	Source         string        `json:"source,omitempty"`
	TotalLines     int           `json:"total_lines"`
	Levels         []LevelCount  `json:"levels"`
	StatusCodes    []StatusCount `json:"status_codes"`
	TopIPs         []IPCount     `json:"top_ips"`
	ErrorCount     int           `json:"error_count"`
	WarningCount   int           `json:"warning_count"`
	RecentErrors   []string      `json:"recent_errors"`
	RecentWarnings []string      `json:"recent_warnings"`
}

// Summarize sorts the statistics into a Summary. Levels and IP addresses are
// ordered by descending count; equal counts keep the order in which their
// keys were first seen. Status codes are ordered by code. Recent errors and
// warnings are listed newest first, trimmed of surrounding whitespace.
func (s *Stats) Summarize(opts Options) Summary {
	sum := Summary{
		Source:         opts.Source,
		TotalLines:     s.TotalLines,
		Levels:         []LevelCount{},
		StatusCodes:    []StatusCount{},
		TopIPs:         []IPCount{},
		ErrorCount:     len(s.Errors),
		WarningCount:   len(s.Warnings),
		RecentErrors:   recent(s.Errors, opts.recent()),
		RecentWarnings: recent(s.Warnings, opts.recent()),
	}
	for _, level := range s.levelOrder {
		count := s.Levels[level]
		sum.Levels = append(sum.Levels, LevelCount{
			Level:   level,
			Count:   count,
			Percent: percent(count, s.TotalLines),
		})
	}
	sort.SliceStable(sum.Levels, func(i, j int) bool {
		return sum.Levels[i].Count > sum.Levels[j].Count
	})
	for code, count := range s.StatusCodes {
		sum.StatusCodes = append(sum.StatusCodes, StatusCount{Code: code, Count: count})
	}
	sort.Slice(sum.StatusCodes, func(i, j int) bool {
		return sum.StatusCodes[i].Code < sum.StatusCodes[j].Code
	})
	for _, ip := range s.ipOrder {
		sum.TopIPs = append(sum.TopIPs, IPCount{IP: ip, Count: s.IPAddresses[ip]})
	}
	sort.SliceStable(sum.TopIPs, func(i, j int) bool {
		return sum.TopIPs[i].Count > sum.TopIPs[j].Count
	})
	if len(sum.TopIPs) > opts.topIPs() {
		sum.TopIPs = sum.TopIPs[:opts.topIPs()]
	}
	return sum
}

// recent returns up to n of lines, last first, with whitespace trimmed.
func recent(lines []string, n int) []string {
	out := []string{}
	for i := len(lines) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, strings.TrimSpace(lines[i]))
	}
	return out
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
