package loganalyzer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const reportTitle = "LOG ANALYSIS REPORT"

var headerStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.DoubleBorder()).
	Padding(0, 3)

// WriteText writes the summary to w as a human-readable report. Sections
// with nothing to show are left out; the header and line count are always
// written.
func (sum Summary) WriteText(w io.Writer) error {
	var b strings.Builder
	b.WriteString(headerStyle.Render(reportTitle))
	b.WriteString("\n\n")
	if sum.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", sum.Source)
	}
	fmt.Fprintf(&b, "Total lines analyzed: %d\n\n", sum.TotalLines)

	if len(sum.Levels) > 0 {
		b.WriteString("Levels:\n")
		for _, l := range sum.Levels {
			fmt.Fprintf(&b, "   %s : %d (%.1f%%)\n", l.Level, l.Count, l.Percent)
		}
		b.WriteString("\n")
	}

	if len(sum.StatusCodes) > 0 {
		b.WriteString("HTTP status codes:\n")
		for _, c := range sum.StatusCodes {
			fmt.Fprintf(&b, "   %d : %d\n", c.Code, c.Count)
		}
		b.WriteString("\n")
	}

	if len(sum.TopIPs) > 0 {
		b.WriteString("Top IP addresses:\n")
		for _, ip := range sum.TopIPs {
			fmt.Fprintf(&b, "   %s : %d requests\n", ip.IP, ip.Count)
		}
		b.WriteString("\n")
	}

	writeRecent(&b, "Recent errors", sum.ErrorCount, sum.RecentErrors)
	writeRecent(&b, "Recent warnings", sum.WarningCount, sum.RecentWarnings)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRecent(b *strings.Builder, title string, total int, lines []string) {
	if total == 0 {
		return
	}
	fmt.Fprintf(b, "%s (%d):\n", title, total)
	for _, line := range lines {
		fmt.Fprintf(b, "   %s\n", line)
	}
	b.WriteString("\n")
}

// String returns the text report.
func (sum Summary) String() string {
	var b strings.Builder
	_ = sum.WriteText(&b) // strings.Builder never fails
	return b.String()
}
