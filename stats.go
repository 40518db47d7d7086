package loganalyzer

// Stats accumulates counts over the lines of a single log stream. The zero
// value is not ready to use; call NewStats.
type Stats struct {
	TotalLines  int
	Levels      map[Level]int
	Errors      []string
	Warnings    []string
	IPAddresses map[string]int
	StatusCodes map[int]int

	// first-seen order of keys, used to break ties between equal counts
	levelOrder []Level
	ipOrder    []string
}

// NewStats returns an empty Stats.
func NewStats() *Stats {
	return &Stats{
		Levels:      map[Level]int{},
		IPAddresses: map[string]int{},
		StatusCodes: map[int]int{},
	}
}

// AnalyzeLine adds a single line to the statistics. The line is counted,
// classified by level, and searched for an IP address and a status code.
// Lines classified as ERROR are kept in Errors, and WARN or WARNING lines in
// Warnings, exactly as given.
func (s *Stats) AnalyzeLine(line string) {
	s.TotalLines++

	if level, ok := Classify(line); ok {
		if _, seen := s.Levels[level]; !seen {
			s.levelOrder = append(s.levelOrder, level)
		}
		s.Levels[level]++
		switch {
		case level == LevelError:
			s.Errors = append(s.Errors, line)
		case level.IsWarning():
			s.Warnings = append(s.Warnings, line)
		}
	}

	if ip, ok := ExtractIP(line); ok {
		if _, seen := s.IPAddresses[ip]; !seen {
			s.ipOrder = append(s.ipOrder, ip)
		}
		s.IPAddresses[ip]++
	}

	if code, ok := ExtractStatusCode(line); ok {
		s.StatusCodes[code]++
	}
}
