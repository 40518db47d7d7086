package loganalyzer

import (
	"strconv"
	"strings"
)

const (
	minStatusCode = 100
	maxStatusCode = 599
)

// parseUint is strconv.ParseUint in base 10, also accepting a single
// leading plus sign.
func parseUint(s string, bitSize int) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bitSize)
}

// ExtractIP returns the first whitespace-delimited token in line that looks
// like a dotted-quad IPv4 address: exactly four dot-separated parts, each a
// decimal number from 0 to 255, optionally written with a leading plus
// sign. This is a syntactic check only; IPv6 addresses and tokens with
// trailing punctuation are not recognised.
func ExtractIP(line string) (string, bool) {
	for _, word := range strings.Fields(line) {
		parts := strings.Split(word, ".")
		if len(parts) != 4 {
			continue
		}
		valid := true
		for _, p := range parts {
			if _, err := parseUint(p, 8); err != nil {
				valid = false
				break
			}
		}
		if valid {
			return word, true
		}
	}
	return "", false
}

// ExtractStatusCode returns the first whitespace-delimited token in line
// that parses as an integer between 100 and 599 inclusive. Any number in
// that range qualifies, so ports, PIDs and sizes can be mistaken for HTTP
// status codes.
func ExtractStatusCode(line string) (int, bool) {
	for _, word := range strings.Fields(line) {
		code, err := parseUint(word, 16)
		if err != nil {
			continue
		}
		if code >= minStatusCode && code <= maxStatusCode {
			return int(code), true
		}
	}
	return 0, false
}
