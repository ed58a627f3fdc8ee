package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// delayPattern matches the "+<N>m" delay encoding carried in a status detail
var delayPattern = regexp.MustCompile(`\+(\d+)m`)

// ParseDelayMinutes extracts N from a "+<N>m" status detail.
// ok is false when the detail is empty or does not carry the pattern.
func ParseDelayMinutes(detail string) (minutes int, ok bool) {
	match := delayPattern.FindStringSubmatch(detail)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		// digits overflowing int count as malformed
		return 0, false
	}
	return n, true
}

// IsHighSeverity reports whether an impact severity text flags high severity
func IsHighSeverity(severity string) bool {
	return strings.Contains(strings.ToLower(severity), "high")
}

// FormatImpactAge renders the time since impact as shown in the flight table
func FormatImpactAge(impact, now time.Time) string {
	mins := int(now.Sub(impact) / time.Minute)
	return fmt.Sprintf("%d mins ago", mins)
}
