// Package testutil provides shared testing utilities used across the project.
package testutil

import (
	"regexp"
	"strings"
)

// ansiRegex matches CSI escape sequences: ESC [ parameters, final letter.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes ANSI escape codes from a string so CLI output can
// be compared without colors.
func StripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// Lines strips ANSI codes and trailing blanks from s and splits it into
// lines, dropping the final empty line.
func Lines(s string) []string {
	s = strings.TrimRight(StripAnsiCodes(s), "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
