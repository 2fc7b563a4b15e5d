// Package extract implements the markdown-to-structured-data pipeline:
// heuristic line-scanning extractors that turn free-form gameplan
// documents into teams, matchups, replays and damage calculations. The
// source format is informally defined, so everything here is best-effort:
// extractors degrade to empty results instead of returning errors.
package extract

import "strings"

// Look-ahead bounds. These are engineering trade-offs against unbounded
// scans, not format guarantees; documents are not required to fit them.
const (
	matchupWindow   = 100 // lines scanned below a "vs" heading
	gameplanWindow  = 20  // lines scanned below a "Gameplan N" header
	rosterWindow    = 15  // lines scanned below an opponent-team marker
	linkWindow      = 5   // lines scanned for a roster link after the marker
	detailWindow    = 15  // lines between an export header and its detail line
	maxTurnNotes    = 20
	maxRosterSize   = 6
)

// SplitLines splits a document into lines, tolerating CRLF endings.
func SplitLines(doc string) []string {
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

// HeadingDepth returns the markdown heading level of a line (1 for "#",
// 2 for "##", ...) or 0 when the line is not a heading.
func HeadingDepth(line string) int {
	trimmed := strings.TrimSpace(line)
	depth := 0
	for depth < len(trimmed) && trimmed[depth] == '#' {
		depth++
	}
	if depth == 0 || depth >= len(trimmed) || trimmed[depth] != ' ' {
		return 0
	}
	return depth
}

// FindSection locates the first line matching start and returns the
// half-open range [lo, hi) of the section body (the lines after the
// matched line). The body ends at the next heading of equal-or-shallower
// depth than the start heading, unless cont reports that heading as a
// continuation of the section (e.g. a "### vs X" subsection inside
// "## Matchup-Specific Strategies"). A nil cont accepts no continuations.
// When start matches a non-heading marker line, any heading ends the body.
func FindSection(lines []string, start func(string) bool, cont func(string) bool) (int, int, bool) {
	for i, line := range lines {
		if !start(line) {
			continue
		}
		depth := HeadingDepth(line)
		hi := len(lines)
		for j := i + 1; j < len(lines); j++ {
			d := HeadingDepth(lines[j])
			if d == 0 {
				continue
			}
			if depth > 0 && d > depth {
				continue
			}
			if cont != nil && cont(lines[j]) {
				continue
			}
			hi = j
			break
		}
		return i + 1, hi, true
	}
	return 0, 0, false
}
