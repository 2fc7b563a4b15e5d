package extract

import (
	"regexp"
	"strings"
)

// LineKind tags a recognized markdown line shape. Classification says what
// shape a line has; the per-section state machines decide what it means
// (a "- X" line is a move inside a team block but a roster entry inside an
// opponent-team block).
type LineKind int

const (
	LinePlain LineKind = iota
	LineHeading
	LineBoldHeader   // **Name** or **Name** @ Item
	LineExportHeader // Name @ Item (pasted-export dialect)
	LineLabel        // **Key:** value
	LineDetail       // Ability: X | EVs: ... | ... Nature | Level: N
	LineDash         // - anything
)

// Line is one classified input line.
type Line struct {
	Kind  LineKind
	Depth int    // heading depth, LineHeading only
	Text  string // trimmed source text
	Name  string // header name, bold/export headers
	Item  string // held item, bold/export headers
	Key   string // label or detail key
	Value string // label or detail value
}

var (
	boldHeaderRe   = regexp.MustCompile(`^\*\*([^*]+?)\*\*(?:\s*@\s*(.+))?$`)
	labelRe        = regexp.MustCompile(`^\*\*([^*]+?):\*\*\s*(.*)$`)
	exportHeaderRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 .':()-]*?)\s+@\s+(.+)$`)
	nicknameRe     = regexp.MustCompile(`^(.*)\(([^)]+)\)\s*$`)
	natureRe       = regexp.MustCompile(`^[A-Za-z]+ Nature$`)
)

// detailKeys are the pasted-export detail prefixes. Level is recognized so
// the block parser can consume it, but it is discarded from roster entries.
var detailKeys = []string{"Ability:", "EVs:", "IVs:", "Tera Type:", "Shiny:", "Level:"}

// Classify tags a single line. Order matters: labels are bold text ending
// in a colon and must win over plain bold headers.
func Classify(line string) Line {
	trimmed := strings.TrimSpace(line)
	out := Line{Kind: LinePlain, Text: trimmed}

	if trimmed == "" {
		return out
	}

	if d := HeadingDepth(trimmed); d > 0 {
		out.Kind = LineHeading
		out.Depth = d
		return out
	}

	if m := labelRe.FindStringSubmatch(trimmed); m != nil {
		out.Kind = LineLabel
		out.Key = strings.TrimSpace(m[1])
		out.Value = strings.TrimSpace(m[2])
		return out
	}

	if m := boldHeaderRe.FindStringSubmatch(trimmed); m != nil {
		out.Kind = LineBoldHeader
		out.Name = strings.TrimSpace(m[1])
		out.Item = strings.TrimSpace(m[2])
		return out
	}

	if strings.HasPrefix(trimmed, "-") {
		out.Kind = LineDash
		out.Value = strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
		return out
	}

	for _, key := range detailKeys {
		if strings.HasPrefix(trimmed, key) {
			out.Kind = LineDetail
			out.Key = strings.TrimSuffix(key, ":")
			out.Value = strings.TrimSpace(trimmed[len(key):])
			return out
		}
	}
	if natureRe.MatchString(trimmed) {
		out.Kind = LineDetail
		out.Key = "Nature"
		out.Value = strings.TrimSpace(strings.TrimSuffix(trimmed, "Nature"))
		return out
	}

	if m := exportHeaderRe.FindStringSubmatch(trimmed); m != nil {
		out.Kind = LineExportHeader
		out.Name = strings.TrimSpace(m[1])
		out.Item = strings.TrimSpace(m[2])
		return out
	}

	return out
}

// splitNickname resolves the "Nickname (Species)" export syntax, returning
// the species when a parenthesized one is present. Gender markers "(M)"
// and "(F)" are not species.
func splitNickname(name string) string {
	m := nicknameRe.FindStringSubmatch(name)
	if m == nil {
		return strings.TrimSpace(name)
	}
	inner := strings.TrimSpace(m[2])
	if inner == "M" || inner == "F" {
		return strings.TrimSpace(m[1])
	}
	return inner
}
