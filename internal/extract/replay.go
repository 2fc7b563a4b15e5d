package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/models"
)

var (
	replayLineRe = regexp.MustCompile(`^-\s*\[(?i:(Win|Loss|Draw))\]\s+(\S+)(?:\s*-\s*(.*))?$`)
	gpNumberRe   = regexp.MustCompile(`(?i)\b(?:gameplan\s*|gp)([1-9])\b`)
)

// ExtractReplays parses the "## Replays" section for entries under the
// given matchup's "###" sub-heading: lines of the form
// "- [Win] <url> - notes". An empty matchup matches every sub-heading.
// When gameplanNumber is positive, only replays whose inferred number
// matches, or that carry no number at all, are returned.
//
// IDs are synthesized from the matchup label and line index; they are not
// stable across document edits.
func ExtractReplays(doc, matchup string, gameplanNumber int) []models.ReplayRecord {
	replays := []models.ReplayRecord{}
	lines := SplitLines(doc)

	lo, hi, ok := FindSection(lines, func(line string) bool {
		return HeadingDepth(line) == 2 && strings.Contains(line, "Replays")
	}, func(line string) bool {
		return HeadingDepth(line) >= 3
	})
	if !ok {
		return replays
	}

	current := ""
	for i := lo; i < hi; i++ {
		text := strings.TrimSpace(lines[i])

		if HeadingDepth(text) == 3 {
			current = strings.TrimSpace(strings.TrimLeft(text, "# "))
			continue
		}
		if matchup != "" && !strings.EqualFold(current, matchup) {
			continue
		}

		m := replayLineRe.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		record := models.ReplayRecord{
			ID:          fmt.Sprintf("%s-%d", slugify(current), i),
			URL:         m[2],
			Matchup:     current,
			Result:      models.ReplayResult(strings.ToLower(m[1])),
			Description: strings.TrimSpace(m[3]),
		}
		record.GameplanNumber = inferGameplanNumber(record.Description)

		if gameplanNumber > 0 && record.GameplanNumber != 0 && record.GameplanNumber != gameplanNumber {
			continue
		}
		replays = append(replays, record)
	}
	return replays
}

// MergeReplays concatenates replays from the structured store with
// markdown-parsed ones for the same matchup. The two provenances may
// overlap; they are deliberately not deduplicated.
func MergeReplays(stored, parsed []models.ReplayRecord) []models.ReplayRecord {
	out := make([]models.ReplayRecord, 0, len(stored)+len(parsed))
	out = append(out, stored...)
	out = append(out, parsed...)
	return out
}

// inferGameplanNumber reads a gameplan association out of free-text notes
// ("gameplan 1", "gp2"). This is a heuristic, not a structured field;
// 0 means no association.
func inferGameplanNumber(notes string) int {
	m := gpNumberRe.FindStringSubmatch(notes)
	if m == nil {
		return 0
	}
	return atoi(m[1])
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	return s
}
