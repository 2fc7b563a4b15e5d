package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/models"
)

var (
	calcLabelRe   = regexp.MustCompile(`^-\s*([^:]+):\s*(.*)$`)
	percentHintRe = regexp.MustCompile(`\d+(?:\.\d+)?%`)
)

// ExtractDamageCalcs reads the labelled damage-calculation blocks inside
// the "### vs <matchup>" section, after its "**Damage Calculations:**"
// marker. Each "- Label: ..." line starts a calculation; following lines
// are appended to it only when they look like calc output (KO mentions,
// percent-chance phrasing, "vs. ... HP"). Other lines in the window are
// silently ignored.
func ExtractDamageCalcs(doc, matchup string) map[string]string {
	calcs := map[string]string{}
	lines := SplitLines(doc)

	lo, hi, ok := FindSection(lines, func(line string) bool {
		m := vsHeadingRe.FindStringSubmatch(strings.TrimSpace(line))
		return m != nil && strings.EqualFold(strings.TrimSpace(m[1]), matchup)
	}, nil)
	if !ok {
		return calcs
	}

	inCalcs := false
	currentLabel := ""
	for i := lo; i < hi; i++ {
		text := strings.TrimSpace(lines[i])

		if !inCalcs {
			if l := Classify(text); l.Kind == LineLabel && normalizeLabel(l.Key) == "damage calculations" {
				inCalcs = true
			}
			continue
		}

		if l := Classify(text); l.Kind == LineLabel || HeadingDepth(text) > 0 {
			// a new labelled block or heading ends the calc window
			break
		}

		if m := calcLabelRe.FindStringSubmatch(text); m != nil {
			currentLabel = strings.TrimSpace(m[1])
			calcs[currentLabel] = strings.TrimSpace(m[2])
			continue
		}

		if currentLabel == "" || !isCalcContent(text) {
			continue
		}
		if calcs[currentLabel] == "" {
			calcs[currentLabel] = text
		} else {
			calcs[currentLabel] += "\n" + text
		}
	}
	return calcs
}

// AssociateCalcs pairs each calculation with the roster Pokémon its label
// or text mentions, by case-insensitive substring match.
func AssociateCalcs(calcs map[string]string, roster models.Roster) []models.DamageCalcEntry {
	labels := make([]string, 0, len(calcs))
	for label := range calcs {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	entries := make([]models.DamageCalcEntry, 0, len(calcs))
	for _, label := range labels {
		text := calcs[label]
		entry := models.DamageCalcEntry{Label: label, Text: text}
		haystack := strings.ToLower(label + " " + text)
		for _, member := range roster {
			if strings.Contains(haystack, strings.ToLower(member.Name)) {
				entry.Pokemon = append(entry.Pokemon, member.Name)
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// isCalcContent reports whether a line looks like damage-calculator
// output rather than surrounding prose.
func isCalcContent(text string) bool {
	if text == "" {
		return false
	}
	upper := strings.ToUpper(text)
	for _, hint := range []string{"OHKO", "2HKO", "3HKO", "4HKO"} {
		if strings.Contains(upper, hint) {
			return true
		}
	}
	lower := strings.ToLower(text)
	if percentHintRe.MatchString(text) && strings.Contains(lower, "chance") {
		return true
	}
	if strings.Contains(lower, "vs.") && strings.Contains(upper, "HP") {
		return true
	}
	return false
}
