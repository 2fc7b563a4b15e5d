package extract

import (
	"log"
	"regexp"
	"strings"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/dex"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/metrics"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/models"
)

const (
	leadPlaceholder = "Check gameplan for lead"
	backPlaceholder = "Check gameplan for back"
)

var (
	vsHeadingRe     = regexp.MustCompile(`^#{2,3}\s+vs\.?\s+(.+)$`)
	gameplanHeadRe  = regexp.MustCompile(`(?i)gameplan\s+(\d+):\s*vs\.?\s+(.+)$`)
	markdownLinkRe  = regexp.MustCompile(`\[[^\]]*\]\((https?://[^)\s]+)\)`)
	rosterLineRe    = regexp.MustCompile(`^-\s*([A-Za-z][A-Za-z0-9 .':-]*?)(?:\s*@\s*([^(\n]+))?(?:\(.*)?$`)
	turnNoteRe      = regexp.MustCompile(`^-\s*Turn\b`)
)

// opponentTeamMarkers flag the line that introduces a manually listed
// opponent roster or a pokepaste link.
var opponentTeamMarkers = []string{"opponent team:", "opponent's team:", "pokepaste"}

// ExtractMatchups pulls one MatchupRecord per "vs <Opponent>" subsection
// of the "Matchup-Specific Strategies" section. A record is emitted only
// when at least one of lead/back was found; subsections with neither are
// treated as not yet authored and skipped. Returns an empty map when the
// section is absent.
func ExtractMatchups(doc string) map[string]models.MatchupRecord {
	out := map[string]models.MatchupRecord{}
	lines := SplitLines(doc)

	lo, hi, ok := FindSection(lines, func(line string) bool {
		return HeadingDepth(line) == 2 && strings.Contains(line, "Matchup")
	}, func(line string) bool {
		// "## vs X" headings continue the section; any other "##" ends it
		// (so nothing is ever read from inside "## Replays").
		return vsHeadingRe.MatchString(strings.TrimSpace(line))
	})
	if !ok {
		return out
	}

	for i := lo; i < hi; i++ {
		m := vsHeadingRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			continue
		}
		label := strings.TrimSpace(m[1])

		// Bound the matchup body: the look-ahead window, the next vs
		// heading, or the section end, whichever comes first.
		end := i + 1 + matchupWindow
		if end > hi {
			end = hi
		}
		for j := i + 1; j < end; j++ {
			if vsHeadingRe.MatchString(strings.TrimSpace(lines[j])) {
				end = j
				break
			}
		}

		record, found := parseMatchupBody(lines, i+1, end, label)
		if found {
			// Duplicate "vs" headings for one opponent are last-wins.
			out[label] = record
		}
	}
	return out
}

func parseMatchupBody(lines []string, lo, hi int, label string) (models.MatchupRecord, bool) {
	record := models.MatchupRecord{Opponent: label, OpponentRoster: models.Roster{}}

	var noteLines []string
	inStructured := false

	for i := lo; i < hi; i++ {
		l := Classify(lines[i])

		if gameplanHeadRe.MatchString(l.Text) {
			gp, consumed := parseGameplan(lines, i, hi)
			if gp != nil {
				record.Gameplans = append(record.Gameplans, *gp)
			}
			i += consumed - 1
			inStructured = false
			continue
		}

		if isOpponentTeamMarker(l.Text) {
			roster, link := parseOpponentRoster(lines, i, hi)
			record.OpponentRoster = roster
			record.RosterLinkURL = link
			inStructured = true
			continue
		}

		if l.Kind == LineLabel {
			switch normalizeLabel(l.Key) {
			case "my lead":
				if record.MyLead == "" {
					record.MyLead = l.Value
				}
				inStructured = false
			case "my back":
				if record.MyBack == "" {
					record.MyBack = l.Value
				}
				inStructured = false
			case "damage calculations":
				// calc blocks have their own extractor; keep their
				// content out of the free-text notes
				inStructured = true
			default:
				inStructured = false
			}
			continue
		}

		if inStructured {
			// roster lines below the marker belong to parseOpponentRoster
			continue
		}
		if l.Kind == LinePlain && l.Text != "" {
			noteLines = append(noteLines, l.Text)
		}
	}

	record.Notes = strings.Join(noteLines, "\n")

	// Neither lead nor back: the subsection is not yet authored.
	if record.MyLead == "" && record.MyBack == "" {
		return record, false
	}
	if record.MyLead == "" {
		record.MyLead = leadPlaceholder
	}
	if record.MyBack == "" {
		record.MyBack = backPlaceholder
	}
	return record, true
}

// parseGameplan reads one "Gameplan N: vs <Lead>" block. The record is
// retained only when both lead and back were extracted; partial plans are
// discarded entirely. Returns the number of lines consumed.
func parseGameplan(lines []string, start, hi int) (*models.GameplanRecord, int) {
	head := gameplanHeadRe.FindStringSubmatch(strings.TrimSpace(lines[start]))
	if head == nil {
		return nil, 1
	}

	gp := models.GameplanRecord{
		Number:       atoi(head[1]),
		OpponentLead: strings.TrimSpace(strings.TrimSuffix(head[2], "**")),
		TurnNotes:    []string{},
	}

	end := start + 1 + gameplanWindow
	if end > hi {
		end = hi
	}

	consumed := 1
	for i := start + 1; i < end; i++ {
		text := strings.TrimSpace(lines[i])
		if gameplanHeadRe.MatchString(text) || vsHeadingRe.MatchString(text) {
			break
		}
		consumed = i - start + 1

		l := Classify(lines[i])
		if l.Kind != LineLabel {
			continue
		}
		switch normalizeLabel(l.Key) {
		case "my lead":
			gp.MyLead = l.Value
		case "my back":
			gp.MyBack = l.Value
		case "my wincon", "my win condition":
			gp.MyWinCon = l.Value
		case "their wincon", "their win condition":
			gp.TheirWinCon = l.Value
		case "first 3 turns":
			notes, n := collectTurnNotes(lines, i+1, hi)
			gp.TurnNotes = notes
			i += n
			consumed = i - start + 1
		}
	}

	if gp.MyLead == "" || gp.MyBack == "" {
		return nil, consumed
	}
	return &gp, consumed
}

// collectTurnNotes gathers the "- Turn ..." lines below a First 3 Turns
// label, verbatim, plus any trailing Replay Examples block content.
func collectTurnNotes(lines []string, start, hi int) ([]string, int) {
	notes := []string{}
	i := start
	for ; i < hi && len(notes) < maxTurnNotes; i++ {
		text := strings.TrimSpace(lines[i])
		if text == "" {
			continue
		}
		if turnNoteRe.MatchString(text) {
			notes = append(notes, text)
			continue
		}
		if l := Classify(text); l.Kind == LineLabel && normalizeLabel(l.Key) == "replay examples" {
			if l.Value != "" {
				notes = append(notes, l.Value)
			}
			for i++; i < hi; i++ {
				t := strings.TrimSpace(lines[i])
				if t == "" || HeadingDepth(t) > 0 || Classify(t).Kind == LineLabel {
					break
				}
				notes = append(notes, t)
			}
		}
		break
	}
	return notes, i - start
}

// parseOpponentRoster reads the manually listed opponent team under its
// marker line: a markdown roster link on the marker line or within the
// next few lines, and "- Name @ Item" / "- Name" entries below it.
// Unresolvable names are dropped with a warning, never inserted as
// placeholders.
func parseOpponentRoster(lines []string, marker, hi int) (models.Roster, string) {
	var link string
	linkEnd := marker + 1 + linkWindow
	if linkEnd > hi {
		linkEnd = hi
	}
	for i := marker; i < linkEnd; i++ {
		if m := markdownLinkRe.FindStringSubmatch(lines[i]); m != nil {
			link = m[1]
			break
		}
	}

	roster := models.Roster{}
	end := marker + 1 + rosterWindow
	if end > hi {
		end = hi
	}
	for i := marker + 1; i < end && len(roster) < maxRosterSize; i++ {
		text := strings.TrimSpace(lines[i])
		if HeadingDepth(text) > 0 || gameplanHeadRe.MatchString(text) {
			break
		}
		m := rosterLineRe.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		token := strings.TrimSpace(m[1])
		// The "@ Item" delimiter marks a trusted roster line; only bare
		// "- Name" tokens go through the free-text plausibility filter.
		if strings.TrimSpace(m[2]) == "" && !dex.PlausibleName(token) {
			continue
		}
		name, ok := dex.Resolve(token)
		if !ok {
			metrics.UnresolvedNamesTotal.Inc()
			log.Printf("extract: dropping unresolvable opponent name %q", token)
			continue
		}
		roster = append(roster, models.RosterEntry{
			Name:  name,
			Item:  strings.TrimSpace(m[2]),
			Moves: []string{},
		})
	}
	return roster, link
}

func isOpponentTeamMarker(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range opponentTeamMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func normalizeLabel(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}
