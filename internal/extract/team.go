package extract

import (
	"log"
	"strings"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/dex"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/metrics"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/models"
)

// ExtractTeam pulls the roster (at most six entries) out of a gameplan
// document. Two dialects are supported: the pasted team export
// ("Name @ Item" headers with Ability/EVs/move detail lines) and bold
// markdown inside a "Team Composition" section. Returns an empty roster
// when neither dialect yields entries; never errors.
func ExtractTeam(doc string) models.Roster {
	lines := SplitLines(doc)
	classified := make([]Line, len(lines))
	for i, l := range lines {
		classified[i] = Classify(l)
	}

	// Dialect A is used exclusively when a pasted-export header with a
	// nearby detail line exists and no bold roster header competes.
	if hasExportBlock(classified) && !hasBoldHeader(classified) {
		return parseExportRoster(classified, 0, len(classified))
	}
	return parseBoldRoster(lines, classified)
}

// ParseExport parses pasted-export text directly, with no dialect
// detection. Used for fetched paste bodies, which are always in the
// export format.
func ParseExport(text string) models.Roster {
	lines := SplitLines(text)
	classified := make([]Line, len(lines))
	for i, l := range lines {
		classified[i] = Classify(l)
	}
	return parseExportRoster(classified, 0, len(classified))
}

func hasExportBlock(classified []Line) bool {
	for i, l := range classified {
		if l.Kind != LineExportHeader {
			continue
		}
		end := i + 1 + detailWindow
		if end > len(classified) {
			end = len(classified)
		}
		for j := i + 1; j < end; j++ {
			if classified[j].Kind == LineDetail {
				return true
			}
			if classified[j].Kind == LineExportHeader {
				break
			}
		}
	}
	return false
}

func hasBoldHeader(classified []Line) bool {
	for _, l := range classified {
		if l.Kind == LineBoldHeader {
			return true
		}
	}
	return false
}

// parseExportRoster consumes consecutive pasted-export blocks: a header
// line, then detail and move lines until the next header. Level lines are
// recognized but not part of the entry.
func parseExportRoster(classified []Line, lo, hi int) models.Roster {
	roster := models.Roster{}
	var current *models.RosterEntry

	flush := func() {
		if current != nil && len(roster) < maxRosterSize {
			roster = append(roster, *current)
		}
		current = nil
	}

	for i := lo; i < hi && len(roster) < maxRosterSize; i++ {
		l := classified[i]
		switch l.Kind {
		case LineExportHeader:
			flush()
			species := splitNickname(l.Name)
			name, ok := dex.Resolve(species)
			if !ok {
				metrics.UnresolvedNamesTotal.Inc()
				log.Printf("extract: dropping unresolvable roster name %q", species)
				continue
			}
			current = &models.RosterEntry{Name: name, Item: l.Item, Moves: []string{}}
		case LineDetail:
			if current == nil {
				continue
			}
			applyDetail(current, l.Key, l.Value)
		case LineDash:
			if current != nil && l.Value != "" && len(current.Moves) < 4 {
				current.Moves = append(current.Moves, l.Value)
			}
		}
	}
	flush()
	return roster
}

// parseBoldRoster scans the located "Team Composition" section for bold
// roster headers, attaching any detail and move lines that follow each
// one. Entries without an item still count.
func parseBoldRoster(lines []string, classified []Line) models.Roster {
	lo, hi, ok := FindSection(lines, func(line string) bool {
		return HeadingDepth(line) == 2 && strings.Contains(line, "Team")
	}, nil)
	if !ok {
		return models.Roster{}
	}

	roster := models.Roster{}
	var current *models.RosterEntry

	flush := func() {
		if current != nil && len(roster) < maxRosterSize {
			roster = append(roster, *current)
		}
		current = nil
	}

	for i := lo; i < hi && len(roster) < maxRosterSize; i++ {
		l := classified[i]
		switch l.Kind {
		case LineBoldHeader:
			// Bold markers delimit the name, so the match is trusted:
			// no plausibility filter. Flushing before resolution keeps a
			// dropped header's detail lines off the previous entry.
			flush()
			species := splitNickname(l.Name)
			name, resolved := dex.Resolve(species)
			if !resolved {
				metrics.UnresolvedNamesTotal.Inc()
				log.Printf("extract: dropping unresolvable roster name %q", species)
				continue
			}
			current = &models.RosterEntry{Name: name, Item: l.Item, Moves: []string{}}
		case LineDetail:
			if current != nil {
				applyDetail(current, l.Key, l.Value)
			}
		case LineDash:
			if current != nil && l.Value != "" && len(current.Moves) < 4 {
				current.Moves = append(current.Moves, l.Value)
			}
		}
	}
	flush()
	return roster
}

// applyDetail folds one detail line into an entry. Export text sometimes
// joins details with pipes ("Ability: As One | Tera: Dark"), so each
// segment is applied independently.
func applyDetail(entry *models.RosterEntry, key, value string) {
	segments := strings.Split(value, "|")
	first := strings.TrimSpace(segments[0])

	switch key {
	case "Ability":
		entry.Ability = first
	case "EVs":
		entry.EVs = first
	case "IVs":
		entry.IVs = first
	case "Tera Type":
		entry.TeraType = first
	case "Nature":
		entry.Nature = first
	case "Level", "Shiny":
		// recognized, not retained
	}

	for _, seg := range segments[1:] {
		seg = strings.TrimSpace(seg)
		k, v, found := strings.Cut(seg, ":")
		if !found {
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		switch k {
		case "Tera", "Tera Type":
			entry.TeraType = v
		case "Ability":
			entry.Ability = v
		case "EVs":
			entry.EVs = v
		case "IVs":
			entry.IVs = v
		case "Nature":
			entry.Nature = v
		}
	}
}
