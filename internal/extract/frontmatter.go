package extract

import (
	"log"
	"regexp"
	"strings"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/models"
)

// vgcTermsRe feeds the legacy tag fallback for documents without front
// matter.
var vgcTermsRe = regexp.MustCompile(`(?i)\b(trick room|tailwind|rain|sun|sand|snow|hail|hyper offense|balance|bulky offense|perish song|psyspam|stall)\b`)

// ParseFrontMatter reads the optional "---" delimited metadata block at
// the top of a document as flat key: value pairs. Bracketed values split
// on commas; surrounding quotes are stripped. A block missing its closing
// delimiter, or no block at all, falls back to the legacy whole-document
// heuristics (title from the first "# " heading, tags from fixed VGC
// terms plus roster names). The fallback is logged, never surfaced.
func ParseFrontMatter(doc string) models.FrontMatter {
	lines := SplitLines(doc)

	start := -1
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if strings.TrimSpace(l) == "---" {
			start = i
		}
		break
	}
	if start < 0 {
		return legacyFrontMatter(doc, lines)
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end < 0 {
		log.Printf("extract: front matter block not closed, using legacy metadata")
		return legacyFrontMatter(doc, lines)
	}

	fm := models.FrontMatter{}
	for _, line := range lines[start+1 : end] {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch strings.ToLower(key) {
		case "title":
			fm.Title = unquote(value)
		case "tags":
			fm.Tags = splitList(value)
		case "season":
			fm.Season = unquote(value)
		case "tournament":
			fm.Tournament = unquote(value)
		case "format":
			fm.Format = unquote(value)
		case "author":
			fm.Author = unquote(value)
		case "datecreated", "date_created", "date":
			fm.DateCreated = unquote(value)
		case "teamarchetype", "team_archetype", "archetype":
			fm.TeamArchetype = unquote(value)
		case "corestrategy", "core_strategy", "strategy":
			fm.CoreStrategy = unquote(value)
		}
	}
	return fm
}

// legacyFrontMatter derives metadata from the document body when no front
// matter exists.
func legacyFrontMatter(doc string, lines []string) models.FrontMatter {
	fm := models.FrontMatter{}

	for _, l := range lines {
		if HeadingDepth(l) == 1 {
			fm.Title = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l), "#"))
			break
		}
	}

	seen := map[string]struct{}{}
	for _, m := range vgcTermsRe.FindAllString(doc, -1) {
		tag := strings.ToLower(m)
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		fm.Tags = append(fm.Tags, tag)
	}
	for _, name := range ExtractTeam(doc).Names() {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		fm.Tags = append(fm.Tags, name)
	}
	return fm
}

func splitList(value string) []string {
	value = strings.TrimPrefix(value, "[")
	value = strings.TrimSuffix(value, "]")
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := unquote(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
