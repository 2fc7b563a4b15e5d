package dex

import "strings"

// formVariants are the suffix rewrites tried when a token does not match a
// table key directly. The genie formes are the usual offenders: documents
// write "Landorus" or "Tornadus" where the table keys carry the forme.
var formVariants = []func(string) string{
	func(s string) string { return s + "-Incarnate" },
	func(s string) string { return s + "-Therian" },
	func(s string) string { return strings.TrimSuffix(s, "-Incarnate") },
	func(s string) string { return strings.TrimSuffix(s, "-Therian") },
}

// Resolve maps a free-text token to a canonical Pokedex key. The fallback
// chain, in order: exact match, space/hyphen stripped match, forme-suffix
// variants, case-insensitive scan. Returns ("", false) when nothing
// resolves.
func Resolve(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	if _, ok := Pokedex[token]; ok {
		return token, true
	}

	// Hyphen/space variants: "Chien Pao" vs "Chien-Pao", "Flutter-Mane"
	// vs "Flutter Mane". Compare with both stripped.
	stripped := stripSeparators(token)
	for key := range Pokedex {
		if stripSeparators(key) == stripped {
			return key, true
		}
	}

	for _, variant := range formVariants {
		if v := variant(token); v != token {
			if _, ok := Pokedex[v]; ok {
				return v, true
			}
		}
	}

	for key := range Pokedex {
		if strings.EqualFold(key, token) {
			return key, true
		}
	}

	return "", false
}

func stripSeparators(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return strings.ToLower(s)
}

// excludedWords are capitalized move/ability/item words that free-text
// scanning would otherwise mistake for species names. Delimited formats
// ("Name @ Item", "**Name**") skip this list and trust the table match;
// bare free-text scanning must consult it first.
var excludedWords = map[string]struct{}{
	"Protect":     {},
	"Tailwind":    {},
	"Trick":       {},
	"Room":        {},
	"Trick Room":  {},
	"Fake Out":    {},
	"Fake":        {},
	"Spore":       {},
	"Wide Guard":  {},
	"Follow Me":   {},
	"Icy Wind":    {},
	"Helping Hand": {},
	"Intimidate":  {},
	"Prankster":   {},
	"Drizzle":     {},
	"Drought":     {},
	"Levitate":    {},
	"Unaware":     {},
	"Terrain":     {},
	"Dynamax":     {},
	"Terastallize": {},
	"Tera":        {},
	"Lead":        {},
	"Back":        {},
	"Wincon":      {},
	"Turn":        {},
	"Gameplan":    {},
	"Ability":     {},
	"Nature":      {},
	"Moves":       {},
	"Item":        {},
	"Spread":      {},
	"Speed":       {},
	"Attack":      {},
	"Defense":     {},
}

const (
	minPlausibleLen = 3
	maxPlausibleLen = 19
)

// PlausibleName reports whether a token could plausibly be a species name
// worth resolving. This is the auxiliary filter for free-text call sites,
// not part of Resolve itself.
func PlausibleName(token string) bool {
	token = strings.TrimSpace(token)
	if len(token) < minPlausibleLen || len(token) > maxPlausibleLen {
		return false
	}
	if _, excluded := excludedWords[token]; excluded {
		return false
	}
	return true
}

// SpriteSlug returns the sprite slug for a token after resolution, or ""
// when the token does not resolve.
func SpriteSlug(token string) string {
	name, ok := Resolve(token)
	if !ok {
		return ""
	}
	return Pokedex[name].Sprite
}
