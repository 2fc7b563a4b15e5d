package models

// Derived record types produced by the extraction pipeline. These are
// read-only projections recomputed from the markdown on every request;
// none of them are persisted.

// RosterEntry is one team member. Identity is positional within a roster.
type RosterEntry struct {
	Name     string   `json:"name"` // canonical species name
	Item     string   `json:"item,omitempty"`
	Ability  string   `json:"ability,omitempty"`
	TeraType string   `json:"tera_type,omitempty"`
	EVs      string   `json:"evs,omitempty"`
	IVs      string   `json:"ivs,omitempty"`
	Nature   string   `json:"nature,omitempty"`
	Moves    []string `json:"moves"`
}

// Roster is an ordered team of at most six entries.
type Roster []RosterEntry

// Names returns the canonical names in roster order.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r))
	for _, e := range r {
		names = append(names, e.Name)
	}
	return names
}

// GameplanRecord is one conditional response plan keyed by the opponent's
// observed lead. Only complete records (both MyLead and MyBack extracted)
// are ever emitted.
type GameplanRecord struct {
	Number       int      `json:"number"`
	OpponentLead string   `json:"opponent_lead"`
	MyLead       string   `json:"my_lead"`
	MyBack       string   `json:"my_back"`
	MyWinCon     string   `json:"my_wincon,omitempty"`
	TheirWinCon  string   `json:"their_wincon,omitempty"`
	TurnNotes    []string `json:"turn_notes"`
}

// MatchupRecord describes the response to one opposing archetype.
type MatchupRecord struct {
	Opponent       string           `json:"opponent"`
	MyLead         string           `json:"my_lead"`
	MyBack         string           `json:"my_back"`
	OpponentRoster Roster           `json:"opponent_roster"`
	RosterLinkURL  string           `json:"roster_link_url,omitempty"`
	Gameplans      []GameplanRecord `json:"gameplans"`
	Notes          string           `json:"notes,omitempty"`
}

type ReplayResult string

const (
	ReplayWin  ReplayResult = "win"
	ReplayLoss ReplayResult = "loss"
	ReplayDraw ReplayResult = "draw"
)

// ReplayRecord is one logged battle replay. IDs are synthesized from the
// matchup label and line index and are not stable across document edits.
type ReplayRecord struct {
	ID             string       `json:"id"`
	URL            string       `json:"url"`
	Matchup        string       `json:"matchup"`
	GameplanNumber int          `json:"gameplan_number,omitempty"` // 0 = unassociated
	Result         ReplayResult `json:"result"`
	Description    string       `json:"description,omitempty"`
	DateAdded      string       `json:"date_added"`
}

// DamageCalcEntry is one labelled damage-calculation block, associated
// post-hoc with any roster Pokémon its label or text mentions.
type DamageCalcEntry struct {
	Label   string   `json:"label"`
	Text    string   `json:"text"`
	Pokemon []string `json:"pokemon,omitempty"`
}

// FrontMatter holds the metadata block parsed from the top of a document.
type FrontMatter struct {
	Title         string   `json:"title"`
	Tags          []string `json:"tags"`
	Season        string   `json:"season"`
	Tournament    string   `json:"tournament"`
	Format        string   `json:"format"`
	Author        string   `json:"author"`
	DateCreated   string   `json:"date_created"`
	TeamArchetype string   `json:"team_archetype"`
	CoreStrategy  string   `json:"core_strategy"`
}

// PasteRoster is the result of fetching an external roster-sharing URL.
type PasteRoster struct {
	Title  string `json:"title,omitempty"`
	Source string `json:"source"`
	Roster Roster `json:"roster"`
}
