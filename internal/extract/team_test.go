package extract

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

const exportDoc = `Calyrex-Shadow @ Life Orb
Ability: As One (Spectrier)
Level: 50
Tera Type: Dark
EVs: 4 HP / 252 SpA / 252 Spe
Timid Nature
- Astral Barrage
- Psychic
- Protect
- Pollen Puff

Incineroar @ Safety Goggles
Ability: Intimidate
EVs: 252 HP / 4 Atk / 252 Def
Careful Nature
- Fake Out
- Knock Off
- Parting Shot
- Flare Blitz
`

const boldDoc = `# Caly-Shadow Tailwind

## Team Composition (6 Pokemon)

**Calyrex-Shadow** @ Life Orb
Ability: As One | Tera: Dark
- Astral Barrage

**Zamazenta** @ Rusted Shield

## Matchup-Specific Strategies

### vs Trick Room
**My Lead:** Calyrex-Shadow + Incineroar
`

func TestExtractTeamPastedExport(t *testing.T) {
	roster := ExtractTeam(exportDoc)
	if len(roster) != 2 {
		t.Fatalf("len(roster) = %d, want 2", len(roster))
	}

	caly := roster[0]
	if caly.Name != "Calyrex-Shadow" {
		t.Errorf("Name = %q, want Calyrex-Shadow", caly.Name)
	}
	if caly.Item != "Life Orb" {
		t.Errorf("Item = %q, want Life Orb", caly.Item)
	}
	if caly.Ability != "As One (Spectrier)" {
		t.Errorf("Ability = %q", caly.Ability)
	}
	if caly.TeraType != "Dark" {
		t.Errorf("TeraType = %q, want Dark", caly.TeraType)
	}
	if caly.EVs != "4 HP / 252 SpA / 252 Spe" {
		t.Errorf("EVs = %q", caly.EVs)
	}
	if caly.Nature != "Timid" {
		t.Errorf("Nature = %q, want Timid", caly.Nature)
	}
	want := []string{"Astral Barrage", "Psychic", "Protect", "Pollen Puff"}
	if !reflect.DeepEqual(caly.Moves, want) {
		t.Errorf("Moves = %v, want %v", caly.Moves, want)
	}

	if roster[1].Name != "Incineroar" || roster[1].Item != "Safety Goggles" {
		t.Errorf("second entry = %+v", roster[1])
	}
}

func TestExtractTeamBoldMarkdown(t *testing.T) {
	roster := ExtractTeam(boldDoc)
	if len(roster) != 2 {
		t.Fatalf("len(roster) = %d, want 2", len(roster))
	}

	if roster[0].Name != "Calyrex-Shadow" {
		t.Errorf("first name = %q", roster[0].Name)
	}
	if roster[0].Item != "Life Orb" {
		t.Errorf("first item = %q", roster[0].Item)
	}
	if roster[0].Ability != "As One" {
		t.Errorf("ability = %q, want As One (pipe segment split)", roster[0].Ability)
	}
	if roster[0].TeraType != "Dark" {
		t.Errorf("tera = %q, want Dark", roster[0].TeraType)
	}
	if !reflect.DeepEqual(roster[0].Moves, []string{"Astral Barrage"}) {
		t.Errorf("moves = %v", roster[0].Moves)
	}

	if roster[1].Name != "Zamazenta" {
		t.Errorf("second name = %q", roster[1].Name)
	}
	if roster[1].Item != "Rusted Shield" {
		t.Errorf("second item = %q", roster[1].Item)
	}
	if len(roster[1].Moves) != 0 {
		t.Errorf("second moves = %v, want none", roster[1].Moves)
	}
}

func TestExtractTeamVariants(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "nickname resolves to species",
			doc:  "## Team Composition\n**Big Cat (Incineroar)** @ Sitrus Berry\n",
			want: []string{"Incineroar"},
		},
		{
			name: "gender marker is not a species",
			doc:  "Garchomp (M) @ Choice Scarf\nAbility: Rough Skin\n- Earthquake\n",
			want: []string{"Garchomp"},
		},
		{
			name: "bold entry without item still counts",
			doc:  "## Team Composition\n**Rillaboom**\n**Amoonguss**\n",
			want: []string{"Rillaboom", "Amoonguss"},
		},
		{
			name: "no team at all",
			doc:  "# Notes\njust prose here\n",
			want: []string{},
		},
		{
			name: "unresolvable names are dropped",
			doc:  "## Team Composition\n**Fakemon** @ Life Orb\n**Dondozo** @ Leftovers\n",
			want: []string{"Dondozo"},
		},
		{
			name: "bold delimiter trusts long canonical names",
			doc:  "## Team Composition\n**Urshifu-Rapid-Strike**\n**Rillaboom** @ Assault Vest\n",
			want: []string{"Urshifu-Rapid-Strike", "Rillaboom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTeam(tt.doc).Names()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("names = %v, want %v", got, tt.want)
			}
		})
	}
}

// The roster is capped at six entries no matter how many lines match.
func TestExtractTeamRosterCap(t *testing.T) {
	names := []string{"Incineroar", "Rillaboom", "Amoonguss", "Dondozo", "Gholdengo", "Dragonite", "Garchomp", "Annihilape"}
	var b strings.Builder
	b.WriteString("## Team Composition\n")
	for _, n := range names {
		fmt.Fprintf(&b, "**%s** @ Leftovers\n", n)
	}

	roster := ExtractTeam(b.String())
	if len(roster) > 6 {
		t.Fatalf("len(roster) = %d, must be <= 6", len(roster))
	}
	if len(roster) != 6 {
		t.Errorf("len(roster) = %d, want exactly 6 here", len(roster))
	}
}

// A bold header that fails resolution must not leak its detail and move
// lines onto the previous roster entry.
func TestExtractTeamDroppedHeaderKeepsLinesOff(t *testing.T) {
	doc := `## Team Composition
**Dondozo** @ Leftovers
- Wave Crash

**Fakemon** @ Life Orb
Ability: Made Up
- Bad Move

**Rillaboom**
- Fake Out
`
	roster := ExtractTeam(doc)
	if len(roster) != 2 {
		t.Fatalf("len(roster) = %d, want 2", len(roster))
	}
	if !reflect.DeepEqual(roster[0].Moves, []string{"Wave Crash"}) {
		t.Errorf("Dondozo moves = %v, want only Wave Crash", roster[0].Moves)
	}
	if roster[0].Ability != "" {
		t.Errorf("Dondozo ability = %q, want empty", roster[0].Ability)
	}
	if roster[1].Name != "Rillaboom" || !reflect.DeepEqual(roster[1].Moves, []string{"Fake Out"}) {
		t.Errorf("second entry = %+v", roster[1])
	}
}

// Converting a pasted-export fragment to bold-markdown form re-extracts
// the same names and items in the same order.
func TestDialectRoundTrip(t *testing.T) {
	rosterA := ExtractTeam(exportDoc)
	if len(rosterA) == 0 {
		t.Fatal("dialect A extraction came back empty")
	}

	var b strings.Builder
	b.WriteString("## Team Composition\n\n")
	for _, e := range rosterA {
		fmt.Fprintf(&b, "**%s** @ %s\n", e.Name, e.Item)
	}
	rosterB := ExtractTeam(b.String())

	if len(rosterB) != len(rosterA) {
		t.Fatalf("round trip length %d, want %d", len(rosterB), len(rosterA))
	}
	for i := range rosterA {
		if rosterB[i].Name != rosterA[i].Name {
			t.Errorf("entry %d name = %q, want %q", i, rosterB[i].Name, rosterA[i].Name)
		}
		if rosterB[i].Item != rosterA[i].Item {
			t.Errorf("entry %d item = %q, want %q", i, rosterB[i].Item, rosterA[i].Item)
		}
	}
}

// A pasted export coexisting with bold headers falls back to bold
// scanning (dialect selection rule).
func TestDialectSelection(t *testing.T) {
	doc := "## Team Composition\n**Dondozo** @ Leftovers\n\n" + exportDoc
	roster := ExtractTeam(doc)
	if len(roster) == 0 {
		t.Fatal("expected bold dialect extraction")
	}
	if roster[0].Name != "Dondozo" {
		t.Errorf("first entry = %q, want Dondozo from the bold section", roster[0].Name)
	}
}
