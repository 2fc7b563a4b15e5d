package extract

import (
	"strings"
	"testing"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/models"
)

const calcDoc = `## Matchup-Specific Strategies

### vs Trick Room
**My Lead:** Calyrex-Shadow + Whimsicott

**Damage Calculations:**
- Astral vs Torkoal: 252 SpA Life Orb Calyrex-Shadow Astral Barrage vs. 252 HP Torkoal
  guaranteed OHKO
  random prose that is not calc output
- Flare Blitz into Calyrex: 252 Atk Torkoal Flare Blitz vs. 4 HP Calyrex-Shadow
  87.5% chance to 2HKO

**My Back:** Incineroar + Urshifu

### vs Rain
**My Lead:** Rillaboom + Incineroar

**Damage Calculations:**
- Wood Hammer vs Archaludon: 98.2% chance to OHKO after Grassy Terrain
`

func TestExtractDamageCalcs(t *testing.T) {
	calcs := ExtractDamageCalcs(calcDoc, "Trick Room")
	if len(calcs) != 2 {
		t.Fatalf("len(calcs) = %d, want 2 (got %v)", len(calcs), calcs)
	}

	astral, ok := calcs["Astral vs Torkoal"]
	if !ok {
		t.Fatal("missing 'Astral vs Torkoal' calc")
	}
	if !strings.Contains(astral, "guaranteed OHKO") {
		t.Errorf("calc text = %q, want OHKO continuation line appended", astral)
	}
	if strings.Contains(astral, "random prose") {
		t.Errorf("calc text = %q, non-calc lines must be ignored", astral)
	}

	blitz := calcs["Flare Blitz into Calyrex"]
	if !strings.Contains(blitz, "87.5% chance to 2HKO") {
		t.Errorf("calc text = %q, want percent-chance line appended", blitz)
	}
}

// Calcs are scoped to their own matchup section.
func TestExtractDamageCalcsScoping(t *testing.T) {
	rain := ExtractDamageCalcs(calcDoc, "Rain")
	if len(rain) != 1 {
		t.Fatalf("len(rain calcs) = %d, want 1", len(rain))
	}
	if _, leaked := rain["Astral vs Torkoal"]; leaked {
		t.Error("Trick Room calc leaked into Rain")
	}

	if got := ExtractDamageCalcs(calcDoc, "Sun"); len(got) != 0 {
		t.Errorf("calcs for absent matchup = %v, want empty", got)
	}
}

func TestAssociateCalcs(t *testing.T) {
	roster := models.Roster{
		{Name: "Calyrex-Shadow"},
		{Name: "Incineroar"},
	}
	calcs := ExtractDamageCalcs(calcDoc, "Trick Room")
	entries := AssociateCalcs(calcs, roster)
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	var astral models.DamageCalcEntry
	for _, e := range entries {
		if e.Label == "Astral vs Torkoal" {
			astral = e
		}
	}
	if len(astral.Pokemon) != 1 || astral.Pokemon[0] != "Calyrex-Shadow" {
		t.Errorf("associated = %v, want [Calyrex-Shadow]", astral.Pokemon)
	}
}
