package extract

import "testing"

const replayDoc = `# Team Notes

## Matchup-Specific Strategies

### vs Trick Room
**My Lead:** Calyrex-Shadow + Whimsicott

## Replays

### Trick Room
- [Win] https://replay.example.com/battle-123 - Great game, gp1
- [Loss] https://replay.example.com/battle-124 - misplayed turn 2, gameplan 2
- [Draw] https://replay.example.com/battle-125 - timer stall
not a replay line

### Rain
- [Win] https://replay.example.com/battle-200 - rain dance chip
`

func TestExtractReplays(t *testing.T) {
	replays := ExtractReplays(replayDoc, "Trick Room", 0)
	if len(replays) != 3 {
		t.Fatalf("len(replays) = %d, want 3", len(replays))
	}

	first := replays[0]
	if first.Result != "win" {
		t.Errorf("Result = %q, want win", first.Result)
	}
	if first.URL != "https://replay.example.com/battle-123" {
		t.Errorf("URL = %q", first.URL)
	}
	if first.Description != "Great game, gp1" {
		t.Errorf("Description = %q", first.Description)
	}
	if first.GameplanNumber != 1 {
		t.Errorf("GameplanNumber = %d, want 1 (inferred from gp1)", first.GameplanNumber)
	}
	if first.Matchup != "Trick Room" {
		t.Errorf("Matchup = %q", first.Matchup)
	}
	if first.ID == "" {
		t.Error("ID must be synthesized")
	}

	if replays[1].GameplanNumber != 2 {
		t.Errorf("second GameplanNumber = %d, want 2 (from 'gameplan 2')", replays[1].GameplanNumber)
	}
	if replays[1].Result != "loss" {
		t.Errorf("second Result = %q", replays[1].Result)
	}
	if replays[2].GameplanNumber != 0 {
		t.Errorf("third GameplanNumber = %d, want 0 (no association)", replays[2].GameplanNumber)
	}
}

func TestExtractReplaysGameplanFilter(t *testing.T) {
	// gp filter keeps matching numbers and unassociated replays
	replays := ExtractReplays(replayDoc, "Trick Room", 1)
	if len(replays) != 2 {
		t.Fatalf("len(replays) = %d, want 2 (gp1 + unassociated)", len(replays))
	}
	for _, r := range replays {
		if r.GameplanNumber != 0 && r.GameplanNumber != 1 {
			t.Errorf("unexpected gameplan number %d", r.GameplanNumber)
		}
	}
}

func TestExtractReplaysOtherMatchup(t *testing.T) {
	replays := ExtractReplays(replayDoc, "Rain", 0)
	if len(replays) != 1 {
		t.Fatalf("len(replays) = %d, want 1", len(replays))
	}
	if replays[0].Description != "rain dance chip" {
		t.Errorf("Description = %q", replays[0].Description)
	}
}

func TestExtractReplaysAllMatchups(t *testing.T) {
	replays := ExtractReplays(replayDoc, "", 0)
	if len(replays) != 4 {
		t.Fatalf("len(replays) = %d, want 4 across all sub-headings", len(replays))
	}
}

func TestExtractReplaysNoSection(t *testing.T) {
	if got := ExtractReplays("# nothing here\n", "Trick Room", 0); len(got) != 0 {
		t.Errorf("replays = %v, want empty", got)
	}
}

func TestMergeReplaysNoDedup(t *testing.T) {
	stored := ExtractReplays(replayDoc, "Rain", 0)
	parsed := ExtractReplays(replayDoc, "Rain", 0)
	merged := MergeReplays(stored, parsed)
	if len(merged) != 2 {
		t.Errorf("len(merged) = %d, want 2 (overlap kept, not deduplicated)", len(merged))
	}
}
