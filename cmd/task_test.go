package cmd

import (
	"testing"

	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/store"
)

func TestParseFactSpecs(t *testing.T) {
	tests := []struct {
		name  string
		specs []string
		want  []facts.Fact
	}{
		{"single", []string{"7x8"}, []facts.Fact{{A: 7, B: 8}}},
		{"right range", []string{"7x1-3"}, []facts.Fact{{A: 7, B: 1}, {A: 7, B: 2}, {A: 7, B: 3}}},
		{"left range", []string{"2-3x10"}, []facts.Fact{{A: 2, B: 10}, {A: 3, B: 10}}},
		{"upper case and spaces", []string{" 4X5 "}, []facts.Fact{{A: 4, B: 5}}},
		{"duplicates collapse", []string{"7x8", "7x7-8"}, []facts.Fact{{A: 7, B: 8}, {A: 7, B: 7}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFactSpecs(tt.specs)
			if err != nil {
				t.Fatalf("parseFactSpecs(%v): %v", tt.specs, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("fact %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseFactSpecsRejectsBadInput(t *testing.T) {
	for _, spec := range []string{"78", "ax8", "7x", "7x9-3", "-1x2", "1x0-2000000000", "100x2"} {
		if _, err := parseFactSpecs([]string{spec}); err == nil {
			t.Errorf("parseFactSpecs(%q) succeeded, want error", spec)
		}
	}
}

func TestAggregateUsage(t *testing.T) {
	ev := func(purpose, model string, in, out int, ms int64) store.LLMEventRecord {
		var e store.LLMEventRecord
		e.Purpose, e.Model = purpose, model
		e.InputTokens, e.OutputTokens, e.LatencyMs = in, out, ms
		return e
	}
	events := []store.LLMEventRecord{
		ev("coach-note", "m1", 100, 20, 300),
		ev("coach-note", "m2", 50, 10, 100),
		ev("alpha", "m1", 10, 5, 50),
	}

	got := aggregateUsage(events, func(e store.LLMEventRecord) string { return e.Purpose })
	if len(got) != 2 {
		t.Fatalf("got %d groups, want 2", len(got))
	}
	if got[0].Key != "alpha" || got[1].Key != "coach-note" {
		t.Fatalf("groups not sorted: %q, %q", got[0].Key, got[1].Key)
	}
	note := got[1]
	if note.Calls != 2 || note.InputTokens != 150 || note.OutputTokens != 30 {
		t.Errorf("coach-note = %+v", note)
	}
	if note.avgLatency() != 200 {
		t.Errorf("avgLatency = %d, want 200", note.avgLatency())
	}
}
