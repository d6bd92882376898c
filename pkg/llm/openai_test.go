package llm

import "testing"

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"summary":"test"}`,
			want:  `{"summary":"test"}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"summary\":\"test\"}\n```",
			want:  `{"summary":"test"}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"summary\":\"test\"}\n```",
			want:  `{"summary":"test"}`,
		},
		{
			name:  "drops prose around JSON",
			input: "Here you go:\n{\"summary\":\"test\"}\nHope that helps.",
			want:  `{"summary":"test"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitReaction(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantText   string
		wantIntent float64
	}{
		{
			name:       "standard reaction",
			input:      "Feels balanced and specific.\n\nINTENT_SCORE: 7",
			wantText:   "Feels balanced and specific.",
			wantIntent: 7,
		},
		{
			name:       "decimal score with spacing",
			input:      "Too pushy for me.\nINTENT SCORE : 3.5",
			wantText:   "Too pushy for me.",
			wantIntent: 3.5,
		},
		{
			name:       "missing score reads as zero",
			input:      "No score given here.",
			wantText:   "No score given here.",
			wantIntent: 0,
		},
		{
			name:       "score above ten clamps",
			input:      "Love it.\nINTENT_SCORE: 15",
			wantText:   "Love it.",
			wantIntent: 10,
		},
		{
			name:       "score line only keeps full text as feedback",
			input:      "INTENT_SCORE: 6",
			wantText:   "INTENT_SCORE: 6",
			wantIntent: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, intent := splitReaction(tt.input)
			if text != tt.wantText {
				t.Errorf("feedback: got %q, want %q", text, tt.wantText)
			}
			if intent != tt.wantIntent {
				t.Errorf("intent: got %v, want %v", intent, tt.wantIntent)
			}
		})
	}
}

func TestShapeBriefDefensive(t *testing.T) {
	b := BriefResult{
		Summary: "  a summary  ",
		Drivers: []string{" rates ", "", "  "},
		Hooks:   nil,
	}

	shapeBrief(&b)

	if b.Summary != "a summary" {
		t.Errorf("summary not trimmed: %q", b.Summary)
	}
	if len(b.Drivers) != 1 || b.Drivers[0] != "rates" {
		t.Errorf("drivers not shaped: %v", b.Drivers)
	}
	if b.Citations == nil {
		t.Error("citations should default to an empty list")
	}
}
