package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestParseScores(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		wantMood         *int
		wantProductivity *int
	}{
		{
			name:             "full trailer",
			text:             "A steady day with good focus.\nMood: 7/10, Productivity: 9/10",
			wantMood:         intPtr(7),
			wantProductivity: intPtr(9),
		},
		{
			name: "no trailer",
			text: "Just a summary without numbers.",
		},
		{
			name:     "mood out of range is clamped",
			text:     "Mood: 15/10",
			wantMood: intPtr(10),
		},
		{
			name:             "zero clamps up",
			text:             "mood: 0 / 10, PRODUCTIVITY: 3 /10",
			wantMood:         intPtr(1),
			wantProductivity: intPtr(3),
		},
		{
			name:             "productivity only",
			text:             "Productivity: 4/10",
			wantProductivity: intPtr(4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseScores(tt.text)
			assert.Equal(t, tt.wantMood, got.Mood)
			assert.Equal(t, tt.wantProductivity, got.Productivity)
		})
	}
}
