package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Hint
	}{
		{
			name: "empty text",
			text: "   \n\t ",
			want: Hint{Polarity: PolarityNeutral, Emotion: EmotionNeutral, Confidence: 0.2},
		},
		{
			name: "positive day",
			text: "Had a wonderful, productive day at work!",
			want: Hint{Polarity: PolarityPositive, Emotion: EmotionJoyful, Confidence: 0.4},
		},
		{
			name: "stress outranks other emotions",
			text: "I am so stressed and anxious about the deadline pressure",
			want: Hint{Polarity: PolarityNegative, Emotion: EmotionStressed, Confidence: 1},
		},
		{
			name: "anger",
			text: "Angry and frustrated with the team",
			want: Hint{Polarity: PolarityNegative, Emotion: EmotionAngry, Confidence: 0.8},
		},
		{
			name: "sadness without negative polarity",
			text: "I'm feeling down and lonely today",
			want: Hint{Polarity: PolarityNeutral, Emotion: EmotionSad, Confidence: 0.4},
		},
		{
			name: "no signal words",
			text: "Went for a walk",
			want: Hint{Polarity: PolarityNeutral, Emotion: EmotionNeutral, Confidence: 0.2},
		},
		{
			name: "mixed signal is calm",
			text: "good but tired",
			want: Hint{Polarity: PolarityNeutral, Emotion: EmotionCalm, Confidence: 0.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.text))
		})
	}
}

func TestAnalyzeCrisisOverride(t *testing.T) {
	texts := []string{
		"I want to die",
		"Great amazing happy day, but honestly I want to die.",
		"I keep thinking about killing myself",
		"Feeling SUICIDAL tonight",
		"sometimes I think everyone is better off dead without me",
		"there is no reason to live anymore",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, Hint{Polarity: PolarityNegative, Emotion: EmotionSad, Confidence: 0.98}, Analyze(text))
		})
	}
}

func TestAnalyzeConfidenceBounds(t *testing.T) {
	texts := []string{
		"",
		"happy happy happy happy happy happy happy happy happy happy",
		"sad angry stressed overwhelmed burnt depressed awful terrible",
		"a plain sentence with nothing in it at all",
	}
	for _, text := range texts {
		h := Analyze(text)
		assert.GreaterOrEqual(t, h.Confidence, 0.2)
		assert.LessOrEqual(t, h.Confidence, 1.0)
		assert.True(t, ValidPolarity(string(h.Polarity)))
		assert.True(t, ValidEmotion(string(h.Emotion)))
	}
}
