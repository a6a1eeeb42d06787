package sentiment

import (
	"math"
	"regexp"
	"strings"
)

type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNeutral  Polarity = "neutral"
	PolarityNegative Polarity = "negative"
)

type Emotion string

const (
	EmotionJoyful   Emotion = "joyful"
	EmotionStressed Emotion = "stressed"
	EmotionSad      Emotion = "sad"
	EmotionAngry    Emotion = "angry"
	EmotionCalm     Emotion = "calm"
	EmotionNeutral  Emotion = "neutral"
)

// Hint is a coarse, locally computed sentiment signal for a piece of text.
type Hint struct {
	Polarity   Polarity `json:"polarity"`
	Emotion    Emotion  `json:"emotion"`
	Confidence float64  `json:"confidence"`
}

// ValidPolarity reports whether p is one of the known polarity labels.
func ValidPolarity(p string) bool {
	switch Polarity(p) {
	case PolarityPositive, PolarityNeutral, PolarityNegative:
		return true
	}
	return false
}

// ValidEmotion reports whether e is one of the known emotion labels.
func ValidEmotion(e string) bool {
	switch Emotion(e) {
	case EmotionJoyful, EmotionStressed, EmotionSad, EmotionAngry, EmotionCalm, EmotionNeutral:
		return true
	}
	return false
}

var tokenPattern = regexp.MustCompile(`[a-z']+`)

// Checked against the raw lowercase text before any scoring.
var crisisPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(want|going|plan(ning)?)\s+to\s+die\b`),
	regexp.MustCompile(`\bkill(ing)?\s+myself\b`),
	regexp.MustCompile(`\bsuicid(e|al)\b`),
	regexp.MustCompile(`\bend\s+(my\s+life|it\s+all)\b`),
	regexp.MustCompile(`\b(hurt|harm)(ing)?\s+myself\b`),
	regexp.MustCompile(`\bself[\s-]?harm\b`),
	regexp.MustCompile(`\bno\s+reason\s+to\s+live\b`),
	regexp.MustCompile(`\bbetter\s+off\s+dead\b`),
}

var crisisHint = Hint{Polarity: PolarityNegative, Emotion: EmotionSad, Confidence: 0.98}

// Analyze classifies text into polarity, emotion and a confidence in [0.2, 1].
// It never fails; empty input yields a neutral hint.
func Analyze(text string) Hint {
	lower := strings.ToLower(text)

	for _, p := range crisisPatterns {
		if p.MatchString(lower) {
			return crisisHint
		}
	}

	tokens := tokenPattern.FindAllString(lower, -1)
	if len(tokens) == 0 {
		return Hint{Polarity: PolarityNeutral, Emotion: EmotionNeutral, Confidence: 0.2}
	}

	var pos, neg, anger, sadness, stress int
	for _, tok := range tokens {
		if positiveWords[tok] {
			pos++
		}
		if negativeWords[tok] {
			neg++
		}
		if angerWords[tok] {
			anger++
		}
		if sadnessWords[tok] {
			sadness++
		}
		if stressWords[tok] {
			stress++
		}
	}

	score := pos - neg

	polarity := PolarityNeutral
	if score > 1 {
		polarity = PolarityPositive
	} else if score < -1 {
		polarity = PolarityNegative
	}

	var emotion Emotion
	switch {
	case stress > 0 && stress >= anger && stress >= sadness:
		emotion = EmotionStressed
	case anger > 0 && anger >= sadness:
		emotion = EmotionAngry
	case sadness > 0:
		emotion = EmotionSad
	case pos > neg && pos > 0:
		emotion = EmotionJoyful
	case pos+neg == 0:
		emotion = EmotionNeutral
	default:
		emotion = EmotionCalm
	}

	signal := float64(abs(score) + anger + sadness + stress)
	confidence := signal / math.Max(5, float64(len(tokens))/20)
	confidence = math.Min(1, math.Max(0.2, confidence))

	return Hint{
		Polarity:   polarity,
		Emotion:    emotion,
		Confidence: math.Round(confidence*100) / 100,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
