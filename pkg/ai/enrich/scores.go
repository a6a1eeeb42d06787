package enrich

import (
	"regexp"
	"strconv"
)

var (
	moodTrailer         = regexp.MustCompile(`(?i)Mood:\s*(\d{1,2})\s*/\s*10`)
	productivityTrailer = regexp.MustCompile(`(?i)Productivity:\s*(\d{1,2})\s*/\s*10`)
)

// Scores holds the 1-10 ratings read from a narrative summary. A nil field
// means the trailer did not carry that score.
type Scores struct {
	Mood         *int
	Productivity *int
}

// ParseScores reads the "Mood: X/10, Productivity: Y/10" trailer. Each score is
// matched on its own, so one may be present without the other.
func ParseScores(text string) Scores {
	return Scores{
		Mood:         matchScore(moodTrailer, text),
		Productivity: matchScore(productivityTrailer, text),
	}
}

func matchScore(re *regexp.Regexp, text string) *int {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	n = ClampScore(n)
	return &n
}

// ClampScore pins a rating into [1,10].
func ClampScore(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}
