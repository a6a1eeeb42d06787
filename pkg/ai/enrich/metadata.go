package enrich

import (
	"encoding/json"
	"math"
	"strings"
	"sync"

	"ai-journal-be/pkg/sentiment"

	"github.com/invopop/jsonschema"
)

const maxTags = 8

type SentimentResult struct {
	Polarity   sentiment.Polarity `json:"polarity" jsonschema:"required,enum=positive,enum=neutral,enum=negative"`
	Emotion    sentiment.Emotion  `json:"emotion" jsonschema:"required,enum=joyful,enum=stressed,enum=sad,enum=angry,enum=calm,enum=neutral"`
	Confidence float64            `json:"confidence" jsonschema:"required,minimum=0,maximum=1"`
}

// Metadata is the validated structured reply of the extraction call. Every
// field is optional; nil means the model gave nothing usable.
type Metadata struct {
	Mood         *int             `json:"mood" jsonschema:"required,minimum=1,maximum=10,description=Overall mood 1-10 or null"`
	Productivity *int             `json:"productivity" jsonschema:"required,minimum=1,maximum=10,description=Productivity 1-10 or null"`
	Tags         []string         `json:"tags" jsonschema:"required,maxItems=8,description=Short lowercase keywords or null"`
	Sentiment    *SentimentResult `json:"sentiment" jsonschema:"required"`
}

// rawMetadata keeps every field untyped so that one malformed value only
// drops that field, never the whole reply.
type rawMetadata struct {
	Mood         interface{} `json:"mood"`
	Productivity interface{} `json:"productivity"`
	Tags         interface{} `json:"tags"`
	Sentiment    interface{} `json:"sentiment"`
}

var metadataSchema = sync.OnceValue(func() string {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(&Metadata{})
	// every key is present but may be null
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value = nullable(pair.Value)
	}
	b, err := json.Marshal(schema)
	if err != nil {
		return ""
	}
	return string(b)
})

func nullable(s *jsonschema.Schema) *jsonschema.Schema {
	description := s.Description
	s.Description = ""
	return &jsonschema.Schema{
		Description: description,
		OneOf:       []*jsonschema.Schema{s, {Type: "null"}},
	}
}

// MetadataSchema returns the JSON Schema of Metadata embedded in the prompt.
func MetadataSchema() string {
	return metadataSchema()
}

// ParseMetadata never fails. Text that is not a JSON object falls back to the
// score trailer regexes with tags and sentiment left nil.
func ParseMetadata(text string) *Metadata {
	var raw rawMetadata
	if err := json.Unmarshal([]byte(extractObject(text)), &raw); err != nil {
		scores := ParseScores(text)
		return &Metadata{Mood: scores.Mood, Productivity: scores.Productivity}
	}

	return &Metadata{
		Mood:         toScore(raw.Mood),
		Productivity: toScore(raw.Productivity),
		Tags:         normalizeTags(raw.Tags),
		Sentiment:    toSentiment(raw.Sentiment),
	}
}

// extractObject strips markdown fences and cuts the outermost {...}.
func extractObject(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```JSON")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return s
	}
	return s[start : end+1]
}

func toScore(v interface{}) *int {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := ClampScore(int(math.Round(f)))
	return &n
}

// normalizeTags accepts a list of strings or, from sloppier replies, one
// comma separated string.
func normalizeTags(raw interface{}) []string {
	var values []interface{}
	switch t := raw.(type) {
	case []interface{}:
		values = t
	case string:
		for _, part := range strings.Split(t, ",") {
			values = append(values, part)
		}
	default:
		return nil
	}
	if len(values) == 0 {
		return nil
	}
	tags := make([]string, 0, len(values))
	seen := make(map[string]bool)
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		tag := strings.ToLower(strings.TrimSpace(s))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
		if len(tags) == maxTags {
			break
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func toSentiment(v interface{}) *SentimentResult {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	polarity, _ := obj["polarity"].(string)
	emotion, _ := obj["emotion"].(string)
	confidence, ok := obj["confidence"].(float64)
	if !ok || math.IsNaN(confidence) {
		return nil
	}

	p := strings.ToLower(strings.TrimSpace(polarity))
	e := strings.ToLower(strings.TrimSpace(emotion))
	if !sentiment.ValidPolarity(p) || !sentiment.ValidEmotion(e) {
		return nil
	}

	return &SentimentResult{
		Polarity:   sentiment.Polarity(p),
		Emotion:    sentiment.Emotion(e),
		Confidence: math.Max(0, math.Min(1, confidence)),
	}
}
