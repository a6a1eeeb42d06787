package dto

type TopicCount struct {
	Topic string  `json:"topic"`
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

type SentimentCount struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

type TopicsResponse struct {
	Range     int              `json:"range"`
	Topics    []TopicCount     `json:"topics"`
	Sentiment []SentimentCount `json:"sentiment"`
}
