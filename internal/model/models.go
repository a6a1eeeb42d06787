package model

// AllModels lists every table owned by the service, in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Note{},
		&NoteEmbedding{},
		&AiMetric{},
		&NoteSummary{},
		&MoodEntry{},
		&UserProfile{},
		&Notification{},
	}
}
