package search

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Metric tells how a Neighbor's score must be read. Distances and similarities
// come from different retrieval paths and are never ranked together.
type Metric string

const (
	MetricDistance   Metric = "dist" // lower is closer
	MetricSimilarity Metric = "sim"  // higher is closer
)

type Neighbor struct {
	NoteId uuid.UUID
	Score  float64
	Metric Metric
}

// Candidate is a stored embedding considered by the in-memory ranking.
type Candidate struct {
	NoteId uuid.UUID
	Vector []float32
}

// CosineSimilarity returns 0 when the vectors differ in length, are empty, or
// either has zero norm.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// RankByCosine scores candidates against query, drops exclude, and returns the
// k most similar, highest first.
func RankByCosine(query []float32, candidates []Candidate, exclude uuid.UUID, k int) []Neighbor {
	if k <= 0 {
		return nil
	}

	ranked := make([]Neighbor, 0, len(candidates))
	seen := make(map[uuid.UUID]bool, len(candidates))
	for _, c := range candidates {
		if c.NoteId == exclude || seen[c.NoteId] {
			continue
		}
		seen[c.NoteId] = true
		ranked = append(ranked, Neighbor{
			NoteId: c.NoteId,
			Score:  CosineSimilarity(query, c.Vector),
			Metric: MetricSimilarity,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
