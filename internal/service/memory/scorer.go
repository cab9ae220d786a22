package memory

import (
	"fmt"
	"math"
	"time"

	"github.com/quillhq/quill/internal/core"
)

// Score rates one record against a query embedding. The corpus-wide oldest
// and newest timestamps are supplied by the caller so a retrieval pass
// computes them once, not per record. Pure: no side effects, no I/O.
func Score(query []float32, rec core.HistoryRecord, oldest, newest time.Time) (core.ScoredCandidate, error) {
	sim, err := cosineSimilarity(query, rec.Embedding)
	if err != nil {
		return core.ScoredCandidate{}, fmt.Errorf("record %s: %w", rec.ID, err)
	}

	cand := core.ScoredCandidate{
		ID:         rec.ID,
		Prompt:     rec.Prompt,
		Response:   rec.Response,
		Similarity: sim,
		Importance: importanceScore(rec.Importance),
		Recency:    recencyScore(rec.CreatedAt, oldest, newest),
	}
	cand.Total = cand.Similarity + cand.Importance + cand.Recency
	return cand, nil
}

// importanceScore rescales the stored 1-10 rating so 6 maps to 0, 10 to 1,
// and 2 to -1. Low-importance records deliberately drag the total down.
func importanceScore(importance int) float64 {
	return (float64(importance) - 6) / 4
}

// recencyScore places the record's timestamp within the corpus time range,
// clamped to [0,1]. A degenerate range (single record, or identical
// timestamps) scores 0 rather than dividing by zero.
func recencyScore(ts, oldest, newest time.Time) float64 {
	span := newest.Sub(oldest)
	if span <= 0 {
		return 0
	}

	score := float64(ts.Sub(oldest)) / float64(span)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// cosineSimilarity compares two vectors of identical dimensionality. A
// length mismatch is an error, never silent truncation or padding.
func cosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", core.ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
