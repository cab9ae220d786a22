package memory

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/quillhq/quill/internal/core"
)

// unitVec2 builds a 2D unit vector whose cosine against [1,0] is c.
func unitVec2(c float64) []float32 {
	s := math.Sqrt(1 - c*c)
	return []float32{float32(c), float32(s)}
}

func TestScore_ImportanceRescale(t *testing.T) {
	tests := []struct {
		name       string
		importance int
		expected   float64
	}{
		{name: "lowest useful rating", importance: 2, expected: -1},
		{name: "neutral midpoint", importance: 6, expected: 0},
		{name: "highest rating", importance: 10, expected: 1},
	}

	query := []float32{1, 0}
	ts := time.Now()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := core.HistoryRecord{
				ID:         "r1",
				Importance: tt.importance,
				Embedding:  []float32{1, 0},
				CreatedAt:  ts,
			}

			cand, err := Score(query, rec, ts, ts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cand.Importance != tt.expected {
				t.Errorf("importance score = %v, want %v", cand.Importance, tt.expected)
			}
			// identical embeddings, degenerate time range
			if math.Abs(cand.Similarity-1) > 1e-9 {
				t.Errorf("similarity = %v, want 1", cand.Similarity)
			}
			if cand.Recency != 0 {
				t.Errorf("recency = %v, want 0", cand.Recency)
			}
			if got, want := cand.Total, 1+tt.expected; math.Abs(got-want) > 1e-9 {
				t.Errorf("total = %v, want %v", got, want)
			}
		})
	}
}

func TestScore_RecencyWithinRange(t *testing.T) {
	oldest := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newest := oldest.Add(10 * time.Hour)

	rec := core.HistoryRecord{
		ID:         "mid",
		Importance: 6,
		Embedding:  []float32{1, 0},
		CreatedAt:  oldest.Add(5 * time.Hour),
	}

	cand, err := Score([]float32{1, 0}, rec, oldest, newest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.Recency != 0.5 {
		t.Errorf("recency = %v, want 0.5", cand.Recency)
	}
}

func TestScore_RecencyDegenerateSpan(t *testing.T) {
	ts := time.Now()
	rec := core.HistoryRecord{ID: "only", Importance: 6, Embedding: []float32{1, 0}, CreatedAt: ts}

	cand, err := Score([]float32{1, 0}, rec, ts, ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.Recency != 0 {
		t.Errorf("single-record corpus recency = %v, want 0", cand.Recency)
	}
}

func TestScore_DimensionMismatch(t *testing.T) {
	rec := core.HistoryRecord{ID: "legacy", Importance: 6, Embedding: []float32{1, 0, 0}, CreatedAt: time.Now()}

	_, err := Score([]float32{1, 0}, rec, time.Now(), time.Now())
	if !errors.Is(err, core.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{name: "identical", a: []float32{0.3, 0.4}, b: []float32{0.3, 0.4}, expected: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, expected: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, expected: -1},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 0}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := cosineSimilarity(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(sim-tt.expected) > 1e-6 {
				t.Errorf("similarity = %v, want %v", sim, tt.expected)
			}
		})
	}
}
