package memory

import (
	"context"
	"errors"
	"sort"

	"github.com/quillhq/quill/internal/core"
	"github.com/quillhq/quill/pkg/log"
)

const (
	// similarityFloor filters out records that merely share vocabulary.
	similarityFloor = 0.4
	// maxCandidates bounds both the background size and the number of
	// summarization calls per query.
	maxCandidates = 3
)

// Retriever selects the most relevant past interactions for a new query.
// The scan is O(n) over the corpus, fine for a personal history; the
// contract would survive a swap to an indexed nearest-neighbor store.
type Retriever struct {
	repo core.HistoryRepository
}

func NewRetriever(repo core.HistoryRepository) *Retriever {
	return &Retriever{repo: repo}
}

// Retrieve returns up to maxCandidates records above the similarity floor,
// ordered most relevant first. An empty corpus yields an empty result; a
// store failure surfaces as core.ErrStoreUnavailable so the caller can fall
// back to an empty background.
func (r *Retriever) Retrieve(ctx context.Context, query []float32) ([]core.ScoredCandidate, error) {
	records, err := r.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	logger := log.FromCtx(ctx)

	oldest, newest := records[0].CreatedAt, records[0].CreatedAt
	for _, rec := range records[1:] {
		if rec.CreatedAt.Before(oldest) {
			oldest = rec.CreatedAt
		}
		if rec.CreatedAt.After(newest) {
			newest = rec.CreatedAt
		}
	}

	candidates := make([]core.ScoredCandidate, 0, len(records))
	for _, rec := range records {
		cand, err := Score(query, rec, oldest, newest)
		if err != nil {
			// A legacy record with a different embedding size stays in the
			// store but cannot be compared; skip it rather than failing the
			// whole retrieval.
			if errors.Is(err, core.ErrDimensionMismatch) {
				logger.Warn().Err(err).Str("id", rec.ID).Msg("skipping unscorable record")
				continue
			}
			return nil, err
		}

		if cand.Similarity > similarityFloor {
			candidates = append(candidates, cand)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Total > candidates[j].Total
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	logger.Debug().Int("selected", len(candidates)).Int("corpus", len(records)).Msg("retrieved background candidates")
	return candidates, nil
}
