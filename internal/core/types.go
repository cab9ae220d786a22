package core

import "time"

const (
	QuillName          = "Quill"
	QuillUserAgent     = "Quill-CLI/0.1"
	QuillRepositoryURL = "https://github.com/quillhq/quill"
	QuillVersion       = "0.1.0"
)

// HistoryRecord is one completed prompt/response interaction. Records are
// insert-only: the store never updates or deletes them.
type HistoryRecord struct {
	ID         string    `json:"id"`
	Prompt     string    `json:"prompt"`
	Response   string    `json:"response"`
	Tokens     int       `json:"tokens"`
	Model      string    `json:"model"`
	Finish     string    `json:"finish"`
	Importance int       `json:"importance"`
	Embedding  []float32 `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// ScoredCandidate is a HistoryRecord scored against one query embedding.
// It lives only for the duration of a single retrieval.
type ScoredCandidate struct {
	ID         string
	Prompt     string
	Response   string
	Similarity float64
	Importance float64
	Recency    float64
	Total      float64
}

// CompletionRequest carries one prompt and its sampling parameters.
type CompletionRequest struct {
	Prompt      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Completion is the model's reply to a CompletionRequest.
type Completion struct {
	ID           string
	Text         string
	FinishReason string
	TotalTokens  int
}
