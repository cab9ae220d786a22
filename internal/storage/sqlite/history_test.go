package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/quillhq/quill/internal/core"
)

func newTestRepo(t *testing.T) *History {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "quill.db")
	db, err := NewDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewHistory(db)
}

func TestHistory_InsertAndGetAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	recs := []core.HistoryRecord{
		{
			ID:         "cmpl-1",
			Prompt:     "what is a monad?",
			Response:   "a monoid in the category of endofunctors",
			Tokens:     42,
			Model:      "text-davinci-003",
			Finish:     "stop",
			Importance: 7,
			Embedding:  []float32{0.1, -0.5, 0.9},
		},
		{
			ID:         "cmpl-2",
			Prompt:     "what colour is grass?",
			Response:   "green",
			Tokens:     12,
			Model:      "text-curie-001",
			Finish:     "stop",
			Importance: 1,
			Embedding:  []float32{-0.2, 0.3, 0.4},
		},
	}
	for _, rec := range recs {
		if err := repo.Insert(ctx, rec); err != nil {
			t.Fatalf("insert %s failed: %v", rec.ID, err)
		}
	}

	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	byID := make(map[string]core.HistoryRecord, len(got))
	for _, rec := range got {
		if rec.CreatedAt.IsZero() {
			t.Errorf("record %s has no timestamp", rec.ID)
		}
		byID[rec.ID] = rec
	}

	for _, want := range recs {
		stored, ok := byID[want.ID]
		if !ok {
			t.Fatalf("record %s not returned", want.ID)
		}
		if !reflect.DeepEqual(stored.Embedding, want.Embedding) {
			t.Errorf("record %s embedding = %v, want %v", want.ID, stored.Embedding, want.Embedding)
		}
		if stored.Prompt != want.Prompt || stored.Response != want.Response ||
			stored.Tokens != want.Tokens || stored.Model != want.Model ||
			stored.Finish != want.Finish || stored.Importance != want.Importance {
			t.Errorf("record %s round trip mismatch: got %+v", want.ID, stored)
		}
	}
}

func TestHistory_GetRecentLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, id := range []string{"cmpl-1", "cmpl-2", "cmpl-3"} {
		rec := core.HistoryRecord{
			ID: id, Prompt: "p", Response: "r", Model: "text-davinci-003",
			Finish: "stop", Importance: 5, Embedding: []float32{1},
		}
		if err := repo.Insert(ctx, rec); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	got, err := repo.GetRecent(ctx, 2)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 records, got %d", len(got))
	}
}

func TestHistory_ImportanceOutOfRangeRejected(t *testing.T) {
	repo := newTestRepo(t)

	rec := core.HistoryRecord{
		ID: "bad", Prompt: "p", Response: "r", Model: "m",
		Finish: "stop", Importance: 11, Embedding: []float32{1},
	}
	if err := repo.Insert(context.Background(), rec); err == nil {
		t.Fatal("expected the importance check constraint to reject the record")
	}
}

func TestHistory_StoreUnavailable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "quill.db")
	db, err := NewDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	repo := NewHistory(db)
	db.Close()

	_, err = repo.GetAll(context.Background())
	if !errors.Is(err, core.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
