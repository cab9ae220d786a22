package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quillhq/quill/internal/core"
	"github.com/quillhq/quill/pkg/log"
)

// History persists completed interactions. Rows are insert-only; retrieval
// scoring works on in-memory copies and never writes back.
type History struct {
	db *sql.DB
}

func NewHistory(db *sql.DB) *History {
	return &History{db: db}
}

func (h *History) Insert(ctx context.Context, rec core.HistoryRecord) error {
	vecBlob, err := serializeVector(rec.Embedding)
	if err != nil {
		return err
	}

	query := `INSERT INTO history (id, prompt, response, tokens, model, finish_reason, importance, embedding)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = h.db.ExecContext(ctx, query,
		rec.ID, rec.Prompt, rec.Response, rec.Tokens, rec.Model, rec.Finish, rec.Importance, vecBlob,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", storeErr(err))
	}
	return nil
}

func (h *History) GetAll(ctx context.Context) ([]core.HistoryRecord, error) {
	query := `SELECT id, prompt, response, tokens, model, finish_reason, importance, embedding, created_at
		FROM history ORDER BY created_at ASC`

	rows, err := h.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", storeErr(err))
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Int("count", len(records)).Msg("loaded history records")
	return records, nil
}

func (h *History) GetRecent(ctx context.Context, limit int) ([]core.HistoryRecord, error) {
	query := `SELECT id, prompt, response, tokens, model, finish_reason, importance, embedding, created_at
		FROM history ORDER BY created_at DESC LIMIT ?`

	rows, err := h.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent history: %w", storeErr(err))
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]core.HistoryRecord, error) {
	var records []core.HistoryRecord
	for rows.Next() {
		var rec core.HistoryRecord
		var blob []byte

		if err := rows.Scan(&rec.ID, &rec.Prompt, &rec.Response, &rec.Tokens,
			&rec.Model, &rec.Finish, &rec.Importance, &blob, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}

		vec, err := deserializeVector(blob)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.ID, err)
		}
		rec.Embedding = vec

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return records, nil
}

// storeErr tags database failures so callers can fall back to running
// without background context instead of aborting.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", core.ErrStoreUnavailable, err)
}
