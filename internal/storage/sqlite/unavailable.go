package sqlite

import (
	"context"
	"fmt"

	"github.com/quillhq/quill/internal/core"
)

// Unavailable stands in for History when the database cannot be opened.
// Every method fails with core.ErrStoreUnavailable, so the main flow takes
// its usual degraded path (no background, no persistence) instead of the
// open failure aborting the whole invocation.
type Unavailable struct {
	reason error
}

func NewUnavailable(reason error) *Unavailable {
	return &Unavailable{reason: reason}
}

func (u *Unavailable) Insert(ctx context.Context, rec core.HistoryRecord) error {
	return u.err()
}

func (u *Unavailable) GetAll(ctx context.Context) ([]core.HistoryRecord, error) {
	return nil, u.err()
}

func (u *Unavailable) GetRecent(ctx context.Context, limit int) ([]core.HistoryRecord, error) {
	return nil, u.err()
}

func (u *Unavailable) err() error {
	return fmt.Errorf("%w: %v", core.ErrStoreUnavailable, u.reason)
}
