package core

import "context"

type HistoryRepository interface {
	Insert(ctx context.Context, rec HistoryRecord) error
	GetAll(ctx context.Context) ([]HistoryRecord, error)
	GetRecent(ctx context.Context, limit int) ([]HistoryRecord, error)
}
