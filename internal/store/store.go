// Package store persists the forum delivery journal. Only metadata about
// each relay attempt is kept; message bodies are not stored.
package store

import (
	"context"

	"github.com/nhle/deepdetect/internal/model"
)

// Journal records the outcome of relay attempts.
type Journal interface {
	RecordDelivery(ctx context.Context, d model.Delivery) (model.Delivery, error)
	RecentDeliveries(ctx context.Context, limit int) ([]model.Delivery, error)
	DeliveryCounts(ctx context.Context) (map[string]int, error)
	Close() error
}

var _ Journal = (*SQLiteStore)(nil)
