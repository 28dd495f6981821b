package mock

import (
	"context"

	"github.com/fwojciec/facdir"
)

var _ facdir.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of facdir.RecordStore.
type RecordStore struct {
	SaveFn func(ctx context.Context, records []*facdir.Record) error
	LoadFn func(ctx context.Context) ([]*facdir.Record, error)
}

func (s *RecordStore) Save(ctx context.Context, records []*facdir.Record) error {
	return s.SaveFn(ctx, records)
}

func (s *RecordStore) Load(ctx context.Context) ([]*facdir.Record, error) {
	return s.LoadFn(ctx)
}
