package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/facdir"
)

// Ensure LoggingRecordStore implements facdir.RecordStore.
var _ facdir.RecordStore = (*LoggingRecordStore)(nil)

// LoggingRecordStore wraps a RecordStore with logging of saves and loads.
type LoggingRecordStore struct {
	next   facdir.RecordStore
	logger *slog.Logger
}

// NewLoggingRecordStore creates a new LoggingRecordStore.
func NewLoggingRecordStore(next facdir.RecordStore, logger *slog.Logger) *LoggingRecordStore {
	return &LoggingRecordStore{next: next, logger: logger}
}

// Save logs the number of records written.
func (s *LoggingRecordStore) Save(ctx context.Context, records []*facdir.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save records",
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, records)
}

// Load logs the number of records read.
func (s *LoggingRecordStore) Load(ctx context.Context) (records []*facdir.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load records",
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}
