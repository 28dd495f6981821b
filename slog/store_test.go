package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/facdir"
	"github.com/fwojciec/facdir/mock"
	facslog "github.com/fwojciec/facdir/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecordStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("logs record count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordStore{
			SaveFn: func(_ context.Context, _ []*facdir.Record) error {
				return nil
			},
		}

		store := facslog.NewLoggingRecordStore(inner, logger)
		err := store.Save(context.Background(), []*facdir.Record{{Name: "A", ProfileLink: "p"}, {Name: "B", ProfileLink: "q"}})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "save records")
		assert.Contains(t, buf.String(), "records=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordStore{
			SaveFn: func(_ context.Context, _ []*facdir.Record) error {
				return errors.New("disk full")
			},
		}

		store := facslog.NewLoggingRecordStore(inner, logger)
		err := store.Save(context.Background(), nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}

func TestLoggingRecordStore_Load(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.RecordStore{
		LoadFn: func(_ context.Context) ([]*facdir.Record, error) {
			return []*facdir.Record{{Name: "A", ProfileLink: "p"}}, nil
		},
	}

	store := facslog.NewLoggingRecordStore(inner, logger)
	records, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Contains(t, buf.String(), "load records")
	assert.Contains(t, buf.String(), "records=1")
}
