// Package fs provides file-based storage for faculty records.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/facdir"
)

// Ensure RecordStore implements facdir.RecordStore at compile time.
var _ facdir.RecordStore = (*RecordStore)(nil)

// RecordStore keeps the record set as a single pretty-printed JSON file.
// Save writes to path.tmp and renames it over path, so readers never see
// a partially written snapshot.
type RecordStore struct {
	path string
}

// NewRecordStore creates a new RecordStore backed by the file at path.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// Path returns the snapshot file path.
func (s *RecordStore) Path() string {
	return s.path
}

func (s *RecordStore) tempPath() string {
	return s.path + ".tmp"
}

// Save validates every record, then replaces the snapshot.
func (s *RecordStore) Save(ctx context.Context, records []*facdir.Record) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if records == nil {
		records = []*facdir.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(s.tempPath(), buf.Bytes(), 0644); err != nil {
		return err
	}

	if err := os.Rename(s.tempPath(), s.path); err != nil {
		_ = os.Remove(s.tempPath())
		return err
	}

	return nil
}

// Load reads the snapshot. Returns ENOTFOUND if it has never been written.
func (s *RecordStore) Load(ctx context.Context) ([]*facdir.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, facdir.Errorf(facdir.ENOTFOUND, "no record store at %s; run 'facdir scrape' first", s.path)
	} else if err != nil {
		return nil, err
	}

	var records []*facdir.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, facdir.Errorf(facdir.EINVALID, "malformed record store %s: %v", s.path, err)
	}

	for i, r := range records {
		if r == nil {
			return nil, facdir.Errorf(facdir.EINVALID, "record %d is null", i)
		}
	}

	return records, nil
}

// Info describes the current snapshot, including an xxhash checksum of its
// contents. Returns ENOTFOUND if it has never been written.
func (s *RecordStore) Info() (*facdir.StoreInfo, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, facdir.Errorf(facdir.ENOTFOUND, "no record store at %s", s.path)
	} else if err != nil {
		return nil, err
	}

	fi, err := os.Stat(s.path)
	if err != nil {
		return nil, err
	}

	return &facdir.StoreInfo{
		Path:     s.path,
		Size:     int64(len(data)),
		Checksum: ComputeHash(data),
		ModTime:  fi.ModTime(),
	}, nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(content))
}
