package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/facdir"
	"github.com/fwojciec/facdir/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Flat Record Store
// Each scrape run replaces the snapshot wholesale; the lookup service reads it once.

func TestRecordStore_SaveThenLoadPreservesOrder(t *testing.T) {
	t.Parallel()

	// Given a store in an empty directory
	store := fs.NewRecordStore(filepath.Join(t.TempDir(), "faculty.json"))
	records := []*facdir.Record{
		{Name: "David Love", ProfileLink: "https://example.edu/love", Title: "Professor", Research: "Coding"},
		{Name: "Loveleen Kaur", ProfileLink: "https://example.edu/kaur", Email: "kaur@example.edu", Research: facdir.NotListed, Website: "https://example.edu/kaur"},
	}

	// When I save and load the records
	require.NoError(t, store.Save(context.Background(), records))
	loaded, err := store.Load(context.Background())

	// Then they come back in the same order with the same fields
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestRecordStore_WritesPrettyPrintedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "faculty.json")
	store := fs.NewRecordStore(path)

	err := store.Save(context.Background(), []*facdir.Record{
		{Name: "A & B", ProfileLink: "https://example.edu/a?x=1&y=2"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[\n  {\n    \"name\": \"A & B\",")
	assert.Contains(t, string(data), `"profile_link": "https://example.edu/a?x=1&y=2"`)
}

func TestRecordStore_SaveReplacesPreviousSnapshot(t *testing.T) {
	t.Parallel()

	// Given a store with an existing snapshot
	store := fs.NewRecordStore(filepath.Join(t.TempDir(), "faculty.json"))
	require.NoError(t, store.Save(context.Background(), []*facdir.Record{
		{Name: "Old Name", ProfileLink: "https://example.edu/old"},
		{Name: "Other", ProfileLink: "https://example.edu/other"},
	}))

	// When a new run saves a different set
	require.NoError(t, store.Save(context.Background(), []*facdir.Record{
		{Name: "New Name", ProfileLink: "https://example.edu/new"},
	}))

	// Then only the new set remains
	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "New Name", loaded[0].Name)

	// And no temp file is left behind
	_, err = os.Stat(store.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRecordStore_SaveRejectsInvalidRecordWithoutWriting(t *testing.T) {
	t.Parallel()

	// Given a store with an existing snapshot
	store := fs.NewRecordStore(filepath.Join(t.TempDir(), "faculty.json"))
	require.NoError(t, store.Save(context.Background(), []*facdir.Record{
		{Name: "Kept", ProfileLink: "https://example.edu/kept"},
	}))

	// When saving a set with a record missing its profile link
	err := store.Save(context.Background(), []*facdir.Record{
		{Name: "Valid", ProfileLink: "https://example.edu/valid"},
		{Name: "Broken"},
	})

	// Then the save is rejected
	require.Error(t, err)
	assert.Equal(t, facdir.EINVALID, facdir.ErrorCode(err))

	// And the previous snapshot is untouched
	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Kept", loaded[0].Name)
}

func TestRecordStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	store := fs.NewRecordStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, facdir.ENOTFOUND, facdir.ErrorCode(err))
}

func TestRecordStore_LoadMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "faculty.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := fs.NewRecordStore(path).Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, facdir.EINVALID, facdir.ErrorCode(err))
}

func TestRecordStore_LoadLegacyFile(t *testing.T) {
	t.Parallel()

	// Given a file written with null optional fields
	path := filepath.Join(t.TempDir(), "faculty.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"name": "David Love", "profile_link": "https://example.edu/love", "title": null, "email": null, "research": "Not listed", "website": "https://example.edu/love"}
]`), 0644))

	// When I load it
	loaded, err := fs.NewRecordStore(path).Load(context.Background())

	// Then null fields read as absent
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Empty(t, loaded[0].Title)
	assert.Empty(t, loaded[0].Email)
}

func TestRecordStore_Info(t *testing.T) {
	t.Parallel()

	store := fs.NewRecordStore(filepath.Join(t.TempDir(), "faculty.json"))
	require.NoError(t, store.Save(context.Background(), []*facdir.Record{
		{Name: "David Love", ProfileLink: "https://example.edu/love"},
	}))

	info, err := store.Info()
	require.NoError(t, err)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, store.Path(), info.Path)
	assert.Equal(t, int64(len(data)), info.Size)
	assert.Equal(t, fs.ComputeHash(data), info.Checksum)
	assert.NotEmpty(t, info.Checksum)
}

func TestRecordStore_InfoMissingFile(t *testing.T) {
	t.Parallel()

	_, err := fs.NewRecordStore(filepath.Join(t.TempDir(), "missing.json")).Info()

	assert.Equal(t, facdir.ENOTFOUND, facdir.ErrorCode(err))
}
