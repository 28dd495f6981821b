package facdir_test

import (
	"sync"
	"testing"

	"github.com/fwojciec/facdir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectory() *facdir.Directory {
	return facdir.NewDirectory([]*facdir.Record{
		{Name: "David Love", ProfileLink: "https://example.edu/love", Title: "Professor"},
		{Name: "Joseph Makin", ProfileLink: "https://example.edu/makin"},
		{Name: "Loveleen Kaur", ProfileLink: "https://example.edu/kaur", Email: "kaur@example.edu"},
	})
}

func TestDirectory_Search(t *testing.T) {
	t.Parallel()

	t.Run("blank query is empty state", func(t *testing.T) {
		t.Parallel()

		d := testDirectory()
		for _, q := range []string{"", "   ", "\t\n"} {
			res := d.Search(q)
			assert.Equal(t, facdir.SearchEmpty, res.State)
			assert.Nil(t, res.Record)
			assert.Empty(t, res.Matches)
		}
	})

	t.Run("no match keeps query text", func(t *testing.T) {
		t.Parallel()

		res := testDirectory().Search("zzzz")

		assert.Equal(t, facdir.SearchNoMatch, res.State)
		assert.Equal(t, "zzzz", res.Query)
		assert.Empty(t, res.Matches)
	})

	t.Run("single match returns record directly", func(t *testing.T) {
		t.Parallel()

		d := facdir.NewDirectory([]*facdir.Record{
			{Name: "David Love", ProfileLink: "https://example.edu/love"},
			{Name: "Joseph Makin", ProfileLink: "https://example.edu/makin"},
		})

		res := d.Search("Love")

		assert.Equal(t, facdir.SearchSingleMatch, res.State)
		require.NotNil(t, res.Record)
		assert.Equal(t, "David Love", res.Record.Name)
		assert.Empty(t, res.Matches)
	})

	t.Run("multiple matches list names in store order", func(t *testing.T) {
		t.Parallel()

		res := testDirectory().Search("Love")

		assert.Equal(t, facdir.SearchMultiMatch, res.State)
		assert.Nil(t, res.Record)
		assert.Equal(t, []string{"David Love", "Loveleen Kaur"}, res.Matches)
	})

	t.Run("matching ignores case and trims query", func(t *testing.T) {
		t.Parallel()

		res := testDirectory().Search("  MAKIN ")

		assert.Equal(t, facdir.SearchSingleMatch, res.State)
		assert.Equal(t, "MAKIN", res.Query)
		assert.Equal(t, "Joseph Makin", res.Record.Name)
	})

	t.Run("safe for concurrent readers", func(t *testing.T) {
		t.Parallel()

		d := testDirectory()
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, facdir.SearchMultiMatch, d.Search("love").State)
			}()
		}
		wg.Wait()
	})
}

func TestDirectory_Select(t *testing.T) {
	t.Parallel()

	t.Run("selecting from multi match returns that record only", func(t *testing.T) {
		t.Parallel()

		d := testDirectory()
		res := d.Search("Love")
		require.Equal(t, facdir.SearchMultiMatch, res.State)

		rec, err := d.Select(res.Matches[1])

		require.NoError(t, err)
		assert.Equal(t, "Loveleen Kaur", rec.Name)
		assert.Equal(t, "kaur@example.edu", rec.Email)
	})

	t.Run("ignores case and whitespace", func(t *testing.T) {
		t.Parallel()

		rec, err := testDirectory().Select("  david love ")

		require.NoError(t, err)
		assert.Equal(t, "David Love", rec.Name)
	})

	t.Run("unknown name is not found", func(t *testing.T) {
		t.Parallel()

		_, err := testDirectory().Select("Nobody")

		require.Error(t, err)
		assert.Equal(t, facdir.ENOTFOUND, facdir.ErrorCode(err))
		assert.Contains(t, facdir.ErrorMessage(err), "Nobody")
	})

	t.Run("blank name is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := testDirectory().Select(" ")

		assert.Equal(t, facdir.EINVALID, facdir.ErrorCode(err))
	})
}

func TestNewDirectory_CopiesRecords(t *testing.T) {
	t.Parallel()

	records := []*facdir.Record{{Name: "David Love", ProfileLink: "https://example.edu/love"}}
	d := facdir.NewDirectory(records)

	records[0].Name = "Changed"

	rec, err := d.Select("David Love")
	require.NoError(t, err)
	assert.Equal(t, "David Love", rec.Name)
	assert.Equal(t, 1, d.Len())
}

func TestDirectory_Stats(t *testing.T) {
	t.Parallel()

	d := facdir.NewDirectory([]*facdir.Record{
		{Name: "A", ProfileLink: "p1", Research: "Robotics", Website: "https://a.example"},
		{Name: "B", ProfileLink: "p2", Research: facdir.NotListed, Website: "p2", Email: "b@example.edu"},
	})

	assert.Equal(t, facdir.Stats{Records: 2, WithResearch: 1, WithWebsite: 1, WithEmail: 1}, d.Stats())
}

func TestSearchState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "empty", facdir.SearchEmpty.String())
	assert.Equal(t, "no_match", facdir.SearchNoMatch.String())
	assert.Equal(t, "single_match", facdir.SearchSingleMatch.String())
	assert.Equal(t, "multi_match", facdir.SearchMultiMatch.String())
}

func TestSearchResult_StatePredicates(t *testing.T) {
	t.Parallel()

	d := facdir.NewDirectory([]*facdir.Record{
		{Name: "David Love", ProfileLink: "https://example.edu/love"},
		{Name: "Loveleen Kaur", ProfileLink: "https://example.edu/kaur"},
	})

	tests := []struct {
		query                      string
		empty, none, single, multi bool
	}{
		{query: " ", empty: true},
		{query: "zzz", none: true},
		{query: "kaur", single: true},
		{query: "love", multi: true},
	}
	for _, tt := range tests {
		res := d.Search(tt.query)
		assert.Equal(t, tt.empty, res.IsEmpty(), "IsEmpty(%q)", tt.query)
		assert.Equal(t, tt.none, res.IsNoMatch(), "IsNoMatch(%q)", tt.query)
		assert.Equal(t, tt.single, res.IsSingleMatch(), "IsSingleMatch(%q)", tt.query)
		assert.Equal(t, tt.multi, res.IsMultiMatch(), "IsMultiMatch(%q)", tt.query)
	}
}
