// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caplane/citeflex/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{Path: filepath.Join(t.TempDir(), "citations.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open(types.StoreConfig{})
	assert.Error(t, err)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	cit := types.Citation{
		Raw:      "Obergefell v. Hodges, 576 U.S. 644 (2015)",
		Type:     types.TypeLegal,
		CaseName: "Obergefell v. Hodges",
		Volume:   "576",
		Reporter: "U.S.",
		Pages:    "644",
		Year:     2015,
		Court:    "Supreme Court of the United States",
	}
	require.NoError(t, s.Put(cit))

	got, ok, err := s.Get(cit.Raw)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, cit, got)
}

func TestGetNormalizesRawKey(t *testing.T) {
	s := openTestStore(t)

	cit := types.Citation{Raw: "Some Title Here", Type: types.TypeBook, Title: "Some Title Here"}
	require.NoError(t, s.Put(cit))

	// Case and whitespace differences hit the same record.
	got, ok, err := s.Get("  some   TITLE here ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Some Title Here", got.Title)
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get("never stored")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutReplacesExisting(t *testing.T) {
	s := openTestStore(t)

	cit := types.Citation{Raw: "x", Type: types.TypeBook, Title: "First"}
	require.NoError(t, s.Put(cit))
	cit.Title = "Second"
	require.NoError(t, s.Put(cit))

	got, ok, err := s.Get("x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Second", got.Title)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAllCountClear(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(types.Citation{Raw: "a", Type: types.TypeBook, Title: "A"}))
	require.NoError(t, s.Put(types.Citation{Raw: "b", Type: types.TypeJournal, Title: "B"}))

	cits, err := s.All()
	require.NoError(t, err)
	assert.Len(t, cits, 2)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, s.Clear())
	n, err = s.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	cits, err = s.All()
	require.NoError(t, err)
	assert.Empty(t, cits)
}

func TestRawKey(t *testing.T) {
	assert.Equal(t, "a b c", rawKey("  A   b\tC "))
	assert.Equal(t, rawKey("Brown v. Board"), rawKey("brown V. board"))
}
