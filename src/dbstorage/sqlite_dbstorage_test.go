package dbstorage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewyi/pyparser/src/dbstorage/schema"
)

func newTestStorage(t *testing.T) DBStorage {
	t.Helper()
	s, err := NewDBStorage(DriverSQLite, filepath.Join(t.TempDir(), "cache", "http_cache.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteDBStorage_SaveAndGet(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetResponse("https://peps.python.org/")
	assert.Equal(t, ErrDataNotExist, err)

	fetched := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveResponse(&schema.Response{
		URL:        "https://peps.python.org/",
		StatusCode: 200,
		Content:    []byte("<html>index</html>"),
		FetchedAt:  fetched,
	}))

	resp, err := s.GetResponse("https://peps.python.org/")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "<html>index</html>", string(resp.Content))
	assert.True(t, fetched.Equal(resp.FetchedAt))
}

func TestSQLiteDBStorage_Overwrite(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.SaveResponse(&schema.Response{URL: "u", StatusCode: 200, Content: []byte("old")}))
	require.NoError(t, s.SaveResponse(&schema.Response{URL: "u", StatusCode: 200, Content: []byte("new")}))

	resp, err := s.GetResponse("u")
	require.NoError(t, err)
	assert.Equal(t, "new", string(resp.Content))
}

func TestSQLiteDBStorage_BinaryContent(t *testing.T) {
	s := newTestStorage(t)

	content := []byte{0x50, 0x4b, 0x03, 0x04, 0x00, 0xff, 0x00}
	require.NoError(t, s.SaveResponse(&schema.Response{URL: "a.zip", StatusCode: 200, Content: content}))

	resp, err := s.GetResponse("a.zip")
	require.NoError(t, err)
	assert.Equal(t, content, resp.Content)
}

func TestSQLiteDBStorage_Clear(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.SaveResponse(&schema.Response{URL: "a", StatusCode: 200}))
	require.NoError(t, s.SaveResponse(&schema.Response{URL: "b", StatusCode: 200}))
	require.NoError(t, s.Clear())

	_, err := s.GetResponse("a")
	assert.Equal(t, ErrDataNotExist, err)
	_, err = s.GetResponse("b")
	assert.Equal(t, ErrDataNotExist, err)
}

func TestNewDBStorage_Drivers(t *testing.T) {
	s, err := NewDBStorage(DriverNone, "")
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = NewDBStorage("mysql", "")
	assert.Error(t, err)
}
