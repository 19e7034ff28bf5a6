package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "storage.json")
}

func TestOpenMissingFileYieldsEmptyStore(t *testing.T) {
	s, err := Open(tempStorePath(t))
	require.NoError(t, err)

	_, ok := s.Get("token")
	assert.False(t, ok)
}

func TestSetGetRoundTrip(t *testing.T) {
	path := tempStorePath(t)
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Set("token", "abc123"))

	v, ok := s.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "abc123", v)
}

func TestPersistenceSurvivesReopen(t *testing.T) {
	path := tempStorePath(t)
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("token", "t1"))
	require.NoError(t, s.SetJSON("profile", map[string]string{"email": "a@b.c"}))

	// Reopen simulates a new process
	// 重新打开模拟新进程
	s2, err := Open(path)
	require.NoError(t, err)

	v, ok := s2.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "t1", v)

	var profile map[string]string
	found, err := s2.GetJSON("profile", &profile)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a@b.c", profile["email"])
}

func TestRemoveAndClear(t *testing.T) {
	s, err := Open(tempStorePath(t))
	require.NoError(t, err)
	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))

	require.NoError(t, s.Remove("a"))
	_, ok := s.Get("a")
	assert.False(t, ok)

	// Removing an absent key is a no-op
	// 删除不存在的键是空操作
	require.NoError(t, s.Remove("a"))

	require.NoError(t, s.Clear())
	_, ok = s.Get("b")
	assert.False(t, ok)
}

func TestCorruptFileYieldsEmptyStore(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	_, ok := s.Get("token")
	assert.False(t, ok)
}

func TestGetJSONMissingKey(t *testing.T) {
	s, err := Open(tempStorePath(t))
	require.NoError(t, err)

	var out []string
	found, err := s.GetJSON("wishlist_items", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
