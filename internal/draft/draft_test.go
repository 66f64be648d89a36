package draft

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, "Project Setup")

	values := map[string]string{
		"project_name": "demo",
		"email":        "ada@example.com",
	}
	require.NoError(t, s.Save(values))

	// Filename comes from the slugged title.
	require.Equal(t, filepath.Join(dir, "project-setup.yml"), s.Path())
	_, err := os.Stat(s.Path())
	require.NoError(t, err)

	d, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "Project Setup", d.Title)
	require.Equal(t, values, d.Values)
	require.False(t, d.SavedAt.IsZero())
}

func TestStore_LoadMissingReturnsEmptyDraft(t *testing.T) {
	s := NewStore(t.TempDir(), "Never Saved")

	d, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, d.Values)
	require.Equal(t, "Never Saved", d.Title)
}

func TestStore_EmptyTitleFallsBack(t *testing.T) {
	s := NewStore(t.TempDir(), "!!!")
	require.Equal(t, "unnamed-draft.yml", filepath.Base(s.Path()))
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "drafts")
	s := NewStore(dir, "Setup")

	require.NoError(t, s.Save(map[string]string{"a": "b"}))
	_, err := os.Stat(s.Path())
	require.NoError(t, err)
}

func TestStore_Discard(t *testing.T) {
	s := NewStore(t.TempDir(), "Setup")
	require.NoError(t, s.Save(map[string]string{"a": "b"}))
	require.NoError(t, s.Discard())

	_, err := os.Stat(s.Path())
	require.True(t, os.IsNotExist(err))

	// Discarding twice is fine.
	require.NoError(t, s.Discard())
}

func TestStore_SinkSwallowsErrors(t *testing.T) {
	// Point the store at a path that cannot be a directory.
	file := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	s := NewStore(filepath.Join(file, "drafts"), "Setup")
	// Must not panic; the error is logged and dropped.
	s.Sink(map[string]string{"a": "b"})
}
