package navigator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(t.TempDir())

	state, err := store.Load("nothing")
	require.NoError(t, err)
	assert.True(t, state.IsZero())
}

func TestFileStoreRoundTripsThroughNavigator(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	store := NewFileStore(dir)

	first := New("main", WithStore(store))
	require.NoError(t, first.Start("Home"))
	require.NoError(t, first.To("Detail", "id-1"))

	_, err := os.Stat(store.Path("main"))
	require.NoError(t, err)

	second := New("main", WithStore(NewFileStore(dir)))
	var restored map[string]ViewInfo
	second.OnImmediate(func(hash string, records map[string]ViewInfo) {
		restored = records
	})
	require.NoError(t, second.Start("Home"))

	require.Len(t, restored, 2)
	assert.Equal(t, "Detail", restored["Detail"].View)
	assert.Equal(t, []any{"id-1"}, restored["Detail"].Args)
	assert.Less(t, restored["Home"].Timestamp, restored["Detail"].Timestamp)
}

func TestFileStoreKeepsArgumentTypes(t *testing.T) {
	dir := t.TempDir()

	args := []any{42, nil, "a", true, int64(-7), uint8(3), float32(1.5), 0.1}
	first := New("main", WithStore(NewFileStore(dir)))
	require.NoError(t, first.Start("Home"))
	require.NoError(t, first.To("Detail", args...))
	require.NoError(t, first.To("Settings"))

	second := New("main", WithStore(NewFileStore(dir)))
	var restored map[string]ViewInfo
	second.OnImmediate(func(hash string, records map[string]ViewInfo) {
		restored = records
	})
	require.NoError(t, second.Start("Home"))

	require.Len(t, restored, 3)
	assert.Equal(t, args, restored["Detail"].Args)
	assert.Empty(t, restored["Settings"].Args)

	cur, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, "Settings", cur.View)
}

func TestFileStoreRejectsUnsupportedArgs(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	n := New("main", WithStore(store))
	require.NoError(t, n.Start("Home"))

	err := n.To("Detail", struct{ ID int }{ID: 1})
	require.ErrorIs(t, err, ErrUnsupportedArg)
	assert.Equal(t, 1, n.Len())

	cur, _ := n.Current()
	assert.Equal(t, "Home", cur.View)

	require.NoError(t, n.To("Detail", 1))
	state, err := store.Load("main")
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Detail"}, state.History)
	assert.Equal(t, []any{1}, state.Records["Detail"].Args)
}

func TestFileStoreRejectsCorruptState(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, os.WriteFile(store.Path("bad"), []byte("history = ["), 0644))

	_, err := store.Load("bad")
	assert.Error(t, err)

	n := New("bad", WithStore(store))
	assert.Error(t, n.Start("Home"))
}

func TestFileStorePathSanitizesID(t *testing.T) {
	store := NewFileStore("/tmp/x")
	assert.Equal(t, filepath.Join("/tmp/x", "a_b.toml"), store.Path("a/b"))
	assert.Equal(t, filepath.Join("/tmp/x", "default.toml"), store.Path(""))
}
