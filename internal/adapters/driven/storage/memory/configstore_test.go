package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Equal(t, ":memory:", store.Path())
	assert.Zero(t, store.Saves())
}

func TestNewConfigStore_Seeded(t *testing.T) {
	store := NewConfigStore(
		map[string]any{"refs.dir": "a", "paths.dir": "b"},
		map[string]any{"refs.dir": "c"},
	)

	assert.Equal(t, "c", store.GetString("refs.dir"))
	assert.Equal(t, "b", store.GetString("paths.dir"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("refs.target", "../automations.schema.json"))
	require.NoError(t, store.Set("refs.traverse_arrays", false))
	require.NoError(t, store.Set("license.change_years", int64(5)))
	require.NoError(t, store.Set("reaper.settle_ms", float64(250)))

	assert.Equal(t, "../automations.schema.json", store.GetString("refs.target"))
	assert.False(t, store.GetBool("refs.traverse_arrays"))
	assert.Equal(t, 5, store.GetInt("license.change_years"))
	assert.Equal(t, 250, store.GetInt("reaper.settle_ms"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_WrongTypesReturnZeroValues(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("key", []int{1})

	assert.Empty(t, store.GetString("key"))
	assert.Zero(t, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
}

func TestConfigStore_GetStringMap(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("titles.tables/tables.schema.json", "Tables")
	_ = store.Set("titles.pages/pages.schema.json", "Pages")
	_ = store.Set("titles.ignored", 42)
	_ = store.Set("titlesque", "not under prefix")
	_ = store.Set("refs.dir", "x")

	got := store.GetStringMap("titles")

	assert.Equal(t, map[string]string{
		"tables/tables.schema.json": "Tables",
		"pages/pages.schema.json":   "Pages",
	}, got)
	assert.Empty(t, store.GetStringMap("nothing"))
}

func TestConfigStore_SaveCountsAndLoadKeepsValues(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("k", "v")

	require.NoError(t, store.Save())
	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.Equal(t, 2, store.Saves())
	assert.Equal(t, "v", store.GetString("k"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("titles.k", "v")
			_ = store.GetStringMap("titles")
			_ = store.GetInt("n")
		}()
	}
	wg.Wait()

	assert.Equal(t, "v", store.GetString("titles.k"))
}
