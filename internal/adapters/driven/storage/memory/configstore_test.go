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
	assert.NotNil(t, store.values)
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("server.url", "http://localhost:8000"))
	require.NoError(t, store.Set("server.url", "https://docs.example.com"))

	val, ok := store.Get("server.url")
	assert.True(t, ok)
	assert.Equal(t, "https://docs.example.com", val)
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("server.url", "http://127.0.0.1:8000")
	_ = store.Set("server.timeout_seconds", 30)
	_ = store.Set("server.burst", int64(5))
	_ = store.Set("server.rate_limit", 2.0)
	_ = store.Set("session.clear_on_unauthorized", true)

	assert.Equal(t, "http://127.0.0.1:8000", store.GetString("server.url"))
	assert.Equal(t, 30, store.GetInt("server.timeout_seconds"))
	assert.Equal(t, 5, store.GetInt("server.burst"))
	assert.Equal(t, 2, store.GetInt("server.rate_limit"))
	assert.True(t, store.GetBool("session.clear_on_unauthorized"))
}

func TestConfigStore_TypedGetters_WrongType(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("key", []string{"a"})

	assert.Empty(t, store.GetString("key"))
	assert.Zero(t, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
	assert.Empty(t, store.GetString("missing"))
}

func TestConfigStore_SaveLoadPath(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	numGoroutines := 50

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			key := "key-" + string(rune('A'+id))
			_ = store.Set(key, id)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < numGoroutines; i++ {
		assert.Equal(t, i, store.GetInt("key-"+string(rune('A'+i))))
	}
}
