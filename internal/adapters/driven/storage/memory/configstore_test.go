package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("lookup.label", "Account"))
	require.NoError(t, store.Set("lookup.label", "Contact"))

	val, ok := store.Get("lookup.label")
	assert.True(t, ok)
	assert.Equal(t, "Contact", val)
	assert.Equal(t, 2, store.Saves())

	_, ok = store.Get("lookup.missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore().WithValues(map[string]any{
		"str":     "value",
		"int":     42,
		"int64":   int64(7),
		"float":   float64(3),
		"bool":    true,
		"strings": []string{"a", "b"},
		"anys":    []any{"x", 1, "y"},
	})

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("str"), "value"},
		{"string wrong type", store.GetString("int"), ""},
		{"int", store.GetInt("int"), 42},
		{"int64", store.GetInt("int64"), 7},
		{"float64", store.GetInt("float"), 3},
		{"int missing", store.GetInt("missing"), 0},
		{"bool", store.GetBool("bool"), true},
		{"bool wrong type", store.GetBool("str"), false},
		{"string slice", store.GetStringSlice("strings"), []string{"a", "b"}},
		{"any slice", store.GetStringSlice("anys"), []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_SaveLoadPath(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("lookup.result_limit", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("lookup.result_limit")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Saves())
}
