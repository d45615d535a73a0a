package typelog

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Type(t *testing.T) {
	t.Run("same label twice writes two independent lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "t.log")
		l, err := Open(Config{File: path})
		require.NoError(t, err)
		defer l.Close()

		cacheHit := l.Type("cache_hit")
		require.NoError(t, cacheHit("key=a"))
		require.NoError(t, cacheHit("key=b"))

		lines := readLines(t, path)
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "[CACHE_HIT] key=a")
		assert.Contains(t, lines[1], "[CACHE_HIT] key=b")
	})

	t.Run("first use registers a fast path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "t.log")
		l, err := Open(Config{File: path})
		require.NoError(t, err)
		defer l.Close()

		require.NoError(t, l.Type("evt")("one"))

		l.mu.RLock()
		_, cached := l.table["evt"]
		l.mu.RUnlock()
		assert.True(t, cached)

		// The cached entry point keeps working.
		require.NoError(t, l.Type("evt")("two"))
		assert.Len(t, readLines(t, path), 2)
	})

	t.Run("invalid labels are intercepted on every call", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "t.log")
		var calls int
		l, err := Open(Config{
			File:  path,
			Types: []string{"a", "b"},
			InvalidType: func(label string) error {
				calls++
				return &InvalidTypeError{Label: label}
			},
		})
		require.NoError(t, err)
		defer l.Close()

		require.NoError(t, l.Type("a")("fine"))
		assert.Equal(t, 0, calls)

		bad := l.Type("c")
		require.Error(t, bad("nope"))
		assert.Equal(t, 1, calls)
		require.Error(t, bad("still nope"))
		assert.Equal(t, 2, calls)

		// The rejected label never lands in the dispatch table.
		l.mu.RLock()
		_, cached := l.table["c"]
		l.mu.RUnlock()
		assert.False(t, cached)

		// And the earlier valid label is unaffected.
		require.NoError(t, l.Type("a")("fine again"))
		assert.Equal(t, 2, calls)

		assert.Len(t, readLines(t, path), 2)
	})

	t.Run("caller location survives the dynamic path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "t.log")
		l, err := Open(Config{File: path})
		require.NoError(t, err)
		defer l.Close()

		require.NoError(t, l.Type("trace")("via closure"))

		lines := readLines(t, path)
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "(dispatch_test.go typelog.TestLogger_Type")
	})

	t.Run("teardown-like and empty names are no-ops", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "t.log")
		l, err := Open(Config{File: path})
		require.NoError(t, err)
		defer l.Close()

		assert.NoError(t, l.Type("close")("must not log"))
		assert.NoError(t, l.Type("Close")("must not log"))
		assert.NoError(t, l.Type("")("must not log"))
		assert.NoError(t, l.Type("evt")(""))

		assert.Empty(t, readLines(t, path))
	})

	t.Run("nil logger resolves to a no-op", func(t *testing.T) {
		var l *Logger
		assert.NoError(t, l.Type("evt")("nothing"))
	})
}

func TestLogger_Type_Concurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.log")
	l, err := Open(Config{File: path})
	require.NoError(t, err)
	defer l.Close()

	const writers = 16
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			// Everyone races to insert the same label; inserts are
			// idempotent and every entry point behaves identically.
			assert.NoError(t, l.Type("burst")("hello"))
		}()
	}
	wg.Wait()

	assert.Len(t, readLines(t, path), writers)
}
