//go:build unit

package strhashmap

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"github.com/gostonefire/strhashmap/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
)

func i32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func toI32(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}

func getI32(t *testing.T, table *Table, key string) int32 {
	value, err := table.Get(key)
	require.NoErrorf(t, err, "gets %s", key)
	return toI32(value)
}

// constantHash - Sends every key down the same probe sequence
type constantHash struct{}

func (C constantHash) HashFunc1(string) uint64 {
	return 0
}

var scenarioKeys = []string{"abc", "def", "hij", "klm", "nop", "qrs", "tuv", "wxy", "z"}

func TestNewTable(t *testing.T) {
	t.Run("creates table with defaults", func(t *testing.T) {
		// Execute
		table, err := NewTable(4)

		// Check
		assert.NoError(t, err, "create table")
		info := table.Info()
		assert.Equal(t, int64(4), info.ValueLength, "value length")
		assert.Equal(t, 0, info.SizeIndex, "smallest size index")
		assert.Equal(t, int64(11), info.NumberOfBuckets, "smallest prime")
		assert.Zero(t, info.MemoryLimit, "no memory limit")
		assert.True(t, info.InternalAlgorithm, "polynomial hash")
		assert.True(t, table.IsEmpty(), "is empty")
	})

	t.Run("applies options", func(t *testing.T) {
		// Execute
		table, err := NewTable(8,
			WithHashAlgorithm(hashfunc.NewXXHashAlgorithm()),
			WithInitialSizeIndex(3),
			WithMemoryLimit(1<<20),
			WithLogger(nil),
		)

		// Check
		assert.NoError(t, err, "create table")
		info := table.Info()
		assert.Equal(t, 3, info.SizeIndex, "initial size index")
		assert.Equal(t, int64(97), info.NumberOfBuckets, "fourth prime")
		assert.Equal(t, int64(1<<20), info.MemoryLimit, "memory limit")
		assert.False(t, info.InternalAlgorithm, "custom hash")
	})

	t.Run("rejects bad configuration", func(t *testing.T) {
		_, err := NewTable(0)
		assert.Error(t, err, "zero value length")

		_, err = NewTable(4, WithInitialSizeIndex(30))
		assert.True(t, errors.Is(err, InvalidSizeIndex{}), "size index out of range")

		_, err = NewTable(4, WithMemoryLimit(10))
		assert.True(t, errors.Is(err, AllocationFailed{}), "first buckets exceed memory limit")
	})
}

func TestTable_Scenario(t *testing.T) {
	// Prepare
	table, err := NewTable(4)
	require.NoError(t, err, "create table")

	// Execute
	for i, key := range scenarioKeys {
		err = table.Set(key, i32(int32(i*3)))
		require.NoErrorf(t, err, "sets %s", key)
	}

	// Check
	assert.Equal(t, int64(9), table.Count(), "nine records")
	assert.Equal(t, int32(6), getI32(t, table, "hij"), "value of hij")
	assert.Equal(t, 1, table.SizeIndex(), "grew once")

	assert.True(t, table.Erase("def"), "erases def")
	assert.False(t, table.Contains("def"), "def is gone")
	assert.Equal(t, int64(8), table.Count(), "eight records")

	assert.NoError(t, table.Swap("abc", "hij"), "swaps values")
	assert.Equal(t, int32(6), getI32(t, table, "abc"), "abc has the value of hij")
	assert.Equal(t, int32(0), getI32(t, table, "hij"), "hij has the value of abc")
	assert.Equal(t, int32(24), getI32(t, table, "z"), "other values untouched")

	err = table.Swap("abc", "def")
	assert.True(t, errors.Is(err, NoRecordFound{}), "swap with erased key")
	assert.Contains(t, err.Error(), "error while swapping values", "wrapped by the table")
	assert.Equal(t, int32(6), getI32(t, table, "abc"), "failed swap changes nothing")
}

func TestTable_Set(t *testing.T) {
	t.Run("overwrites existing key", func(t *testing.T) {
		// Prepare
		table, err := NewTable(4)
		require.NoError(t, err, "create table")
		require.NoError(t, table.Set("key", i32(1)), "first set")

		// Execute
		err = table.Set("key", i32(2))

		// Check
		assert.NoError(t, err, "second set")
		assert.Equal(t, int64(1), table.Count(), "still one record")
		assert.Equal(t, int32(2), getI32(t, table, "key"), "value replaced")
	})

	t.Run("accepts empty key", func(t *testing.T) {
		// Prepare
		table, err := NewTable(4)
		require.NoError(t, err, "create table")

		// Execute
		err = table.Set("", i32(7))

		// Check
		assert.NoError(t, err, "set empty key")
		assert.Equal(t, int32(7), getI32(t, table, ""), "get empty key")
	})

	t.Run("rejects value of wrong length", func(t *testing.T) {
		// Prepare
		table, err := NewTable(4)
		require.NoError(t, err, "create table")

		// Execute
		err = table.Set("key", []byte{1, 2})

		// Check
		assert.Error(t, err, "wrong length")
		assert.True(t, table.IsEmpty(), "nothing stored")
	})

	t.Run("fails at memory limit", func(t *testing.T) {
		// Prepare
		table, err := NewTable(4, WithMemoryLimit(50))
		require.NoError(t, err, "create table")
		for i := 0; i < 5; i++ {
			require.NoError(t, table.Set(scenarioKeys[i], i32(int32(i))), "set within first size")
		}

		// Execute
		err = table.Set(scenarioKeys[5], i32(5))

		// Check
		assert.True(t, errors.Is(err, AllocationFailed{}), "growth exceeds memory limit")
		assert.Equal(t, int64(5), table.Count(), "records unchanged")
		assert.Equal(t, 0, table.SizeIndex(), "size unchanged")
		assert.False(t, table.Contains(scenarioKeys[5]), "failed key not stored")
		for i := 0; i < 5; i++ {
			assert.Equal(t, int32(i), getI32(t, table, scenarioKeys[i]), "earlier records intact")
		}
	})
}

func TestTable_GetAndPop(t *testing.T) {
	// Prepare
	table, err := NewTable(4)
	require.NoError(t, err, "create table")
	require.NoError(t, table.Set("abc", i32(42)), "set")

	// Execute and Check
	_, err = table.Get("missing")
	assert.True(t, errors.Is(err, NoRecordFound{}), "missing key")

	out := i32(-1)
	assert.False(t, table.GetInto("missing", out), "GetInto missing key")
	assert.Equal(t, int32(-1), toI32(out), "out untouched")
	assert.True(t, table.GetInto("abc", out), "GetInto present key")
	assert.Equal(t, int32(42), toI32(out), "out filled")

	assert.Nil(t, table.At("missing"), "At missing key")
	binary.LittleEndian.PutUint32(table.At("abc"), 43)
	assert.Equal(t, int32(43), getI32(t, table, "abc"), "write through At")

	value, err := table.Pop("abc")
	assert.NoError(t, err, "pops")
	assert.Equal(t, int32(43), toI32(value), "popped value")
	assert.False(t, table.Contains("abc"), "popped key gone")

	_, err = table.Pop("abc")
	assert.True(t, errors.Is(err, NoRecordFound{}), "pop missing key")
	assert.False(t, table.Erase("abc"), "erase missing key")
}

func TestTable_Resizing(t *testing.T) {
	t.Run("reserve, resize and shrink", func(t *testing.T) {
		// Prepare
		table, err := NewTable(4)
		require.NoError(t, err, "create table")
		for i, key := range scenarioKeys {
			require.NoError(t, table.Set(key, i32(int32(i))), "set")
		}

		// Execute and Check
		assert.NoError(t, table.Reserve(100), "reserve")
		assert.Equal(t, 5, table.SizeIndex(), "size index holding 100 at half load")
		assert.NoError(t, table.Reserve(10), "reserve never shrinks")
		assert.Equal(t, 5, table.SizeIndex(), "unchanged")

		assert.NoError(t, table.Resize(1), "resize down")
		assert.Equal(t, 1, table.SizeIndex(), "resized down")

		assert.NoError(t, table.Resize(4), "resize up")
		assert.NoError(t, table.Shrink(), "shrink")
		assert.Equal(t, 1, table.SizeIndex(), "smallest index holding 9 at half load")

		assert.True(t, errors.Is(table.Resize(-1), InvalidSizeIndex{}), "negative index")
		assert.True(t, errors.Is(table.Resize(30), InvalidSizeIndex{}), "index beyond table")
		assert.True(t, errors.Is(table.Reserve(1<<40), InvalidSizeIndex{}), "count beyond largest size")

		for i, key := range scenarioKeys {
			assert.Equalf(t, int32(i), getI32(t, table, key), "%s survives resizes", key)
		}
	})

	t.Run("resize rejects size below count", func(t *testing.T) {
		// Prepare
		table, err := NewTable(4, WithInitialSizeIndex(2))
		require.NoError(t, err, "create table")
		for i := 0; i < 12; i++ {
			require.NoError(t, table.Set(string(rune('a'+i)), i32(int32(i))), "set")
		}

		// Execute
		err = table.Resize(0)

		// Check
		assert.True(t, errors.Is(err, SizeTooSmall{}), "12 records do not fit 11 buckets")
		assert.Equal(t, 2, table.SizeIndex(), "size unchanged")
		assert.Equal(t, int64(12), table.Count(), "records unchanged")
	})
}

func TestTable_ResizeUnreachableBuckets(t *testing.T) {
	// Prepare
	table, err := NewTable(4, WithHashAlgorithm(constantHash{}), WithInitialSizeIndex(2))
	require.NoError(t, err, "create table")
	for i := 0; i < 7; i++ {
		require.NoError(t, table.Set(scenarioKeys[i], i32(int32(i))), "set")
	}

	// Execute
	err = table.Resize(0)

	// Check
	assert.True(t, errors.Is(err, ProbingAlgorithm{}), "11 buckets hold 7 records but only 6 are reachable")
	assert.Contains(t, err.Error(), "error while resizing table", "wrapped by the table")
	assert.Equal(t, 2, table.SizeIndex(), "size unchanged")
	assert.Equal(t, int64(7), table.Count(), "records unchanged")
	for i := 0; i < 7; i++ {
		assert.Equalf(t, int32(i), getI32(t, table, scenarioKeys[i]), "%s intact", scenarioKeys[i])
	}

	assert.NoError(t, table.Resize(1), "23 buckets reach 12 from one hash")
	assert.Equal(t, int64(7), table.Count(), "records moved")
}

func TestTable_ClearRangeStat(t *testing.T) {
	// Prepare
	table, err := NewTable(4)
	require.NoError(t, err, "create table")
	for i, key := range scenarioKeys {
		require.NoError(t, table.Set(key, i32(int32(i))), "set")
	}
	table.Erase("z")

	// Execute
	seen := make(map[string]int32)
	table.Range(func(key string, value []byte) bool {
		seen[key] = toI32(value)
		return true
	})
	stat := table.Stat()

	// Check
	assert.Len(t, seen, 8, "range visits every record")
	assert.Equal(t, int32(2), seen["hij"], "range value")

	visits := 0
	table.Range(func(string, []byte) bool {
		visits++
		return false
	})
	assert.Equal(t, 1, visits, "range stops early")

	assert.Equal(t, int64(8), stat.Records, "records")
	assert.Equal(t, int64(1), stat.Tombstones, "tombstones")
	assert.Equal(t, int64(23), stat.NumberOfBuckets, "buckets")
	assert.Equal(t, int64(14), stat.EmptyBuckets, "empty buckets")
	assert.InDelta(t, 8.0/23.0, stat.LoadFactor, 1e-9, "load factor")
	assert.GreaterOrEqual(t, stat.LongestProbe, int64(0), "longest probe")

	table.Clear()
	assert.True(t, table.IsEmpty(), "cleared")
	assert.Equal(t, int64(23), table.Size(), "buckets kept")
	assert.False(t, table.Contains("abc"), "records gone")
}

func TestTable_Logger(t *testing.T) {
	// Prepare
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	table, err := NewTable(4, WithLogger(logger), WithMemoryLimit(100))
	require.NoError(t, err, "create table")

	// Execute
	for i := 0; i < 6; i++ {
		require.NoError(t, table.Set(scenarioKeys[i], i32(int32(i))), "set")
	}
	err = table.Reserve(12)

	// Check
	assert.True(t, errors.Is(err, AllocationFailed{}), "reserve exceeds memory limit")
	out := buf.String()
	assert.Contains(t, out, "resize completed", "logs growth")
	assert.Contains(t, out, "op=set", "logs operation")
	assert.Contains(t, out, "to_size_index=1", "logs new size index")
	assert.Contains(t, out, "table operation failed", "logs failure")
	assert.Contains(t, out, "op=reserve", "logs failing operation")
}

func TestLogger_Constructors(t *testing.T) {
	ctx := context.Background()

	textLogger := NewTextLogger(slog.LevelWarn)
	assert.True(t, textLogger.Enabled(ctx, slog.LevelWarn), "text logger warns")
	assert.False(t, textLogger.Enabled(ctx, slog.LevelInfo), "text logger filters info")

	jsonLogger := NewJSONLogger(slog.LevelDebug)
	assert.True(t, jsonLogger.Enabled(ctx, slog.LevelDebug), "json logger debugs")

	assert.True(t, NewLogger(nil).Enabled(ctx, slog.LevelInfo), "default handler logs info")
	assert.False(t, NoopLogger().Enabled(ctx, slog.LevelError), "noop logger discards")
}

func TestTable_Destroy(t *testing.T) {
	// Prepare
	table, err := NewTable(4)
	require.NoError(t, err, "create table")

	// Execute
	table.Destroy()

	// Check
	assert.Panics(t, func() { _ = table.Contains("abc") }, "use after destroy")
	assert.Panics(t, func() { table.Destroy() }, "double destroy")
}

func TestTyped(t *testing.T) {
	type point struct {
		X, Y int32
	}

	t.Run("stores fixed size values", func(t *testing.T) {
		// Prepare
		typed, err := NewTyped[point]()
		require.NoError(t, err, "create typed table")

		// Execute
		require.NoError(t, typed.Set("a", point{1, 2}), "set a")
		require.NoError(t, typed.Set("b", point{3, 4}), "set b")
		require.NoError(t, typed.Swap("a", "b"), "swap")

		// Check
		value, found := typed.Get("a")
		assert.True(t, found, "a found")
		assert.Equal(t, point{3, 4}, value, "a swapped")
		_, found = typed.Get("c")
		assert.False(t, found, "c missing")
		assert.Equal(t, int64(2), typed.Count(), "two records")
		assert.Equal(t, int64(8), typed.Table().Info().ValueLength, "value length from type")

		sum := int32(0)
		typed.Range(func(_ string, p point) bool {
			sum += p.X + p.Y
			return true
		})
		assert.Equal(t, int32(10), sum, "range decodes values")

		assert.True(t, typed.Erase("a"), "erase")
		assert.False(t, typed.Contains("a"), "erased")
	})

	t.Run("rejects variable size types", func(t *testing.T) {
		_, err := NewTyped[[]int32]()
		assert.Error(t, err, "slice has no fixed size")

		_, err = NewTyped[int]()
		assert.Error(t, err, "int has no fixed size")
	})

	t.Run("rejects structs with unexported fields", func(t *testing.T) {
		// Execute
		typed, err := NewTyped[struct{ a, b int32 }]()

		// Check
		assert.Error(t, err, "unexported fields can not be decoded")
		assert.Nil(t, typed, "no table returned")
	})
}
