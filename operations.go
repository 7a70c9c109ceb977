package strhashmap

import "fmt"

// Set - Updates the value of an existing key or adds the key if not present. The table grows one size step first
// if one more record would make it at least half full.
//   - key is the identifier of a record, any string including the empty one
//   - value is the bytes to store, its length must be the value length given in call to NewTable
//
// It returns:
//   - err is of type AllocationFailed if growing exceeded the memory limit, or a standard error. On error no
//     record is changed.
func (T *Table) Set(key string, value []byte) (err error) {
	fromSizeIndex := T.oaTable.SizeIndex()

	err = T.oaTable.Set(key, value)
	T.logger.LogResize("set", fromSizeIndex, T.oaTable.SizeIndex(), T.oaTable.Count(), err)
	if err != nil {
		err = fmt.Errorf("error while setting record: %w", err)
	}

	return
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is a copy of the value of the matching record
//   - err is of type NoRecordFound if there is no such key
func (T *Table) Get(key string) (value []byte, err error) {
	value = make([]byte, T.valueLength)
	if !T.oaTable.Get(key, value) {
		value = nil
		err = NoRecordFound{}
	}

	return
}

// GetInto - Copies the value of key into out, leaving out untouched if the key is not present.
//   - out must be at least the value length given in call to NewTable
//
// It returns:
//   - found is true if the key was present
func (T *Table) GetInto(key string, out []byte) (found bool) {
	return T.oaTable.Get(key, out)
}

// At - Returns the value of key as a slice of the table's own storage, or nil if key is not present.
// Writing to the slice changes the stored value. The slice must not be used after the next call that may resize
// the table (Set, Resize, Reserve, Shrink).
func (T *Table) At(key string) []byte {
	return T.oaTable.At(key)
}

// Contains - Returns true if key is present
func (T *Table) Contains(key string) bool {
	return T.oaTable.Contains(key)
}

// Erase - Removes key from the table.
//
// It returns:
//   - erased is false if the key was not present, the table is then unchanged
func (T *Table) Erase(key string) (erased bool) {
	return T.oaTable.Delete(key)
}

// Pop - Returns the value corresponding to key and removes it from the table.
//
// It returns:
//   - value is a copy of the value of the matching record
//   - err is of type NoRecordFound if there is no such key
func (T *Table) Pop(key string) (value []byte, err error) {
	value, err = T.Get(key)
	if err != nil {
		return
	}

	T.oaTable.Delete(key)

	return
}

// Clear - Removes every record, the number of buckets is unchanged
func (T *Table) Clear() {
	T.oaTable.Clear()
}

// Resize - Moves all records into the number of buckets found at sizeIndex of the prime size table, dropping
// all tombstones. Resizing to the current index is a no-op.
//
// Quadratic probing over a prime number of buckets only reaches about half of them from any one hash, so a
// resize to a size that holds more than half as many records as buckets may find no free bucket for some key.
//
// It returns:
//   - err is of type SizeTooSmall, InvalidSizeIndex, AllocationFailed or, for such a dense target size,
//     ProbingAlgorithm. The table is then unchanged.
func (T *Table) Resize(sizeIndex int) (err error) {
	fromSizeIndex := T.oaTable.SizeIndex()

	err = T.oaTable.Resize(sizeIndex)
	T.logger.LogResize("resize", fromSizeIndex, sizeIndex, T.oaTable.Count(), err)
	if err != nil {
		err = fmt.Errorf("error while resizing table: %w", err)
	}

	return
}

// Reserve - Grows the table so that it holds minCount records while at most half full. It never shrinks.
//
// It returns:
//   - err is of type InvalidSizeIndex if minCount is beyond the largest table size, or AllocationFailed
func (T *Table) Reserve(minCount int64) (err error) {
	fromSizeIndex := T.oaTable.SizeIndex()

	err = T.oaTable.Reserve(minCount)
	T.logger.LogResize("reserve", fromSizeIndex, T.oaTable.SizeIndex(), T.oaTable.Count(), err)
	if err != nil {
		err = fmt.Errorf("error while reserving buckets: %w", err)
	}

	return
}

// Shrink - Shrinks the table to the smallest size that holds the current records while at most half full.
// It never grows.
func (T *Table) Shrink() (err error) {
	fromSizeIndex := T.oaTable.SizeIndex()

	err = T.oaTable.Shrink()
	T.logger.LogResize("shrink", fromSizeIndex, T.oaTable.SizeIndex(), T.oaTable.Count(), err)
	if err != nil {
		err = fmt.Errorf("error while shrinking table: %w", err)
	}

	return
}

// Swap - Exchanges the values of keyA and keyB, the keys stay where they are.
//
// It returns:
//   - err is of type NoRecordFound if either key is missing, no value is changed then
func (T *Table) Swap(keyA, keyB string) (err error) {
	err = T.oaTable.Swap(keyA, keyB)
	if err != nil {
		err = fmt.Errorf("error while swapping values: %w", err)
	}

	return
}

// Range - Calls fn for every record until fn returns false. The order is the bucket order and changes when the
// table is resized. The value slice is the table's own storage, it must be copied if kept after fn returns.
// The table must not be modified from within fn.
func (T *Table) Range(fn func(key string, value []byte) bool) {
	T.oaTable.Range(fn)
}

// Size - Returns the number of buckets (not the number of records)
func (T *Table) Size() int64 {
	return T.oaTable.Size()
}

// SizeIndex - Returns the index of the current size in the prime size table
func (T *Table) SizeIndex() int {
	return T.oaTable.SizeIndex()
}

// Count - Returns the number of records
func (T *Table) Count() int64 {
	return T.oaTable.Count()
}

// IsEmpty - Returns true if there are no records
func (T *Table) IsEmpty() bool {
	return T.oaTable.IsEmpty()
}

// Stat - Walks through all records and produces a HashMapStat struct with information.
func (T *Table) Stat() (hashMapStat HashMapStat) {
	sp := T.oaTable.GetStorageParameters()

	hashMapStat = HashMapStat{
		Records:         sp.NumberOfOccupiedRecords,
		Tombstones:      sp.NumberOfDeletedRecords,
		EmptyBuckets:    sp.NumberOfEmptyRecords,
		NumberOfBuckets: sp.NumberOfBuckets,
		SizeIndex:       sp.SizeIndex,
		LoadFactor:      float64(sp.NumberOfOccupiedRecords) / float64(sp.NumberOfBuckets),
	}

	T.oaTable.Range(func(key string, _ []byte) bool {
		steps, _ := T.oaTable.ProbeLength(key)
		if steps > hashMapStat.LongestProbe {
			hashMapStat.LongestProbe = steps
		}
		return true
	})

	return
}
