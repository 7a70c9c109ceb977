// Package strhashmap implements an in memory hash table from string keys to fixed length values.
//
// The table uses open addressing with quadratic probing over a prime number of buckets taken from a fixed
// ascending sequence. It grows one size step whenever one more record would make it at least half full, deleted
// records leave tombstones that are removed by the next resize, and shrinking only happens on an explicit Shrink.
//
// A Table is not safe for concurrent use. Callers sharing one between goroutines must guard it with a mutex.
package strhashmap

import (
	"fmt"
	"github.com/gostonefire/strhashmap/internal/model"
	"github.com/gostonefire/strhashmap/internal/storage/openaddressing"
)

// HashMapInfo - Information structure containing some information about the table created
//   - ValueLength is the fixed length of every value
//   - SizeIndex is the index into the prime size table
//   - NumberOfBuckets is the total number of buckets
//   - MemoryLimit is the maximum number of bytes of value storage, 0 (zero) means no limit
//   - InternalAlgorithm is true if the default polynomial hash is used
type HashMapInfo struct {
	ValueLength       int64
	SizeIndex         int
	NumberOfBuckets   int64
	MemoryLimit       int64
	InternalAlgorithm bool
}

// HashMapStat - Statistics on the overall usage of the buckets
//   - Records is the total number of records stored
//   - Tombstones is the number of buckets left behind by deleted records
//   - EmptyBuckets is the number of buckets that have never been used since the last resize or clear
//   - NumberOfBuckets is the total number of buckets
//   - SizeIndex is the index into the prime size table
//   - LoadFactor is Records divided by NumberOfBuckets
//   - LongestProbe is the highest number of probe steps needed to reach any stored record
type HashMapStat struct {
	Records         int64
	Tombstones      int64
	EmptyBuckets    int64
	NumberOfBuckets int64
	SizeIndex       int
	LoadFactor      float64
	LongestProbe    int64
}

// Table - The main implementation struct
type Table struct {
	oaTable     *openaddressing.OATable
	valueLength int64
	logger      *Logger
}

// NewTable - Returns a new table for values of valueLength bytes, starting at the smallest prime size.
//   - valueLength is the length of every value, it has to be higher than 0 (zero)
//   - opts are optional configuration such as WithHashAlgorithm, WithMemoryLimit or WithLogger
//
// It returns:
//   - table is a pointer to a Table struct
//   - err is a standard error, or of type AllocationFailed if the first buckets do not fit the memory limit
func NewTable(valueLength int64, opts ...Option) (table *Table, err error) {
	o := options{logger: NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	oaTable, err := openaddressing.NewOATable(model.CRTConf{
		ValueLength:   valueLength,
		SizeIndex:     o.sizeIndex,
		MemoryLimit:   o.memoryLimit,
		HashAlgorithm: o.hashAlgorithm,
	})
	if err != nil {
		err = fmt.Errorf("error while creating table: %w", err)
		return
	}

	table = &Table{
		oaTable:     oaTable,
		valueLength: valueLength,
		logger:      o.logger,
	}

	return
}

// Info - Returns information about the table configuration and current size
func (T *Table) Info() (hashMapInfo HashMapInfo) {
	sp := T.oaTable.GetStorageParameters()

	hashMapInfo = HashMapInfo{
		ValueLength:       sp.ValueLength,
		SizeIndex:         sp.SizeIndex,
		NumberOfBuckets:   sp.NumberOfBuckets,
		MemoryLimit:       sp.MemoryLimit,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}

// Destroy - Releases all records and buckets. Any later use of the table panics.
func (T *Table) Destroy() {
	T.oaTable.Destroy()
}
