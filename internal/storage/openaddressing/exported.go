package openaddressing

import (
	"fmt"
	"github.com/gostonefire/strhashmap/crt"
	"github.com/gostonefire/strhashmap/hashfunc"
	"github.com/gostonefire/strhashmap/internal/conf"
	"github.com/gostonefire/strhashmap/internal/model"
	"github.com/gostonefire/strhashmap/internal/utils"
	"github.com/gostonefire/strhashmap/sequence"
)

// OATable - Represents an in memory implementation of the Quadratic Probing Collision Resolution Technique.
// Keys and their bucket state live in a slice of nodes, values live in a sequence.Store at the same index. In case
// of a collision it probes with (hash + step*step) mod size until it finds the key or an empty bucket.
// Tombstones left by Delete are probed past but never reused for insertion, only a resize removes them.
type OATable struct {
	nodes             []model.Node
	values            *sequence.Store
	valueLength       int64
	sizeIndex         int
	memoryLimit       int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	scratch           []byte
	destroyed         bool
	nEmpty            int64
	nOccupied         int64
	nDeleted          int64
}

// NewOATable - Returns a pointer to a new instance of the Quadratic Probing table implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation and processing
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error, or crt.AllocationFailed if the first buckets exceed the memory limit
func NewOATable(crtConf model.CRTConf) (oaTable *OATable, err error) {
	if crtConf.ValueLength <= 0 {
		err = fmt.Errorf("value length must be a positive value higher than 0 (zero)")
		return
	}
	if crtConf.SizeIndex < 0 || crtConf.SizeIndex > conf.MaxSizeIndex {
		err = crt.InvalidSizeIndex{}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hashfunc.NewPolynomialHashAlgorithm()
		internalAlg = true
	}

	oaTable = &OATable{
		valueLength:       crtConf.ValueLength,
		memoryLimit:       crtConf.MemoryLimit,
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
		scratch:           make([]byte, crtConf.ValueLength),
	}

	nodes, values, err := oaTable.newBuckets(crtConf.SizeIndex)
	if err != nil {
		oaTable = nil
		return
	}

	oaTable.nodes = nodes
	oaTable.values = values
	oaTable.sizeIndex = crtConf.SizeIndex
	oaTable.nEmpty = conf.PrimeSizes[crtConf.SizeIndex]

	return
}

// GetStorageParameters - Returns a struct with storage parameters and current utilization of the table
func (O *OATable) GetStorageParameters() (params model.StorageParameters) {
	O.checkAlive("GetStorageParameters")

	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.QuadraticProbing,
		ValueLength:                  O.valueLength,
		SizeIndex:                    O.sizeIndex,
		NumberOfBuckets:              O.Size(),
		NumberOfEmptyRecords:         O.nEmpty,
		NumberOfOccupiedRecords:      O.nOccupied,
		NumberOfDeletedRecords:       O.nDeleted,
		MemoryLimit:                  O.memoryLimit,
		InternalAlgorithm:            O.internalAlgorithm,
	}

	return
}

// Set - Updates the value of an existing key or adds the key if not present. Before probing, the table grows one
// size step if one more record would make it at least half full. If instead tombstones are what fills it up, the
// buckets are rebuilt at the current size to get rid of them.
//   - key is the identifier of the record
//   - value is the bytes to store, its length must be the value length given when creating the table
//
// It returns:
//   - err is crt.AllocationFailed if growing exceeds the memory limit, crt.ProbingAlgorithm if no free bucket
//     could be reached, or a standard error for a value of wrong length. On error the records are unchanged.
func (O *OATable) Set(key string, value []byte) (err error) {
	O.checkAlive("Set")

	if int64(len(value)) != O.valueLength {
		err = fmt.Errorf("wrong length of value, should be %d", O.valueLength)
		return
	}

	size := O.Size()
	if size/(O.nOccupied+1) <= 1 {
		newSizeIndex := O.sizeIndex
		if newSizeIndex < conf.MaxSizeIndex {
			newSizeIndex++
		}
		err = O.Resize(newSizeIndex)
		if err != nil {
			return
		}
	} else if O.nDeleted > 0 && size/(O.nOccupied+O.nDeleted+1) <= 1 {
		err = O.rebuild(O.sizeIndex)
		if err != nil {
			return
		}
	}

	bucketNo, found, err := O.probe(O.nodes, O.Size(), key)
	if err != nil {
		return
	}

	if !found {
		O.nodes[bucketNo] = model.Node{State: model.RecordOccupied, Key: key}
		O.updateUtilizationInfo(model.RecordEmpty, model.RecordOccupied)
	}
	O.values.Set(bucketNo, value)

	return
}

// Get - Copies the value of key into out
//   - key is the identifier of the record
//   - out must be at least the value length, it is untouched if the key is not found
//
// It returns:
//   - found is true if the key was found
func (O *OATable) Get(key string, out []byte) (found bool) {
	O.checkAlive("Get")

	bucketNo, found := O.find(key)
	if found {
		O.values.Get(bucketNo, out)
	}

	return
}

// At - Returns the value of key as a slice of the table's own storage, or nil if the key is not found.
// Writes through the slice change the stored value. It is only valid until the next resize.
func (O *OATable) At(key string) []byte {
	O.checkAlive("At")

	bucketNo, found := O.find(key)
	if !found {
		return nil
	}

	return O.values.At(bucketNo)
}

// Contains - Returns true if key is present in the table
func (O *OATable) Contains(key string) bool {
	O.checkAlive("Contains")

	_, found := O.find(key)

	return found
}

// Delete - Removes key and turns its bucket into a tombstone
//
// It returns:
//   - deleted is false if the key was not present, the table is then unchanged
func (O *OATable) Delete(key string) (deleted bool) {
	O.checkAlive("Delete")

	bucketNo, found := O.find(key)
	if !found {
		return
	}

	O.nodes[bucketNo] = model.Node{State: model.RecordDeleted}
	clear(O.values.At(bucketNo))
	O.updateUtilizationInfo(model.RecordOccupied, model.RecordDeleted)
	deleted = true

	return
}

// Clear - Removes every record and tombstone, the number of buckets is unchanged
func (O *OATable) Clear() {
	O.checkAlive("Clear")

	for i := range O.nodes {
		O.nodes[i] = model.Node{}
		clear(O.values.At(int64(i)))
	}

	O.nEmpty = O.Size()
	O.nOccupied = 0
	O.nDeleted = 0
}

// Resize - Moves all records into a new set of buckets of size conf.PrimeSizes[newSizeIndex], dropping all
// tombstones. It is a no-op if newSizeIndex is the current size index.
//
// It returns:
//   - err is crt.InvalidSizeIndex for an index outside the prime size table, crt.SizeTooSmall if the new size can
//     not hold the current records, crt.AllocationFailed if the new buckets exceed the memory limit or
//     crt.ProbingAlgorithm if a record could not be placed. On error the table is unchanged.
func (O *OATable) Resize(newSizeIndex int) (err error) {
	O.checkAlive("Resize")

	if newSizeIndex < 0 || newSizeIndex > conf.MaxSizeIndex {
		err = crt.InvalidSizeIndex{}
		return
	}
	if newSizeIndex == O.sizeIndex {
		return
	}
	if conf.PrimeSizes[newSizeIndex] < O.nOccupied {
		err = crt.SizeTooSmall{}
		return
	}

	err = O.rebuild(newSizeIndex)

	return
}

// Reserve - Grows the table to the smallest size that holds minCount records while at most half full.
// It never shrinks the table.
//
// It returns:
//   - err is crt.InvalidSizeIndex if no size in the prime size table is big enough, otherwise as for Resize
func (O *OATable) Reserve(minCount int64) (err error) {
	O.checkAlive("Reserve")

	sizeIndex := utils.MinSizeIndex(minCount)
	if sizeIndex <= O.sizeIndex {
		return
	}

	err = O.Resize(sizeIndex)

	return
}

// Shrink - Shrinks the table to the smallest size that holds the current records while at most half full.
// It never grows the table.
func (O *OATable) Shrink() (err error) {
	O.checkAlive("Shrink")

	sizeIndex := utils.MinSizeIndex(O.nOccupied)
	if sizeIndex >= O.sizeIndex {
		return
	}

	err = O.Resize(sizeIndex)

	return
}

// Swap - Exchanges the values (not the keys) of keyA and keyB
//
// It returns:
//   - err is of type crt.NoRecordFound if either key is missing, the table is then unchanged
func (O *OATable) Swap(keyA, keyB string) (err error) {
	O.checkAlive("Swap")

	bucketA, found := O.find(keyA)
	if !found {
		err = crt.NoRecordFound{}
		return
	}

	bucketB, found := O.find(keyB)
	if !found {
		err = crt.NoRecordFound{}
		return
	}

	O.values.Swap(bucketA, bucketB, O.scratch)

	return
}

// Range - Calls fn for every record in bucket order until fn returns false. The value slice is the table's own
// storage and must not be kept after fn returns. The table must not be modified from within fn.
func (O *OATable) Range(fn func(key string, value []byte) bool) {
	O.checkAlive("Range")

	for i, node := range O.nodes {
		if node.State != model.RecordOccupied {
			continue
		}
		if !fn(node.Key, O.values.At(int64(i))) {
			return
		}
	}
}

// ProbeLength - Returns the number of collisions probed past before key was found
//
// It returns:
//   - steps is the probe step at which the key was found
//   - found is false if the key is not in the table
func (O *OATable) ProbeLength(key string) (steps int64, found bool) {
	O.checkAlive("ProbeLength")

	size := O.Size()
	hash := O.hashAlgorithm.HashFunc1(key)
	iMax := size * conf.ProbeFailsafeFactor

	for steps = 0; steps < iMax; steps++ {
		node := O.nodes[utils.ProbeIndex(hash, steps, size)]
		switch node.State {
		case model.RecordEmpty:
			return
		case model.RecordOccupied:
			if node.Key == key {
				found = true
				return
			}
		}
	}

	return
}

// Size - Returns the number of buckets, conf.PrimeSizes[SizeIndex]
func (O *OATable) Size() int64 {
	O.checkAlive("Size")

	return conf.PrimeSizes[O.sizeIndex]
}

// SizeIndex - Returns the current index into the prime size table
func (O *OATable) SizeIndex() int {
	O.checkAlive("SizeIndex")

	return O.sizeIndex
}

// Count - Returns the number of records
func (O *OATable) Count() int64 {
	O.checkAlive("Count")

	return O.nOccupied
}

// IsEmpty - Returns true if the table holds no records
func (O *OATable) IsEmpty() bool {
	O.checkAlive("IsEmpty")

	return O.nOccupied == 0
}

// Destroy - Releases all records and buckets. Any later use of the table panics.
func (O *OATable) Destroy() {
	O.checkAlive("Destroy")

	O.nodes = nil
	O.values.Destroy()
	O.values = nil
	O.scratch = nil
	O.nEmpty = 0
	O.nOccupied = 0
	O.nDeleted = 0
	O.destroyed = true
}
