package model

import "github.com/gostonefire/strhashmap/hashfunc"

// RecordEmpty - State indicating a bucket that has never been in use since the last resize or clear
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a bucket that holds a live key
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a bucket that held a key which was erased (a tombstone)
const RecordDeleted uint8 = 2

// Node - Represents the key part of one bucket, the value lives in the table's value store at the same index
type Node struct {
	State uint8
	Key   string
}

// StorageParameters - Represents parameters and utilization of a table
type StorageParameters struct {
	CollisionResolutionTechnique int
	ValueLength                  int64
	SizeIndex                    int
	NumberOfBuckets              int64
	NumberOfEmptyRecords         int64
	NumberOfOccupiedRecords      int64
	NumberOfDeletedRecords       int64
	MemoryLimit                  int64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewOATable and contains configuration that affects
// table creation and processing.
//   - ValueLength is the fixed length of values to store
//   - SizeIndex is the index into the prime size table to start at
//   - MemoryLimit is the maximum number of bytes of value storage, 0 (zero) means no limit
//   - HashAlgorithm is the hash function to use, nil gives the internal polynomial hash
type CRTConf struct {
	ValueLength   int64
	SizeIndex     int
	MemoryLimit   int64
	HashAlgorithm hashfunc.HashAlgorithm
}
