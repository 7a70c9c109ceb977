package openaddressing

import (
	"github.com/gostonefire/strhashmap/crt"
	"github.com/gostonefire/strhashmap/internal/conf"
	"github.com/gostonefire/strhashmap/internal/model"
	"github.com/gostonefire/strhashmap/internal/utils"
	"github.com/gostonefire/strhashmap/sequence"
)

// newBuckets - Allocates empty nodes and zeroed value storage for conf.PrimeSizes[sizeIndex] buckets
func (O *OATable) newBuckets(sizeIndex int) (nodes []model.Node, values *sequence.Store, err error) {
	size := conf.PrimeSizes[sizeIndex]

	values = sequence.New(O.valueLength, sequence.WithMemoryLimit(O.memoryLimit))
	err = values.Resize(size)
	if err != nil {
		values = nil
		return
	}

	nodes = make([]model.Node, size)

	return
}

// rebuild - Re-probes every record into new buckets of size conf.PrimeSizes[sizeIndex] and releases the old ones.
// The table is only switched over once all records are placed.
func (O *OATable) rebuild(sizeIndex int) (err error) {
	nodes, values, err := O.newBuckets(sizeIndex)
	if err != nil {
		return
	}

	size := conf.PrimeSizes[sizeIndex]
	var bucketNo int64
	for i, node := range O.nodes {
		if node.State != model.RecordOccupied {
			continue
		}

		bucketNo, _, err = O.probe(nodes, size, node.Key)
		if err != nil {
			values.Destroy()
			return
		}

		nodes[bucketNo] = node
		values.Set(bucketNo, O.values.At(int64(i)))
	}

	O.values.Destroy()
	O.nodes = nodes
	O.values = values
	O.sizeIndex = sizeIndex
	O.nEmpty = size - O.nOccupied
	O.nDeleted = 0

	return
}

// find - Returns the bucket holding key in the current buckets
func (O *OATable) find(key string) (bucketNo int64, found bool) {
	bucketNo, found, err := O.probe(O.nodes, O.Size(), key)
	if err != nil {
		found = false
	}

	return
}

// probe - Is the Quadratic Probing Collision Resolution Technique algorithm. It stops at the first bucket that
// is either empty or holds key. Tombstones are probed past.
//
// It returns:
//   - bucketNo is the bucket holding key, or the empty bucket where key would be inserted
//   - found is true if the bucket holds key
//   - err is of type crt.ProbingAlgorithm if neither was reached within the failsafe number of iterations
func (O *OATable) probe(nodes []model.Node, size int64, key string) (bucketNo int64, found bool, err error) {
	hash := O.hashAlgorithm.HashFunc1(key)
	iMax := size * conf.ProbeFailsafeFactor

	for step := int64(0); step < iMax; step++ {
		bucketNo = utils.ProbeIndex(hash, step, size)

		switch nodes[bucketNo].State {
		case model.RecordEmpty:
			return

		case model.RecordOccupied:
			if nodes[bucketNo].Key == key {
				found = true
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// updateUtilizationInfo - Updates information about current utilization
func (O *OATable) updateUtilizationInfo(fromState, toState uint8) {
	if fromState != toState {
		switch fromState {
		case model.RecordEmpty:
			O.nEmpty--
		case model.RecordOccupied:
			O.nOccupied--
		case model.RecordDeleted:
			O.nDeleted--
		}

		switch toState {
		case model.RecordEmpty:
			O.nEmpty++
		case model.RecordOccupied:
			O.nOccupied++
		case model.RecordDeleted:
			O.nDeleted++
		}
	}
}

// checkAlive - Panics if the table has been destroyed
func (O *OATable) checkAlive(funcName string) {
	if O.destroyed {
		panic(funcName + ": attempted to use a destroyed table")
	}
}
