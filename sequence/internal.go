package sequence

import (
	"fmt"
	"github.com/gostonefire/strhashmap/crt"
)

// insert - Grows the store by one and shifts elements from pos to make room for item
func (S *Store) insert(funcName string, pos int64, item []byte) (err error) {
	if pos < 0 || pos > S.length {
		S.accessError(funcName, pos)
	}
	S.checkItem(funcName, item)

	err = S.Increment()
	if err != nil {
		return
	}

	start := pos * S.elementSize
	_ = copy(S.data[start+S.elementSize:S.length*S.elementSize], S.data[start:(S.length-1)*S.elementSize])
	_ = copy(S.data[start:start+S.elementSize], item)

	return
}

// slot - Returns the bytes of the element at pos, capped so an append can never spill into the next element
func (S *Store) slot(pos int64) []byte {
	start := pos * S.elementSize
	end := start + S.elementSize

	return S.data[start:end:end]
}

// checkAllocation - Returns crt.AllocationFailed if capacity elements would not fit within the memory limit
func (S *Store) checkAllocation(capacity int64) (err error) {
	if S.memoryLimit > 0 && capacity*S.elementSize > S.memoryLimit {
		err = crt.AllocationFailed{}
	}

	return
}

// checkPos - Panics if pos is not a live element
func (S *Store) checkPos(funcName string, pos int64) {
	if pos < 0 || pos >= S.length {
		S.accessError(funcName, pos)
	}
}

// checkItem - Panics if item is not exactly one element
func (S *Store) checkItem(funcName string, item []byte) {
	if item == nil {
		panic(fmt.Sprintf("%s: attempted to read (%d) byte element from nil", funcName, S.elementSize))
	}
	if int64(len(item)) != S.elementSize {
		panic(fmt.Sprintf("%s: attempted to store (%d) bytes as a (%d) byte element", funcName, len(item), S.elementSize))
	}
}

// accessError - Panics with a description of an out of range access
func (S *Store) accessError(funcName string, pos int64) {
	panic(fmt.Sprintf("%s: attempted to access (%d) byte element at position (%d) but length was (%d)",
		funcName, S.elementSize, pos, S.length))
}
