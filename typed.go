package strhashmap

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Typed - A table whose values are of the fixed size Go type V. Values are stored little endian as encoded by
// encoding/binary, so V must be a fixed size type: a sized number, a bool, or an array or struct of those.
type Typed[V any] struct {
	table *Table
	size  int
}

// NewTyped - Returns a new table for values of type V.
//
// It returns:
//   - typed is a pointer to a Typed struct
//   - err is a standard error if V has no fixed size, otherwise as for NewTable
func NewTyped[V any](opts ...Option) (typed *Typed[V], err error) {
	var zero V
	size := binary.Size(zero)
	if size <= 0 {
		err = fmt.Errorf("value type %T has no fixed size", zero)
		return
	}

	err = checkCodec(zero)
	if err != nil {
		return
	}

	table, err := NewTable(int64(size), opts...)
	if err != nil {
		return
	}

	typed = &Typed[V]{table: table, size: size}

	return
}

// checkCodec - Encodes and decodes value once, encoding/binary panics on types it can only partly handle, such as
// structs with unexported fields
func checkCodec[V any](value V) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("value type %T can not be encoded: %v", value, r)
		}
	}()

	buf := new(bytes.Buffer)
	err = binary.Write(buf, binary.LittleEndian, value)
	if err != nil {
		return
	}

	var decoded V
	err = binary.Read(buf, binary.LittleEndian, &decoded)

	return
}

// Set - Updates or adds the value of key
func (T *Typed[V]) Set(key string, value V) (err error) {
	buf := bytes.NewBuffer(make([]byte, 0, T.size))
	err = binary.Write(buf, binary.LittleEndian, value)
	if err != nil {
		return
	}

	err = T.table.Set(key, buf.Bytes())

	return
}

// Get - Returns the value of key
//
// It returns:
//   - value is the stored value, or the zero value if not found
//   - found is true if the key was present
func (T *Typed[V]) Get(key string) (value V, found bool) {
	raw := T.table.At(key)
	if raw == nil {
		return
	}

	// Decoding a fixed size value from a buffer of exactly its size can not fail
	_ = binary.Read(bytes.NewReader(raw), binary.LittleEndian, &value)
	found = true

	return
}

// Contains - Returns true if key is present
func (T *Typed[V]) Contains(key string) bool {
	return T.table.Contains(key)
}

// Erase - Removes key, returns false if it was not present
func (T *Typed[V]) Erase(key string) bool {
	return T.table.Erase(key)
}

// Swap - Exchanges the values of keyA and keyB, fails with NoRecordFound if either is missing
func (T *Typed[V]) Swap(keyA, keyB string) error {
	return T.table.Swap(keyA, keyB)
}

// Range - Calls fn for every record until fn returns false
func (T *Typed[V]) Range(fn func(key string, value V) bool) {
	T.table.Range(func(key string, raw []byte) bool {
		var value V
		_ = binary.Read(bytes.NewReader(raw), binary.LittleEndian, &value)
		return fn(key, value)
	})
}

// Count - Returns the number of records
func (T *Typed[V]) Count() int64 {
	return T.table.Count()
}

// Table - Returns the underlying untyped table, for resizing and statistics
func (T *Typed[V]) Table() *Table {
	return T.table
}
