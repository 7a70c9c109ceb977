// Package sequence provides a contiguous, growable store of fixed size elements.
//
// A Store carries no type information: every element is elementSize bytes and items are passed in and out as
// byte slices. It is the storage primitive the string table keeps its bucket values in, but it is usable on its
// own. Positions outside the live range, items of the wrong size and missing scratch space are programming errors
// and panic. Running into the configured memory limit is a normal error and never modifies the store.
package sequence

import "fmt"

// Option - Configures a Store at creation time
type Option func(*Store)

// WithMemoryLimit - Caps the backing buffer at limit bytes. Any operation that would need a bigger buffer fails
// with crt.AllocationFailed. A limit of 0 (the default) means no limit.
func WithMemoryLimit(limit int64) Option {
	return func(S *Store) {
		S.memoryLimit = limit
	}
}

// Store - A contiguous buffer of capacity elements of elementSize bytes each, of which the first length are live.
type Store struct {
	data        []byte
	elementSize int64
	length      int64
	capacity    int64
	memoryLimit int64
}

// New - Returns a pointer to a new empty Store (length and capacity both 0)
//   - elementSize is the number of bytes of every element, it must be higher than 0 (zero)
//   - opts are optional configuration such as WithMemoryLimit
func New(elementSize int64, opts ...Option) *Store {
	if elementSize <= 0 {
		panic(fmt.Sprintf("sequence.New: element size must be higher than 0 (zero), got (%d)", elementSize))
	}

	S := &Store{elementSize: elementSize}
	for _, opt := range opts {
		opt(S)
	}

	return S
}

// NewWithCapacity - Returns a pointer to a new empty Store with room for capacity elements.
//
// It returns:
//   - store is the created Store
//   - err is of type crt.AllocationFailed if capacity does not fit within the memory limit
func NewWithCapacity(elementSize, capacity int64, opts ...Option) (store *Store, err error) {
	store = New(elementSize, opts...)
	err = store.Reserve(capacity)
	if err != nil {
		store = nil
	}

	return
}

// Reserve - Grows or shrinks the backing buffer to exactly capacity elements. The length is kept unless it
// exceeds the new capacity, in which case it is truncated. A capacity of 0 (zero) releases the buffer.
//
// It returns:
//   - err is of type crt.AllocationFailed if the buffer would exceed the memory limit, the store is then unchanged
func (S *Store) Reserve(capacity int64) (err error) {
	if capacity < 0 {
		panic(fmt.Sprintf("Reserve: negative capacity (%d)", capacity))
	}

	if capacity == 0 {
		S.data = nil
		S.length = 0
		S.capacity = 0
		return
	}

	err = S.checkAllocation(capacity)
	if err != nil {
		return
	}

	data := make([]byte, capacity*S.elementSize)
	if S.length > capacity {
		S.length = capacity
	}
	_ = copy(data, S.data[:S.length*S.elementSize])

	S.data = data
	S.capacity = capacity

	return
}

// Resize - Sets the length of the store. Shrinking only updates the length and keeps the capacity. Growing
// reallocates the buffer to exactly newLength elements and sets both length and capacity to it, the newly exposed
// elements are zeroed.
//
// It returns:
//   - err is of type crt.AllocationFailed if the buffer would exceed the memory limit, the store is then unchanged
func (S *Store) Resize(newLength int64) (err error) {
	if newLength < 0 {
		panic(fmt.Sprintf("Resize: negative length (%d)", newLength))
	}

	if newLength <= S.length {
		S.length = newLength
		return
	}

	err = S.checkAllocation(newLength)
	if err != nil {
		return
	}

	data := make([]byte, newLength*S.elementSize)
	_ = copy(data, S.data[:S.length*S.elementSize])

	S.data = data
	S.length = newLength
	S.capacity = newLength

	return
}

// Increment - Adds one element at the back. When the store is full the capacity grows by exactly one element.
// The new element has unspecified contents.
//
// It returns:
//   - err is of type crt.AllocationFailed if the buffer would exceed the memory limit, the store is then unchanged
func (S *Store) Increment() (err error) {
	if S.length == S.capacity {
		err = S.checkAllocation(S.capacity + 1)
		if err != nil {
			return
		}

		S.data = append(S.data, make([]byte, S.elementSize)...)
		S.capacity++
	}

	S.length++

	return
}

// PushBack - Appends item at the back
//   - item must be exactly ElementSize bytes
func (S *Store) PushBack(item []byte) (err error) {
	S.checkItem("PushBack", item)

	err = S.Increment()
	if err != nil {
		return
	}

	_ = copy(S.slot(S.length-1), item)

	return
}

// PushFront - Prepends item, shifting every existing element one position to the back
//   - item must be exactly ElementSize bytes
func (S *Store) PushFront(item []byte) (err error) {
	return S.insert("PushFront", 0, item)
}

// Insert - Inserts item at pos, shifting the element at pos and all following one position to the back
//   - pos must be less than or equal to Length
//   - item must be exactly ElementSize bytes
func (S *Store) Insert(pos int64, item []byte) (err error) {
	return S.insert("Insert", pos, item)
}

// PopBack - Removes the last element, it is a no-op on an empty store
func (S *Store) PopBack() {
	if S.length == 0 {
		return
	}

	S.length--
}

// PopFront - Removes the first element shifting all others one position to the front, it is a no-op on an
// empty store
func (S *Store) PopFront() {
	if S.length == 0 {
		return
	}

	_ = copy(S.data, S.data[S.elementSize:S.length*S.elementSize])
	S.length--
}

// Erase - Removes the element at pos shifting all following elements one position to the front
//   - pos must be less than Length
func (S *Store) Erase(pos int64) {
	S.checkPos("Erase", pos)

	_ = copy(S.data[pos*S.elementSize:], S.data[(pos+1)*S.elementSize:S.length*S.elementSize])
	S.length--
}

// Get - Copies the element at pos into out
//   - pos must be less than Length
//   - out must be at least ElementSize bytes
func (S *Store) Get(pos int64, out []byte) {
	S.checkPos("Get", pos)
	if int64(len(out)) < S.elementSize {
		panic(fmt.Sprintf("Get: attempted to write (%d) byte element to a (%d) byte buffer", S.elementSize, len(out)))
	}

	_ = copy(out, S.slot(pos))
}

// At - Returns the element at pos as a slice of the backing buffer. Writes through it change the store. The slice
// is only valid until the next operation that changes the capacity.
//   - pos must be less than Length
func (S *Store) At(pos int64) []byte {
	S.checkPos("At", pos)

	return S.slot(pos)
}

// Set - Overwrites the element at pos with item
//   - pos must be less than Length
//   - item must be exactly ElementSize bytes
func (S *Store) Set(pos int64, item []byte) {
	S.checkPos("Set", pos)
	S.checkItem("Set", item)

	_ = copy(S.slot(pos), item)
}

// Swap - Exchanges the elements at posA and posB using scratch as temporary space
//   - posA and posB must be less than Length
//   - scratch must be at least ElementSize bytes
func (S *Store) Swap(posA, posB int64, scratch []byte) {
	S.checkPos("Swap", posA)
	S.checkPos("Swap", posB)
	if int64(len(scratch)) < S.elementSize {
		panic(fmt.Sprintf("Swap: attempted to use (%d) bytes of scratch space for (%d) byte elements", len(scratch), S.elementSize))
	}

	a := S.slot(posA)
	b := S.slot(posB)
	tmp := scratch[:S.elementSize]

	_ = copy(tmp, a)
	_ = copy(a, b)
	_ = copy(b, tmp)
}

// Front - Returns the first element as a slice of the backing buffer, the store must not be empty
func (S *Store) Front() []byte {
	S.checkPos("Front", 0)

	return S.slot(0)
}

// Back - Returns the last element as a slice of the backing buffer, the store must not be empty
func (S *Store) Back() []byte {
	S.checkPos("Back", S.length-1)

	return S.slot(S.length - 1)
}

// Clear - Sets the length to 0 (zero) while keeping the capacity
func (S *Store) Clear() {
	S.length = 0
}

// Destroy - Releases the backing buffer, the store is left empty with no capacity
func (S *Store) Destroy() {
	S.data = nil
	S.length = 0
	S.capacity = 0
}

// IsEmpty - Returns true if the store has no live elements
func (S *Store) IsEmpty() bool {
	return S.length == 0
}

// Length - Returns the number of live elements
func (S *Store) Length() int64 {
	return S.length
}

// Capacity - Returns the number of allocated element slots
func (S *Store) Capacity() int64 {
	return S.capacity
}

// ElementSize - Returns the fixed size in bytes of every element
func (S *Store) ElementSize() int64 {
	return S.elementSize
}

// MemoryLimit - Returns the configured memory limit in bytes, 0 (zero) means no limit
func (S *Store) MemoryLimit() int64 {
	return S.memoryLimit
}
