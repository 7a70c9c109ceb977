package crt

// QuadraticProbing - The collision resolution technique used by the string table
const QuadraticProbing int = 2

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probe sequence was exhausted
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// AllocationFailed - Custom error to inform that a buffer could not be allocated within the configured memory limit.
// The structure reporting it is left in the state it had before the attempted allocation.
type AllocationFailed struct {
	msg string
}

// Error - Used to notify that an allocation failed
func (A AllocationFailed) Error() string {
	if A.msg == "" {
		return "allocation failed"
	}
	return A.msg
}

// SizeTooSmall - Custom error to inform that a requested table size can not hold the current number of records
type SizeTooSmall struct {
	msg string
}

// Error - Used to notify that a table size is too small
func (S SizeTooSmall) Error() string {
	if S.msg == "" {
		return "table size too small for current records"
	}
	return S.msg
}

// InvalidSizeIndex - Custom error to inform that a size index is outside the prime size table
type InvalidSizeIndex struct {
	msg string
}

// Error - Used to notify that a size index is out of range
func (I InvalidSizeIndex) Error() string {
	if I.msg == "" {
		return "size index out of range"
	}
	return I.msg
}
