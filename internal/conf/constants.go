package conf

// PrimeSizes - The ascending sequence of bucket counts a table may have. Each entry is a prime at least double
// the previous one, so a table roughly doubles per growth step while keeping a prime modulus for quadratic probing.
var PrimeSizes = [...]int64{
	11, 23, 47, 97, 197, 397, 797, 1597, 3203, 6421, 12853,
	25717, 51437, 102877, 205759, 411527, 823117, 1646237, 3292489, 6584983,
	13169977, 26339969, 52679969, 105359939, 210719881, 421439783, 842879579,
	1685759167, 3371518343, 6743036717,
}

// PrimeSizeCount - Number of entries in PrimeSizes
const PrimeSizeCount int = len(PrimeSizes)

// MaxSizeIndex - The largest valid size index, it is the ceiling on table size
const MaxSizeIndex int = PrimeSizeCount - 1

// TargetLoadDivisor - A table aims at holding at most 1/TargetLoadDivisor of its buckets occupied
const TargetLoadDivisor int64 = 2

// ProbeFailsafeFactor - Probing gives up after this many times the table size iterations
const ProbeFailsafeFactor int64 = 10

// PolynomialHashP - Multiplier of the polynomial string hash
const PolynomialHashP uint64 = 97

// PolynomialHashM - Modulus of the polynomial string hash
const PolynomialHashM uint64 = 1_000_000_009
