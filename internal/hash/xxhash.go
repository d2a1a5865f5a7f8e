package hash

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - Alternative bucket selection algorithm using xxhash (64 bit) over the key and then applying
// bucket = hash % tableSize. The bucket layout differs from the polynomial algorithm.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the hash table will address
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(key []byte) int64 {
	return int64(xxhash.Sum64(key) % uint64(X.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}
