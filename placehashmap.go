package placehashmap

import (
	"fmt"
	"github.com/gostonefire/placehashmap/hashfunc"
	"github.com/gostonefire/placehashmap/internal/chain"
	"github.com/gostonefire/placehashmap/internal/conf"
	"github.com/gostonefire/placehashmap/internal/hash"
	"github.com/gostonefire/placehashmap/internal/model"
)

// HashTableInfo - Information structure containing some information about the hash table created
//   - Capacity is the number of buckets the hash table starts with
//   - LoadFactorLimit is the load factor above which an insert doubles the capacity
//   - InternalAlgorithm is true if the built-in polynomial hash algorithm is in use
type HashTableInfo struct {
	Capacity          int64
	LoadFactorLimit   float64
	InternalAlgorithm bool
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of places stored
//   - Capacity is the current number of buckets
//   - LoadFactor is Records divided by Capacity
//   - Resizes is the number of times the capacity has been doubled
//   - EmptyBuckets is the number of buckets without any place
//   - LongestChain is the number of places in the most crowded bucket
//   - BucketDistribution is the number of places stored in each bucket
type HashTableStat struct {
	Records            int64
	Capacity           int64
	LoadFactor         float64
	Resizes            int64
	EmptyBuckets       int64
	LongestChain       int64
	BucketDistribution []int64
}

// HashTable - The main implementation struct, a separate chaining hash table of places keyed by place name.
// It is not safe for concurrent use.
type HashTable struct {
	buckets           []chain.Chain
	capacity          int64
	size              int64
	resizes           int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewHashTable - Returns a new, empty hash table.
//   - initialCapacity is the number of buckets to start with, 0 (zero) gives the default of 101 buckets
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - hashTableInfo is a HashTableInfo struct containing some data regarding the hash table created.
//   - err is a normal go Error which should be nil if everything went ok
func NewHashTable(initialCapacity int64, hashAlgorithm hashfunc.HashAlgorithm) (
	hashTable *HashTable,
	hashTableInfo HashTableInfo,
	err error,
) {
	// Check if initialCapacity is valid
	if initialCapacity < 0 {
		err = fmt.Errorf("initialCapacity must be a positive value, or 0 (zero) for the default")
		return
	}
	if initialCapacity == 0 {
		initialCapacity = conf.DefaultCapacity
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewPolynomialHashAlgorithm(initialCapacity)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(initialCapacity)
		if hashAlgorithm.GetTableSize() != initialCapacity {
			err = fmt.Errorf("hash algorithm must address exactly %d buckets, it reports %d", initialCapacity, hashAlgorithm.GetTableSize())
			return
		}
	}

	hashTable = &HashTable{
		buckets:           make([]chain.Chain, initialCapacity),
		capacity:          initialCapacity,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	hashTableInfo = HashTableInfo{
		Capacity:          initialCapacity,
		LoadFactorLimit:   conf.LoadFactorLimit,
		InternalAlgorithm: internalAlg,
	}

	return
}

// NewPolynomialHashAlgorithm - Returns the built-in polynomial hash algorithm, the one used when no algorithm is given
// to NewHashTable.
func NewPolynomialHashAlgorithm(tableSize int64) hashfunc.HashAlgorithm {
	return hash.NewPolynomialHashAlgorithm(tableSize)
}

// NewXXHashAlgorithm - Returns a hash algorithm selecting buckets by xxhash over the place name.
func NewXXHashAlgorithm(tableSize int64) hashfunc.HashAlgorithm {
	return hash.NewXXHashAlgorithm(tableSize)
}

// Len - Returns the number of places stored
func (H *HashTable) Len() int64 {
	return H.size
}

// Capacity - Returns the current number of buckets
func (H *HashTable) Capacity() int64 {
	return H.capacity
}

// GetTableParameters - Returns a struct with the current parameters of the hash table
func (H *HashTable) GetTableParameters() (params model.TableParameters) {
	params = model.TableParameters{
		Capacity:          H.capacity,
		Size:              H.size,
		Resizes:           H.resizes,
		LoadFactorLimit:   conf.LoadFactorLimit,
		InternalAlgorithm: H.internalAlgorithm,
	}

	return
}
