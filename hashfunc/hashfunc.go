package hashfunc

// HashAlgorithm - Interface that permits a user of the HashTable to supply a custom bucket
// selection algorithm suited for its particular distribution of place names.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the hash table is created and again every time the table doubles its capacity.
	// An implementation must address exactly tableSize buckets, no rounding is permitted since the
	// hash table allocates its bucket array from the very same number.
	//   - tableSize is the number of buckets the hash table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in a panic down stream.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	GetTableSize() int64
}
