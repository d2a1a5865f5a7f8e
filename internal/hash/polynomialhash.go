package hash

// polynomialPrime - Multiplier used when folding each byte of a key into the running hash value
const polynomialPrime int64 = 31

// PolynomialHashAlgorithm - The internally used bucket selection algorithm. It computes a polynomial (Horner) hash
// over the bytes of the key, reducing the running value modulo the table size after every step and once more at the
// end, hence bucket = ((...((0*31 + b0) % n)*31 + b1) % n ...) % n where n is the table size.
// Bytes are taken as unsigned values (0-255).
type PolynomialHashAlgorithm struct {
	tableSize int64
}

// NewPolynomialHashAlgorithm - Returns a pointer to a new PolynomialHashAlgorithm instance
func NewPolynomialHashAlgorithm(tableSize int64) *PolynomialHashAlgorithm {
	ha := &PolynomialHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// Contrary to the power of 2 based algorithms the table size is used as is.
//   - tableSize is the number of buckets the hash table will address
func (P *PolynomialHashAlgorithm) SetTableSize(tableSize int64) {
	P.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (P *PolynomialHashAlgorithm) HashFunc1(key []byte) int64 {
	var h int64
	for _, c := range key {
		h = (h*polynomialPrime + int64(c)) % P.tableSize
	}

	return h % P.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (P *PolynomialHashAlgorithm) GetTableSize() int64 {
	return P.tableSize
}
