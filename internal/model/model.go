package model

// TableParameters - Represents the current shape of a hash table
//   - Capacity is the number of buckets
//   - Size is the number of stored places
//   - Resizes is the number of times the capacity has been doubled
//   - LoadFactorLimit is the load factor above which the next insert doubles the capacity
//   - InternalAlgorithm is true when the built-in polynomial hash algorithm is used
type TableParameters struct {
	Capacity          int64
	Size              int64
	Resizes           int64
	LoadFactorLimit   float64
	InternalAlgorithm bool
}
