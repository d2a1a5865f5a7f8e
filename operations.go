package placehashmap

import (
	"fmt"
	"github.com/gostonefire/placehashmap/internal/chain"
	"github.com/gostonefire/placehashmap/place"
	log "github.com/sirupsen/logrus"
)

// Insert - Adds a place to the hash table. The place is put first in the chain of its bucket, so the most recently
// inserted place is the first one found. Places sharing a name, or even name and state, are all kept.
// If the load factor is above the limit before the insert, the capacity is doubled first.
//   - p is the place to store, the hash table keeps its own copy
func (H *HashTable) Insert(p place.Place) {
	params := H.GetTableParameters()
	if float64(params.Size)/float64(params.Capacity) > params.LoadFactorLimit {
		H.resize()
	}

	H.buckets[H.bucketNo(p.Name)].PushFront(p)
	H.size++
}

// FindByName - Returns all places with exactly the given name (case-sensitive), most recently inserted first.
//   - name is the place name to look for
//
// It returns:
//   - places is the matching places, nil if there are none.
func (H *HashTable) FindByName(name string) (places []place.Place) {
	for iter := H.buckets[H.bucketNo(name)].Records(); iter.HasNext(); {
		p := iter.Next()
		if p.Name == name {
			places = append(places, p)
		}
	}

	return
}

// FindByNameAndState - Returns the most recently inserted place with exactly the given name and state.
//   - name is the place name to look for
//   - state is the two character state code to look for
//
// It returns:
//   - p is the matching place if found
//   - found is false if no place matched, p is then the zero Place
func (H *HashTable) FindByNameAndState(name, state string) (p place.Place, found bool) {
	for iter := H.buckets[H.bucketNo(name)].Records(); iter.HasNext(); {
		p = iter.Next()
		if p.Name == name && p.State == state {
			found = true
			return
		}
	}

	p = place.Place{}
	return
}

// GetBucketNo - Returns which bucket number the given name results in under the current capacity
//   - name is the place name
func (H *HashTable) GetBucketNo(name string) (bucketNo int64, err error) {
	bucketNo = H.hashAlgorithm.HashFunc1([]byte(name))
	if bucketNo < 0 || bucketNo >= H.capacity {
		err = fmt.Errorf("received bucket number from hash algorithm is outside permitted range")
		return
	}

	return
}

// GetBucket - Returns the places in a bucket in chain order (front first)
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
func (H *HashTable) GetBucket(bucketNo int64) (places []place.Place, err error) {
	if bucketNo < 0 || bucketNo >= H.capacity {
		err = fmt.Errorf("bucket number %d is outside permitted range 0 - %d", bucketNo, H.capacity-1)
		return
	}

	places = H.buckets[bucketNo].Places()

	return
}

// Stat - Walks through the entire set of buckets and produce a HashTableStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of places per bucket, false will set HashTableStat.BucketDistribution to nil.
func (H *HashTable) Stat(includeDistribution bool) (hashTableStat HashTableStat) {
	params := H.GetTableParameters()
	hashTableStat = HashTableStat{
		Records:    params.Size,
		Capacity:   params.Capacity,
		LoadFactor: float64(params.Size) / float64(params.Capacity),
		Resizes:    params.Resizes,
	}

	if includeDistribution {
		hashTableStat.BucketDistribution = make([]int64, params.Capacity)
	}

	for i := range H.buckets {
		n := int64(H.buckets[i].Len())
		if n == 0 {
			hashTableStat.EmptyBuckets++
		}
		if n > hashTableStat.LongestChain {
			hashTableStat.LongestChain = n
		}
		if includeDistribution {
			hashTableStat.BucketDistribution[i] = n
		}
	}

	return
}

// bucketNo - Returns the bucket number for a name, a hash algorithm answering outside the bucket range is a
// programming error and panics.
func (H *HashTable) bucketNo(name string) int64 {
	bucketNo, err := H.GetBucketNo(name)
	if err != nil {
		panic(fmt.Sprintf("bucket for %q: %s", name, err))
	}

	return bucketNo
}

// resize - Doubles the capacity and rehashes every place into a new set of buckets. Old buckets are drained in
// bucket order, each chain front first, and every place is pushed to the front of its new chain. Places ending up
// in the same new bucket thereby get the reverse order of how they were encountered.
func (H *HashTable) resize() {
	oldBuckets := H.buckets
	oldCapacity := H.capacity

	H.capacity *= 2
	H.hashAlgorithm.SetTableSize(H.capacity)
	H.buckets = make([]chain.Chain, H.capacity)

	for i := range oldBuckets {
		for iter := oldBuckets[i].Records(); iter.HasNext(); {
			p := iter.Next()
			H.buckets[H.bucketNo(p.Name)].PushFront(p)
		}
	}

	H.resizes++

	log.WithFields(log.Fields{
		"from": oldCapacity,
		"to":   H.capacity,
		"size": H.size,
	}).Debug("hash table resized")
}
