//go:build stress

package test

import (
	"fmt"
	"github.com/gostonefire/placehashmap"
	"github.com/gostonefire/placehashmap/internal/loader"
	"github.com/gostonefire/placehashmap/place"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

var stateCodes = []string{"AL", "AK", "AZ", "CA", "CO", "FL", "GA", "IL", "MA", "MO", "NY", "OH", "OR", "TX", "UT", "WA"}

// createAndStoreTestdata - Writes a places file with amount places drawn from a limited set of names, so that
// names repeat across states like they do in real data.
func createAndStoreTestdata(amount int, fileName string) (places []place.Place, err error) {
	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < amount; i++ {
		p := place.Place{
			Code:             i,
			State:            stateCodes[r.Intn(len(stateCodes))],
			Name:             fmt.Sprintf("Place %d", r.Intn(amount/4)),
			Population:       r.Intn(1000000),
			Area:             float64(r.Intn(100000)) / 100,
			Latitude:         float64(r.Intn(18000)-9000) / 100,
			Longitude:        float64(r.Intn(36000)-18000) / 100,
			RoadIntersection: r.Intn(99999999),
			Distance:         float64(r.Intn(999999)) / 1000,
		}
		_, err = fmt.Fprintf(f, "%8d%-2s%-50s%8d%10.2f%10.2f%10.2f%8d%8.3f\n",
			p.Code, p.State, p.Name, p.Population, p.Area, p.Latitude, p.Longitude, p.RoadIntersection, p.Distance)
		if err != nil {
			return
		}
		places = append(places, p)
	}

	return
}

func TestStress(t *testing.T) {
	for _, algorithm := range []string{"polynomial", "xxhash"} {
		t.Run(fmt.Sprintf("load and look up 200000 places with %s", algorithm), func(t *testing.T) {
			// Prepare
			fileName := filepath.Join(t.TempDir(), "named-places.txt")
			places, err := createAndStoreTestdata(200000, fileName)
			assert.NoError(t, err, "creates test data")

			var ht *placehashmap.HashTable
			if algorithm == "xxhash" {
				ht, _, err = placehashmap.NewHashTable(0, placehashmap.NewXXHashAlgorithm(0))
			} else {
				ht, _, err = placehashmap.NewHashTable(0, nil)
			}
			assert.NoError(t, err, "creates hash table")

			// Execute
			result, err := loader.LoadPlacesFile(fileName, ht)

			// Check
			assert.NoError(t, err, "loads places")
			assert.Equal(t, 200000, result.Loaded, "all loaded")
			assert.Equal(t, int64(200000), ht.Len(), "all stored")

			stat := ht.Stat(false)
			assert.LessOrEqual(t, stat.LoadFactor, 0.75*2, "load factor bounded")
			assert.Equal(t, int64(101)<<stat.Resizes, stat.Capacity, "capacity only doubled")

			byName := make(map[string]int)
			for _, p := range places {
				byName[p.Name]++
			}
			for name, n := range byName {
				assert.Len(t, ht.FindByName(name), n, "all places named %s found", name)
			}

			for i := len(places) - 1; i >= len(places)-1000; i-- {
				p, found := ht.FindByNameAndState(places[i].Name, places[i].State)
				assert.True(t, found, "place found")
				assert.Equal(t, places[i].Name, p.Name, "correct name")
				assert.Equal(t, places[i].State, p.State, "correct state")
			}
		})
	}
}
