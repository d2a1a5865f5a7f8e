package place

import (
	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPlace_Geohash(t *testing.T) {
	t.Run("encodes coordinates with requested precision", func(t *testing.T) {
		// Prepare
		p := Place{Latitude: 57.64911, Longitude: 10.40744}

		// Execute
		h := p.Geohash(11)

		// Check
		assert.Equal(t, "u4pruydqqvj", h, "well known geohash")
	})
}

func TestPlace_CellID(t *testing.T) {
	t.Run("returns a valid cell at requested level", func(t *testing.T) {
		// Prepare
		p := Place{Latitude: 39.7817, Longitude: -89.6501}

		// Execute
		cell := p.CellID(10)

		// Check
		assert.True(t, cell.IsValid(), "valid cell")
		assert.Equal(t, 10, cell.Level(), "correct level")
		assert.True(t, cell.Contains(s2.CellIDFromLatLng(p.LatLng())), "cell contains the place")
	})
}
