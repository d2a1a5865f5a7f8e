package place

import (
	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/golang/geo/s2"
)

// Place - Represents one named place as read from a places file.
// A Place is a plain value, the hash table stores copies of it and hands out copies on lookup, so a stored
// place can never be changed after insertion.
//   - Code is the place identifier
//   - State is the two character region (state) code
//   - Name is the place name, it is the lookup key and is not unique
//   - Population is the number of inhabitants
//   - Area is the land area
//   - Latitude and Longitude are the coordinates in degrees
//   - RoadIntersection is the code of the nearest road intersection
//   - Distance is the distance to that road intersection
type Place struct {
	Code             int
	State            string
	Name             string
	Population       int
	Area             float64
	Latitude         float64
	Longitude        float64
	RoadIntersection int
	Distance         float64
}

// LatLng - Returns the coordinates of the place as an s2.LatLng
func (P Place) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(P.Latitude, P.Longitude)
}

// CellID - Returns the s2 cell containing the place at the given cell level (0-30)
func (P Place) CellID(level int) s2.CellID {
	return s2.CellIDFromLatLng(P.LatLng()).Parent(level)
}

// Geohash - Returns the geohash of the place coordinates with the given number of characters
func (P Place) Geohash(precision int) string {
	return geohash.EncodeWithPrecision(P.Latitude, P.Longitude, precision)
}
