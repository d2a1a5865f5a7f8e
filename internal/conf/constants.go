package conf

// DefaultCapacity - Number of buckets a hash table starts with when no capacity is given
const DefaultCapacity int64 = 101

// LoadFactorLimit - A hash table doubles its capacity before an insert when size / capacity is above this limit
const LoadFactorLimit float64 = 0.75

// Fixed width layout of a line in a places file, all offsets are 0 based byte positions

// CodeOffset - Line offset to the place code - 8 bytes
const CodeOffset int = 0

// CodeLength - Length of the place code
const CodeLength int = 8

// StateOffset - Line offset to the state code - 2 bytes
const StateOffset int = 8

// StateLength - Length of the state code
const StateLength int = 2

// NameOffset - Line offset to the place name - 50 bytes
const NameOffset int = 10

// NameLength - Length of the place name
const NameLength int = 50

// PopulationOffset - Line offset to the population - 8 bytes
const PopulationOffset int = 60

// PopulationLength - Length of the population
const PopulationLength int = 8

// AreaOffset - Line offset to the area - 10 bytes
const AreaOffset int = 68

// AreaLength - Length of the area
const AreaLength int = 10

// LatitudeOffset - Line offset to the latitude - 10 bytes
const LatitudeOffset int = 78

// LatitudeLength - Length of the latitude
const LatitudeLength int = 10

// LongitudeOffset - Line offset to the longitude - 10 bytes
const LongitudeOffset int = 88

// LongitudeLength - Length of the longitude
const LongitudeLength int = 10

// RoadIntersectionOffset - Line offset to the nearest road intersection code - 8 bytes
const RoadIntersectionOffset int = 98

// RoadIntersectionLength - Length of the road intersection code
const RoadIntersectionLength int = 8

// DistanceOffset - Line offset to the distance to the road intersection - 8 bytes
const DistanceOffset int = 106

// DistanceLength - Length of the distance
const DistanceLength int = 8

// StateCodeLength - Length of the code leading each line in a states file
const StateCodeLength int = 2

// MinStateLineLength - Shortest states file line carrying both a code and a name, e.g. "AK A"
const MinStateLineLength int = 4

// UnknownState - Full name rendered for a state code missing from the states table
const UnknownState string = "Unknown State"
