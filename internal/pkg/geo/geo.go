package geo

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Office is a fixed location with an allowed check-in radius around it.
type Office struct {
	Coordinate
	RadiusMeters float64
}

// Classification is the result of testing a position against an office geofence.
type Classification struct {
	DistanceMeters float64
	Inside         bool
}

// Distance returns the great-circle distance between two coordinates in meters,
// computed with the haversine formula on a spherical Earth.
func Distance(a, b Coordinate) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	lat1Rad := a.Latitude * (math.Pi / 180.0)
	lat2Rad := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Classify measures how far pos is from the office and whether it falls inside
// the office radius. Pure computation; callers supply a fresh fix.
func Classify(pos Coordinate, office Office) Classification {
	d := Distance(pos, office.Coordinate)
	return Classification{
		DistanceMeters: d,
		Inside:         d <= office.RadiusMeters,
	}
}
