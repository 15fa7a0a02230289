package geo

import "math"

// EarthRadiusM is the mean Earth radius in meters
const EarthRadiusM = 6371000.0

const degToRad = math.Pi / 180

// Coordinates is a point in degrees
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Equal reports whether two points are exactly the same
func (c Coordinates) Equal(other Coordinates) bool {
	return c.Lat == other.Lat && c.Lng == other.Lng
}

// Distance returns the great-circle distance between a and b in meters
func Distance(a, b Coordinates) float64 {
	if a.Equal(b) {
		return 0
	}
	dLat := (b.Lat - a.Lat) * degToRad
	dLng := (b.Lng - a.Lng) * degToRad
	la1 := a.Lat * degToRad
	la2 := b.Lat * degToRad
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return EarthRadiusM * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
