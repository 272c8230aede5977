package domain

import "math"

const earthRadiusMeters = 6371000.0

// Workplace is an office location employees may check in from.
type Workplace struct {
	WorkplaceID  string  `json:"workplaceID"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radiusMeters"`
	AuditFields
	Lifecycle
}

// Contains reports whether c lies within the workplace radius.
func (w *Workplace) Contains(c Coordinates) bool {
	return DistanceMeters(Coordinates{Latitude: w.Latitude, Longitude: w.Longitude}, c) <= w.RadiusMeters
}

// DistanceMeters is the great-circle (haversine) distance between two points.
func DistanceMeters(a, b Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}
