package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// minutesPerKm is the fixed travel-time heuristic. There is no routing
// service behind this; the estimate is a linear function of distance.
const minutesPerKm = 2.5

// Distance returns the great-circle distance in kilometers between two
// coordinate pairs given in degrees. The function is total: invalid inputs
// (e.g. NaN) propagate into the result and must be guarded by callers.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// TravelTimeMinutes estimates travel time in minutes for a distance in km.
func TravelTimeMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm * minutesPerKm))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
