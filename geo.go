package workout

import (
	"math"

	"github.com/martinlindhe/unit"
)

const earthRadiusKm = 6371.0

func haversineKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dlat := (b.Lat - a.Lat) * math.Pi / 180
	dlon := (b.Lon - a.Lon) * math.Pi / 180
	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// RouteDistance returns the total great-circle distance in miles along an
// ordered route. A route with fewer than two points has zero distance.
func RouteDistance(points []Point) float64 {
	var km float64
	for i := 1; i < len(points); i++ {
		km += haversineKm(points[i-1], points[i])
	}
	return (unit.Length(km) * unit.Kilometer).Miles()
}
