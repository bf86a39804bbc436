package workout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bzimmer/workout"
)

func TestRouteDistance(t *testing.T) {
	// Boston to Newton ~ 7-9 miles
	d := workout.RouteDistance([]workout.Point{
		{Lat: 42.3601, Lon: -71.0589},
		{Lat: 42.3370, Lon: -71.2092},
	})
	assert.Greater(t, d, 7.0)
	assert.Less(t, d, 9.0)
}

func TestRouteDistanceSegments(t *testing.T) {
	a := workout.Point{Lat: 42.3601, Lon: -71.0589}
	b := workout.Point{Lat: 42.3500, Lon: -71.1200}
	c := workout.Point{Lat: 42.3370, Lon: -71.2092}
	direct := workout.RouteDistance([]workout.Point{a, c})
	detour := workout.RouteDistance([]workout.Point{a, b, c})
	assert.GreaterOrEqual(t, detour, direct)
}

func TestRouteDistanceShortRoute(t *testing.T) {
	assert.Equal(t, 0.0, workout.RouteDistance(nil))
	assert.Equal(t, 0.0, workout.RouteDistance([]workout.Point{{Lat: 42.3601, Lon: -71.0589}}))
}
