package workout

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

//go:embed etc
var Content embed.FS

// Session is the contract shared by all workout variants.
type Session interface {
	Kind() string
	Start() time.Time
	End() time.Time
	Duration() time.Duration
	Calories() float64
}

// Climber is implemented by variants that record elevation gain.
type Climber interface {
	Elevation() float64
}

// Point is a single GPS coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceFunc returns the total distance in miles along an ordered route.
type DistanceFunc func(points []Point) float64

// Rates holds the burn rates used when no explicit calorie value is supplied.
type Rates struct {
	// CaloriesPerHour applies to any workout without a more specific rate
	CaloriesPerHour float64 `json:"calories_per_hour"`
	// SwimCaloriesPerHour applies to swimming workouts
	SwimCaloriesPerHour float64 `json:"swim_calories_per_hour"`
	// CaloriesPerMile applies to running workouts with a GPS route
	CaloriesPerMile float64 `json:"calories_per_mile"`
}

// DefaultRates returns the built-in burn rates
func DefaultRates() *Rates {
	return &Rates{
		CaloriesPerHour:     200,
		SwimCaloriesPerHour: 400,
		CaloriesPerMile:     100,
	}
}

// LoadRates decodes rates from JSON; missing or zero fields fall back to the defaults
func LoadRates(r io.Reader) (*Rates, error) {
	var rates Rates
	if err := json.NewDecoder(r).Decode(&rates); err != nil {
		return nil, fmt.Errorf("decode rates: %w", err)
	}
	def := DefaultRates()
	if rates.CaloriesPerHour <= 0 {
		rates.CaloriesPerHour = def.CaloriesPerHour
	}
	if rates.SwimCaloriesPerHour <= 0 {
		rates.SwimCaloriesPerHour = def.SwimCaloriesPerHour
	}
	if rates.CaloriesPerMile <= 0 {
		rates.CaloriesPerMile = def.CaloriesPerMile
	}
	return &rates, nil
}
