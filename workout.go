package workout

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEndBeforeStart is returned when a workout ends before it starts
	ErrEndBeforeStart = errors.New("workout: end precedes start")
	// ErrNegativeElevation is returned for a run with negative elevation gain
	ErrNegativeElevation = errors.New("workout: negative elevation gain")
)

// Workout kinds
const (
	KindWorkout  = "Workout"
	KindRunning  = "Running"
	KindSwimming = "Swimming"
)

type options struct {
	calories *float64
	route    []Point
	distance DistanceFunc
}

// Option adjusts workout construction.
type Option func(*options)

// WithCalories supplies a manual calorie value, skipping the computed formula.
func WithCalories(calories float64) Option {
	return func(o *options) { o.calories = &calories }
}

// WithRoute supplies the GPS route of a run.
func WithRoute(points []Point) Option {
	return func(o *options) { o.route = points }
}

// WithDistance swaps the collaborator used to measure a route, in miles.
func WithDistance(distance DistanceFunc) Option {
	return func(o *options) { o.distance = distance }
}

func apply(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Workout is a single recorded exercise session. Calories are resolved once
// at construction, either from an explicit override or from the duration and
// the applicable rate; instances are immutable thereafter.
type Workout struct {
	kind     string
	icon     string
	start    time.Time
	end      time.Time
	calories float64
}

func newWorkout(start, end string, o *options, rate float64) (Workout, error) {
	s, err := ParseTime(start)
	if err != nil {
		return Workout{}, err
	}
	e, err := ParseTime(end)
	if err != nil {
		return Workout{}, err
	}
	if e.Before(s) {
		return Workout{}, ErrEndBeforeStart
	}
	w := Workout{kind: KindWorkout, icon: "😓", start: s, end: e}
	if o.calories != nil {
		w.calories = *o.calories
	} else {
		w.calories = e.Sub(s).Hours() * rate
	}
	return w, nil
}

// NewWorkout creates a generic workout from start and end timestamps
func NewWorkout(rates *Rates, start, end string, opts ...Option) (*Workout, error) {
	w, err := newWorkout(start, end, apply(opts), rates.CaloriesPerHour)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Kind returns the kind of the workout
func (w *Workout) Kind() string { return w.kind }

// Start returns the start time of the workout
func (w *Workout) Start() time.Time { return w.start }

// End returns the end time of the workout
func (w *Workout) End() time.Time { return w.end }

// Duration returns the elapsed time of the workout
func (w *Workout) Duration() time.Duration { return w.end.Sub(w.start) }

// Seconds returns the elapsed time of the workout in seconds
func (w *Workout) Seconds() float64 { return ElapsedSeconds(w.start, w.end) }

// Calories returns the total calories burned in the workout
func (w *Workout) Calories() float64 { return w.calories }

// Equal reports whether both sessions have the same kind, times, and calories
func (w *Workout) Equal(other Session) bool {
	return w.kind == other.Kind() &&
		w.start.Equal(other.Start()) &&
		w.end.Equal(other.End()) &&
		w.calories == other.Calories()
}

// String renders the workout as a small text card
func (w *Workout) String() string {
	const width = 16
	var b strings.Builder
	fmt.Fprintf(&b, "|%s|\n", strings.Repeat("-", width))
	fmt.Fprintf(&b, "| %-*s|\n", width-1, w.icon)
	fmt.Fprintf(&b, "| %-*s|\n", width-1, w.kind)
	fmt.Fprintf(&b, "| %-*s|\n", width-1, w.Duration().String())
	fmt.Fprintf(&b, "| %-*s|\n", width-1, fmt.Sprintf("%.1f Calories", w.calories))
	fmt.Fprintf(&b, "|%s|\n", strings.Repeat("_", width))
	return b.String()
}

// RunWorkout is a running workout with elevation gain and an optional GPS
// route. When a route with at least two points is supplied the calories are
// derived from the distance traveled rather than the duration.
type RunWorkout struct {
	Workout
	elevation float64
	route     []Point
}

// NewRunWorkout creates a running workout; elevation is the total elevation
// gain in feet
func NewRunWorkout(rates *Rates, start, end string, elevation float64, opts ...Option) (*RunWorkout, error) {
	if elevation < 0 {
		return nil, ErrNegativeElevation
	}
	o := apply(opts)
	w, err := newWorkout(start, end, o, rates.CaloriesPerHour)
	if err != nil {
		return nil, err
	}
	w.kind, w.icon = KindRunning, "🏃"
	// a route with fewer than two points carries no distance information
	// so the duration-based value from newWorkout stands
	if o.calories == nil && len(o.route) >= 2 {
		distance := o.distance
		if distance == nil {
			distance = RouteDistance
		}
		w.calories = distance(o.route) * rates.CaloriesPerMile
	}
	return &RunWorkout{Workout: w, elevation: elevation, route: o.route}, nil
}

// Elevation returns the elevation gain of the run in feet
func (r *RunWorkout) Elevation() float64 { return r.elevation }

// Route returns the GPS route of the run, or nil
func (r *RunWorkout) Route() []Point { return r.route }

// Equal reports whether both sessions are equal runs with the same elevation
func (r *RunWorkout) Equal(other Session) bool {
	c, ok := other.(Climber)
	return ok && r.Workout.Equal(other) && r.elevation == c.Elevation()
}

// SwimWorkout is a swimming workout. Pace is recorded for reporting only and
// does not participate in the calorie formula.
type SwimWorkout struct {
	Workout
	pace float64
}

// NewSwimWorkout creates a swimming workout; pace is in minutes per 100 yards
func NewSwimWorkout(rates *Rates, start, end string, pace float64, opts ...Option) (*SwimWorkout, error) {
	w, err := newWorkout(start, end, apply(opts), rates.SwimCaloriesPerHour)
	if err != nil {
		return nil, err
	}
	w.kind, w.icon = KindSwimming, "🏊"
	return &SwimWorkout{Workout: w, pace: pace}, nil
}

// Pace returns the pace of the swim in minutes per 100 yards
func (s *SwimWorkout) Pace() float64 { return s.pace }
