package workout

import (
	"encoding/json"
	"fmt"
	"io"
)

// Entry is one record in a workout log file
type Entry struct {
	Kind      string   `json:"kind"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Calories  *float64 `json:"calories,omitempty"`
	Elevation float64  `json:"elevation,omitempty"`
	Pace      float64  `json:"pace,omitempty"`
	Route     []Point  `json:"route,omitempty"`
}

// LoadLog decodes a JSON workout log
func LoadLog(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode workout log: %w", err)
	}
	return entries, nil
}

// Session constructs the workout variant described by the entry
func (e Entry) Session(rates *Rates) (Session, error) {
	var opts []Option
	if e.Calories != nil {
		opts = append(opts, WithCalories(*e.Calories))
	}
	switch e.Kind {
	case "", KindWorkout:
		return NewWorkout(rates, e.Start, e.End, opts...)
	case KindRunning:
		if len(e.Route) > 0 {
			opts = append(opts, WithRoute(e.Route))
		}
		return NewRunWorkout(rates, e.Start, e.End, e.Elevation, opts...)
	case KindSwimming:
		return NewSwimWorkout(rates, e.Start, e.End, e.Pace, opts...)
	default:
		return nil, fmt.Errorf("unknown workout kind %q", e.Kind)
	}
}

// Summary totals a collection of workouts
type Summary struct {
	Workouts  int     `json:"workouts"`
	Calories  float64 `json:"calories"`
	Elevation float64 `json:"elevation"`
	Seconds   float64 `json:"seconds"`
}

// NewSummary summarizes the sessions
func NewSummary(sessions []Session) *Summary {
	var seconds float64
	for _, s := range sessions {
		seconds += s.Duration().Seconds()
	}
	return &Summary{
		Workouts:  len(sessions),
		Calories:  TotalCalories(sessions),
		Elevation: TotalElevation(sessions),
		Seconds:   seconds,
	}
}

// Summarize builds every entry and summarizes the collection
func Summarize(rates *Rates, entries []Entry) (*Summary, error) {
	sessions := make([]Session, 0, len(entries))
	for i, e := range entries {
		s, err := e.Session(rates)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		sessions = append(sessions, s)
	}
	return NewSummary(sessions), nil
}
