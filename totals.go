package workout

// TimeSpan is a raw (start, end) timestamp pair.
type TimeSpan struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TotalCalories returns the sum of calories over all sessions
func TotalCalories(sessions []Session) float64 {
	var total float64
	for _, s := range sessions {
		total += s.Calories()
	}
	return total
}

// TotalElevation returns the sum of elevation gain over the sessions that
// record it; sessions without elevation contribute nothing
func TotalElevation(sessions []Session) float64 {
	var total float64
	for _, s := range sessions {
		if c, ok := s.(Climber); ok {
			total += c.Elevation()
		}
	}
	return total
}

// TotalElapsedTime parses each pair and returns the summed elapsed seconds;
// a malformed pair fails the whole call
func TotalElapsedTime(spans []TimeSpan) (float64, error) {
	var total float64
	for _, span := range spans {
		start, err := ParseTime(span.Start)
		if err != nil {
			return 0, err
		}
		end, err := ParseTime(span.End)
		if err != nil {
			return 0, err
		}
		total += ElapsedSeconds(start, end)
	}
	return total, nil
}
