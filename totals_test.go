package workout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bzimmer/workout"
)

func sessions(t *testing.T) []workout.Session {
	t.Helper()
	rates := workout.DefaultRates()
	w, err := workout.NewWorkout(rates, "1/1/2021 3:30 PM", "1/1/2021 4:00 PM")
	require.NoError(t, err)
	r, err := workout.NewRunWorkout(rates, "1/1/2021 1:00 PM", "1/1/2021 2:00 PM", 150)
	require.NoError(t, err)
	s, err := workout.NewSwimWorkout(rates, "1/1/2021 2:00 PM", "1/1/2021 2:30 PM", 2.5)
	require.NoError(t, err)
	return []workout.Session{w, r, s}
}

func TestTotalCalories(t *testing.T) {
	assert.Equal(t, 500.0, workout.TotalCalories(sessions(t)))
	assert.Equal(t, 0.0, workout.TotalCalories(nil))
	assert.Equal(t, 0.0, workout.TotalCalories([]workout.Session{}))
}

func TestTotalElevation(t *testing.T) {
	// only the run contributes
	assert.Equal(t, 150.0, workout.TotalElevation(sessions(t)))
	assert.Equal(t, 0.0, workout.TotalElevation(nil))
}

func TestTotalElapsedTime(t *testing.T) {
	total, err := workout.TotalElapsedTime([]workout.TimeSpan{
		{Start: "1/1/2021 2:00 PM", End: "1/1/2021 2:30 PM"},
		{Start: "1/1/2021 3:00 PM", End: "1/1/2021 3:45 PM"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4500.0, total)

	total, err = workout.TotalElapsedTime(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestTotalElapsedTimeMalformed(t *testing.T) {
	_, err := workout.TotalElapsedTime([]workout.TimeSpan{
		{Start: "1/1/2021 2:00 PM", End: "1/1/2021 2:30 PM"},
		{Start: "bogus", End: "1/1/2021 3:45 PM"},
	})
	assert.Error(t, err)

	_, err = workout.TotalElapsedTime([]workout.TimeSpan{
		{Start: "1/1/2021 2:00 PM", End: "bogus"},
	})
	assert.Error(t, err)
}
