package workouts

import (
	"math"

	"github.com/Newcoder006/fitn/internal/exercises"
)

const (
	DefaultSets     = 3
	DefaultReps     = 10
	DefaultRestTime = 60 // seconds

	secondsPerRep = 3
)

// entrySeconds is the active time of one entry across all its sets.
func entrySeconds(ex WorkoutExercise) int {
	if ex.Duration > 0 {
		return ex.Duration * ex.Sets
	}
	return ex.Sets * ex.Reps * secondsPerRep
}

// recalcTotals computes the workout duration in minutes and the calorie
// estimate over all entries. Rest is counted between sets only.
func recalcTotals(entries []WorkoutExercise) (totalDurationMin, estimatedCalories int) {
	var totalSeconds, calories float64
	for _, ex := range entries {
		active := float64(entrySeconds(ex))
		rest := float64(ex.RestTime * (ex.Sets - 1))
		totalSeconds += active + rest

		rate := ex.CaloriesPerMinute
		if rate == 0 {
			rate = exercises.DefaultCaloriesPerMinute
		}
		calories += (active / 60) * rate
	}
	return int(math.Round(totalSeconds / 60)), int(math.Round(calories))
}

// deriveDifficulty maps entry count to a difficulty label.
func deriveDifficulty(entryCount int) exercises.Difficulty {
	switch {
	case entryCount <= 3:
		return exercises.DifficultyBeginner
	case entryCount <= 6:
		return exercises.DifficultyIntermediate
	default:
		return exercises.DifficultyAdvanced
	}
}

// upsertEntry replaces the entry with the same exercise id, or appends.
func upsertEntry(entries []WorkoutExercise, entry WorkoutExercise) []WorkoutExercise {
	for i := range entries {
		if entries[i].ExerciseID == entry.ExerciseID {
			entries[i] = entry
			return entries
		}
	}
	return append(entries, entry)
}
