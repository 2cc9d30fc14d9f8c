package workouts

import (
	"strings"

	"github.com/Newcoder006/fitn/internal/exercises"
)

const sampleIDPrefix = "sample-"

// SampleWorkouts are shown to users with an empty library. They are
// never persisted, a session referencing them keeps the synthetic id.
var SampleWorkouts = []Workout{
	{
		Name: "Full Body Beginner",
		Exercises: []WorkoutExercise{
			{Name: "Push-ups", Sets: 3, Reps: 10, RestTime: 60},
			{Name: "Squats", Sets: 3, Reps: 15, RestTime: 60},
			{Name: "Plank", Sets: 3, Reps: 1, Duration: 30, RestTime: 60},
			{Name: "Lunges", Sets: 3, Reps: 12, RestTime: 60},
		},
		TotalDuration:     25,
		EstimatedCalories: 200,
		Difficulty:        exercises.DifficultyBeginner,
	},
	{
		Name: "HIIT Cardio Blast",
		Exercises: []WorkoutExercise{
			{Name: "Burpees", Sets: 4, Reps: 8, RestTime: 45},
			{Name: "Mountain Climbers", Sets: 4, Reps: 20, RestTime: 45},
			{Name: "Jumping Jacks", Sets: 4, Reps: 30, RestTime: 45},
			{Name: "High Knees", Sets: 4, Reps: 20, RestTime: 45},
		},
		TotalDuration:     20,
		EstimatedCalories: 300,
		Difficulty:        exercises.DifficultyIntermediate,
	},
	{
		Name: "Strength Training",
		Exercises: []WorkoutExercise{
			{Name: "Deadlifts", Sets: 4, Reps: 8, RestTime: 90},
			{Name: "Push-ups", Sets: 4, Reps: 12, RestTime: 60},
			{Name: "Squats", Sets: 4, Reps: 15, RestTime: 60},
			{Name: "Plank", Sets: 3, Reps: 1, Duration: 45, RestTime: 60},
		},
		TotalDuration:     35,
		EstimatedCalories: 280,
		Difficulty:        exercises.DifficultyIntermediate,
	},
	{
		Name: "Flexibility & Recovery",
		Exercises: []WorkoutExercise{
			{Name: "Yoga Flow", Sets: 1, Reps: 1, Duration: 600, RestTime: 0},
			{Name: "Full Body Stretch", Category: "stretching", Sets: 1, Reps: 1, Duration: 300, RestTime: 0},
		},
		TotalDuration:     15,
		EstimatedCalories: 60,
		Difficulty:        exercises.DifficultyBeginner,
	},
}

// SampleWorkoutsFor returns copies of the templates with synthetic ids.
func SampleWorkoutsFor() []Workout {
	samples := make([]Workout, len(SampleWorkouts))
	for i, sample := range SampleWorkouts {
		sample.ID = SampleID(sample.Name)
		sample.IsSample = true
		samples[i] = sample
	}
	return samples
}

// SampleID builds the synthetic id from a template name,
// e.g. "HIIT Cardio Blast" becomes "sample-hiit-cardio-blast".
func SampleID(name string) string {
	return sampleIDPrefix + strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func IsSampleID(id string) bool {
	return strings.HasPrefix(id, sampleIDPrefix)
}
