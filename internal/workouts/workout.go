package workouts

import (
	"time"

	"github.com/Newcoder006/fitn/internal/exercises"
)

type Status string

const (
	StatusBuilding Status = "building"
	StatusSaved    Status = "saved"
)

// WorkoutExercise is one entry of a workout, with the exercise details
// denormalized so saved workouts survive catalog changes.
type WorkoutExercise struct {
	ExerciseID        int     `json:"exerciseId,omitempty"`
	Name              string  `json:"name"`
	Category          string  `json:"category,omitempty"`
	Muscle            string  `json:"muscle,omitempty"`
	Sets              int     `json:"sets"`
	Reps              int     `json:"reps"`
	Duration          int     `json:"duration,omitempty"` // seconds per set, overrides the reps estimate
	RestTime          int     `json:"restTime"`
	CaloriesPerMinute float64 `json:"caloriesPerMinute,omitempty"`
}

// BuildingWorkout is the single per-user workout under construction.
type BuildingWorkout struct {
	ID                int               `json:"id"`
	UserID            int               `json:"-"`
	Name              string            `json:"name"`
	Status            Status            `json:"status"`
	Exercises         []WorkoutExercise `json:"exercises"`
	TotalDuration     int               `json:"totalDuration"` // minutes
	EstimatedCalories int               `json:"estimatedCalories"`
	SavedWorkoutID    *int              `json:"savedWorkoutId,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// Workout is a finalized workout in the user's library. IDs are strings
// so the fixed sample templates ("sample-<slug>") and persisted rows
// share one shape on the wire.
type Workout struct {
	ID                string               `json:"id"`
	UserID            int                  `json:"-"`
	Name              string               `json:"name"`
	Exercises         []WorkoutExercise    `json:"exercises"`
	TotalDuration     int                  `json:"totalDuration"`
	EstimatedCalories int                  `json:"estimatedCalories"`
	Difficulty        exercises.Difficulty `json:"difficulty"`
	IsSample          bool                 `json:"isSample,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
}

// Session is one completed workout, append-only.
type Session struct {
	ID             int       `json:"id"`
	UserID         int       `json:"-"`
	WorkoutID      string    `json:"workoutId"`
	Duration       int       `json:"duration"` // seconds
	CaloriesBurned int       `json:"caloriesBurned"`
	CompletedAt    time.Time `json:"completedAt"`
}
