package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Newcoder006/fitn/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNoBuildingWorkout = errors.New("no workout being built")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetBuilding returns the user's workout under construction, if any.
func (r *Repo) GetBuilding(ctx context.Context, userID int) (_ *BuildingWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getBuilding")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var (
		workout       BuildingWorkout
		exercisesJson []byte
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT
			id, user_id, name, status, exercises, total_duration, est_calories, saved_workout_id, created_at, updated_at
		FROM user_workout WHERE user_id = $1 AND status = $2;`,
		userID, StatusBuilding,
	).Scan(
		&workout.ID, &workout.UserID, &workout.Name, &workout.Status, &exercisesJson,
		&workout.TotalDuration, &workout.EstimatedCalories, &workout.SavedWorkoutID,
		&workout.CreatedAt, &workout.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoBuildingWorkout
		}
		return nil, err
	}

	if err := json.Unmarshal(exercisesJson, &workout.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal workout exercises: %w", err)
	}

	return &workout, nil
}

// CreateBuilding starts an empty workout for the user. Callers first check
// GetBuilding; two concurrent adds can still both create a row, which is
// accepted here the same way the lookup-then-insert did originally.
func (r *Repo) CreateBuilding(ctx context.Context, userID int) (_ *BuildingWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createBuilding")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	now := time.Now()
	workout := BuildingWorkout{
		UserID:    userID,
		Name:      "My Custom Workout",
		Status:    StatusBuilding,
		Exercises: []WorkoutExercise{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO user_workout
				(user_id, name, status, exercises, total_duration, est_calories, created_at, updated_at)
				VALUES ($1, $2, $3, '[]', 0, 0, $4, $5)
			RETURNING id;`,
		workout.UserID, workout.Name, workout.Status, workout.CreatedAt, workout.UpdatedAt,
	).Scan(&workout.ID)
	if err != nil {
		return nil, fmt.Errorf("insert building workout: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return &workout, nil
}

// UpdateBuilding persists the entries and recomputed totals.
func (r *Repo) UpdateBuilding(ctx context.Context, workout *BuildingWorkout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateBuilding")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workout.ID))

	exercisesJson, err := json.Marshal(workout.Exercises)
	if err != nil {
		return fmt.Errorf("marshal workout exercises: %w", err)
	}

	workout.UpdatedAt = time.Now()
	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_workout SET exercises = $1, total_duration = $2, est_calories = $3, updated_at = $4 WHERE id = $5;`,
		exercisesJson, workout.TotalDuration, workout.EstimatedCalories, workout.UpdatedAt, workout.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoBuildingWorkout
	}
	return nil
}

// MarkSaved flips the building row to saved with a back-reference to the
// library workout. The row is kept, not deleted.
func (r *Repo) MarkSaved(ctx context.Context, buildingID, savedWorkoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.markSaved")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", buildingID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_workout SET status = $1, saved_workout_id = $2, updated_at = $3 WHERE id = $4;`,
		StatusSaved, savedWorkoutID, time.Now(), buildingID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoBuildingWorkout
	}
	return nil
}

func (r *Repo) DeleteBuilding(ctx context.Context, buildingID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteBuilding")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", buildingID))

	tag, err := r.db.Exec(ctx, `DELETE FROM user_workout WHERE id = $1;`, buildingID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoBuildingWorkout
	}
	return nil
}

// SaveWorkout inserts a finalized workout into the user's library and
// returns its id.
func (r *Repo) SaveWorkout(ctx context.Context, workout Workout) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.saveWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", workout.UserID))

	exercisesJson, err := json.Marshal(workout.Exercises)
	if err != nil {
		return 0, fmt.Errorf("marshal workout exercises: %w", err)
	}

	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	var id int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout
				(user_id, name, exercises, total_duration, est_calories, difficulty, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		workout.UserID, workout.Name, exercisesJson, workout.TotalDuration,
		workout.EstimatedCalories, workout.Difficulty, workout.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert workout: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", id))
	return id, nil
}

// ListWorkouts returns the user's saved workouts, newest first.
func (r *Repo) ListWorkouts(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, user_id, name, exercises, total_duration, est_calories, difficulty, created_at
		FROM workout WHERE user_id = $1 ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workoutsList []Workout
	for rows.Next() {
		var (
			workout       Workout
			id            int
			exercisesJson []byte
		)
		if err := rows.Scan(
			&id, &workout.UserID, &workout.Name, &exercisesJson,
			&workout.TotalDuration, &workout.EstimatedCalories, &workout.Difficulty,
			&workout.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(exercisesJson, &workout.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal workout exercises: %w", err)
		}
		workout.ID = strconv.Itoa(id)
		workoutsList = append(workoutsList, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(workoutsList)))
	return workoutsList, nil
}

// AddSession appends a completed workout session.
func (r *Repo) AddSession(ctx context.Context, session Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", session.UserID))
	span.SetAttributes(attribute.String("workout.id", session.WorkoutID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout_session
				(user_id, workout_id, duration, calories_burned, completed_at)
				VALUES ($1, $2, $3, $4, $5);`,
		session.UserID, session.WorkoutID, session.Duration, session.CaloriesBurned, session.CompletedAt,
	)
	return err
}

// ListSessionsSince returns the user's sessions completed at or after the
// given time, oldest first.
func (r *Repo) ListSessionsSince(ctx context.Context, userID int, since time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listSessionsSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, user_id, workout_id, duration, calories_burned, completed_at
		FROM workout_session WHERE user_id = $1 AND completed_at >= $2
		ORDER BY completed_at ASC;`,
		userID, since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var session Session
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.WorkoutID,
			&session.Duration, &session.CaloriesBurned, &session.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(sessions)))
	return sessions, nil
}
