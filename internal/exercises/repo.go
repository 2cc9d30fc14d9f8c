package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Newcoder006/fitn/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// SeedIfEmpty inserts the starter catalog when the exercise table has no rows.
func (r *Repo) SeedIfEmpty(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.seedIfEmpty")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exercise;`).Scan(&count); err != nil {
		return fmt.Errorf("count exercises: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, exercise := range SeedCatalog {
		instructionsJson, err := json.Marshal(exercise.Instructions)
		if err != nil {
			return fmt.Errorf("marshal instructions: %w", err)
		}
		if _, err := r.db.Exec(
			ctx,
			`INSERT INTO exercise
					(name, category, muscle, equipment, difficulty, instructions, calories_per_minute)
					VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			exercise.Name, exercise.Category, exercise.Muscle, exercise.Equipment,
			exercise.Difficulty, instructionsJson, exercise.CaloriesPerMinute,
		); err != nil {
			return fmt.Errorf("insert exercise [%s]: %w", exercise.Name, err)
		}
	}

	log.Printf("exercise catalog seeded with %d exercises", len(SeedCatalog))
	span.SetAttributes(attribute.Int("seeded", len(SeedCatalog)))
	return nil
}

func (r *Repo) ListAll(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, name, category, muscle, equipment, difficulty, instructions, calories_per_minute
		FROM exercise ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var (
			exercise         Exercise
			instructionsJson []byte
		)
		if err := rows.Scan(
			&exercise.ID, &exercise.Name, &exercise.Category, &exercise.Muscle,
			&exercise.Equipment, &exercise.Difficulty, &instructionsJson,
			&exercise.CaloriesPerMinute,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(instructionsJson, &exercise.Instructions); err != nil {
			return nil, fmt.Errorf("unmarshal instructions: %w", err)
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(exercises)))
	return exercises, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var (
		exercise         Exercise
		instructionsJson []byte
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT
			id, name, category, muscle, equipment, difficulty, instructions, calories_per_minute
		FROM exercise WHERE id = $1;`,
		id,
	).Scan(
		&exercise.ID, &exercise.Name, &exercise.Category, &exercise.Muscle,
		&exercise.Equipment, &exercise.Difficulty, &instructionsJson,
		&exercise.CaloriesPerMinute,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(instructionsJson, &exercise.Instructions); err != nil {
		return nil, fmt.Errorf("unmarshal instructions: %w", err)
	}

	return &exercise, nil
}
