package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Newcoder006/fitn/internal/telemetry/tracing"
	"github.com/Newcoder006/fitn/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserExists   = errors.New("user with that email already exists")
	ErrUserNotFound = errors.New("user not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	var id int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO fit_user
				(email, password_hash, name, age, gender, height, weight, activity_level, fitness_goal, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id;`,
		user.Email, user.PasswordHash, user.Name, user.Age, user.Gender,
		user.Height, user.Weight, user.ActivityLevel, nullableString(user.FitnessGoal),
		user.CreatedAt, user.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(attribute.Int("user.id", id))

	user.ID = id
	return &user, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getOne(
		ctx,
		`SELECT
			id, email, password_hash, name, age, gender, height, weight, activity_level, fitness_goal, created_at, updated_at
		FROM fit_user WHERE email = $1;`,
		email,
	)
}

func (r *Repo) GetByID(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	return r.getOne(
		ctx,
		`SELECT
			id, email, password_hash, name, age, gender, height, weight, activity_level, fitness_goal, created_at, updated_at
		FROM fit_user WHERE id = $1;`,
		id,
	)
}

func (r *Repo) Update(ctx context.Context, user *User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", user.ID))

	user.UpdatedAt = time.Now()
	tag, err := r.db.Exec(
		ctx,
		`UPDATE fit_user SET
			name = $1, age = $2, gender = $3, height = $4, weight = $5,
			activity_level = $6, fitness_goal = $7, updated_at = $8
		WHERE id = $9;`,
		user.Name, user.Age, user.Gender, user.Height, user.Weight,
		user.ActivityLevel, nullableString(user.FitnessGoal), user.UpdatedAt, user.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *Repo) getOne(ctx context.Context, query string, arg any) (*User, error) {
	var (
		user        User
		fitnessGoal *string
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Age,
		&user.Gender, &user.Height, &user.Weight, &user.ActivityLevel,
		&fitnessGoal, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if fitnessGoal != nil {
		user.FitnessGoal = *fitnessGoal
	}

	return &user, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
