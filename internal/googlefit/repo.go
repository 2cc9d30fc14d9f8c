package googlefit

import (
	"context"
	"errors"
	"time"

	"github.com/Newcoder006/fitn/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Token is a user's Google OAuth credential pair.
type Token struct {
	UserID       int
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	UpdatedAt    time.Time
}

// DaySummary is one day of synced Google Fit metrics, keyed by (user, date).
type DaySummary struct {
	UserID        int       `json:"-"`
	Date          string    `json:"date"` // ISO date, e.g. 2026-09-01
	Steps         int       `json:"steps"`
	Distance      float64   `json:"distance"` // km
	Calories      int       `json:"calories"`
	ActiveMinutes int       `json:"activeMinutes"`
	SyncedAt      time.Time `json:"syncedAt"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UpsertToken(ctx context.Context, token Token) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.googlefit.upsertToken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", token.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO googlefit_token (user_id, access_token, refresh_token, expires_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at;`,
		token.UserID, token.AccessToken, token.RefreshToken, token.ExpiresAt, time.Now(),
	)
	return err
}

// UpdateAccessToken stores a refreshed access token, keeping the refresh token.
func (r *Repo) UpdateAccessToken(ctx context.Context, userID int, accessToken string, expiresAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.googlefit.updateAccessToken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	_, err = r.db.Exec(
		ctx,
		`UPDATE googlefit_token SET access_token = $1, expires_at = $2, updated_at = $3 WHERE user_id = $4;`,
		accessToken, expiresAt, time.Now(), userID,
	)
	return err
}

func (r *Repo) GetToken(ctx context.Context, userID int) (_ *Token, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.googlefit.getToken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var token Token
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, access_token, refresh_token, expires_at, updated_at
			FROM googlefit_token WHERE user_id = $1;`,
		userID,
	).Scan(&token.UserID, &token.AccessToken, &token.RefreshToken, &token.ExpiresAt, &token.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotConnected
		}
		return nil, err
	}
	return &token, nil
}

func (r *Repo) DeleteToken(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.googlefit.deleteToken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	_, err = r.db.Exec(ctx, `DELETE FROM googlefit_token WHERE user_id = $1;`, userID)
	return err
}

// UpsertDay is idempotent per (user, date), re-syncs overwrite the day.
func (r *Repo) UpsertDay(ctx context.Context, day DaySummary) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.googlefit.upsertDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", day.UserID))
	span.SetAttributes(attribute.String("date", day.Date))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO googlefit_day (user_id, date, steps, distance, calories, active_minutes, synced_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, date) DO UPDATE SET
			steps = EXCLUDED.steps,
			distance = EXCLUDED.distance,
			calories = EXCLUDED.calories,
			active_minutes = EXCLUDED.active_minutes,
			synced_at = EXCLUDED.synced_at;`,
		day.UserID, day.Date, day.Steps, day.Distance, day.Calories, day.ActiveMinutes, day.SyncedAt,
	)
	return err
}

func (r *Repo) GetDay(ctx context.Context, userID int, date string) (_ *DaySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.googlefit.getDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("date", date))

	var day DaySummary
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, date, steps, distance, calories, active_minutes, synced_at
			FROM googlefit_day WHERE user_id = $1 AND date = $2;`,
		userID, date,
	).Scan(&day.UserID, &day.Date, &day.Steps, &day.Distance, &day.Calories, &day.ActiveMinutes, &day.SyncedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

// ListDaysSince returns the user's daily rows on or after the given ISO
// date, newest first. ISO dates compare correctly as strings.
func (r *Repo) ListDaysSince(ctx context.Context, userID int, sinceDate string) (_ []DaySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.googlefit.listDaysSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("since", sinceDate))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, date, steps, distance, calories, active_minutes, synced_at
			FROM googlefit_day WHERE user_id = $1 AND date >= $2
		ORDER BY date DESC;`,
		userID, sinceDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []DaySummary
	for rows.Next() {
		var day DaySummary
		if err := rows.Scan(
			&day.UserID, &day.Date, &day.Steps, &day.Distance,
			&day.Calories, &day.ActiveMinutes, &day.SyncedAt,
		); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(days)))
	return days, nil
}
