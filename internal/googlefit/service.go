package googlefit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/Newcoder006/fitn/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/oauth2"
	"google.golang.org/api/fitness/v1"
)

//go:generate mockgen -source=$GOFILE -destination=googlefit_mocks_test.go -package=googlefit

var (
	ErrNotConfigured = errors.New("google fit integration not configured")
	ErrNotConnected  = errors.New("google fit not connected")
	ErrTokenRefresh  = errors.New("google fit token refresh failed")
)

const isoDate = "2006-01-02"

// syncCallTimeout bounds one full SyncToday run against the Google APIs.
const syncCallTimeout = 30 * time.Second

type fitClient interface {
	Configured() bool
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	Aggregate(ctx context.Context, accessToken, dataTypeName, dataSourceID string, start, end time.Time) (*fitness.Value, error)
}

type fitRepo interface {
	UpsertToken(ctx context.Context, token Token) error
	UpdateAccessToken(ctx context.Context, userID int, accessToken string, expiresAt time.Time) error
	GetToken(ctx context.Context, userID int) (*Token, error)
	DeleteToken(ctx context.Context, userID int) error
	UpsertDay(ctx context.Context, day DaySummary) error
	GetDay(ctx context.Context, userID int, date string) (*DaySummary, error)
}

// Status is what the connection status endpoint reports.
type Status struct {
	Connected bool        `json:"connected"`
	FitData   *DaySummary `json:"fitData"`
}

type Service struct {
	client fitClient
	repo   fitRepo

	// injectable clock for deterministic day boundaries in tests
	timeNow func() time.Time
}

func NewService(client fitClient, repo fitRepo) *Service {
	return &Service{
		client:  client,
		repo:    repo,
		timeNow: time.Now,
	}
}

// ConnectURL returns the provider consent URL for the user.
func (s *Service) ConnectURL(ctx context.Context, userID int) (_ string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "googlefit.connectURL")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if !s.client.Configured() {
		return "", ErrNotConfigured
	}
	return s.client.AuthCodeURL(strconv.Itoa(userID)), nil
}

// HandleCallback exchanges the authorization code and stores the tokens.
// State is the user id set when the consent URL was built.
func (s *Service) HandleCallback(ctx context.Context, code, state string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "googlefit.handleCallback")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !s.client.Configured() {
		return ErrNotConfigured
	}

	userID, err := strconv.Atoi(state)
	if err != nil {
		return fmt.Errorf("invalid callback state: %w", err)
	}
	span.SetAttributes(attribute.Int("user.id", userID))

	token, err := s.client.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("token exchange: %w", err)
	}

	return s.repo.UpsertToken(ctx, Token{
		UserID:       userID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	})
}

// ConnectionStatus reports whether the user is connected, with today's
// synced metrics when they are.
func (s *Service) ConnectionStatus(ctx context.Context, userID int) (_ *Status, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "googlefit.status")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if _, err := s.repo.GetToken(ctx, userID); err != nil {
		if errors.Is(err, ErrNotConnected) {
			return &Status{Connected: false}, nil
		}
		return nil, err
	}

	today := s.timeNow().Format(isoDate)
	fitData, err := s.repo.GetDay(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	return &Status{Connected: true, FitData: fitData}, nil
}

func (s *Service) Disconnect(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "googlefit.disconnect")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return s.repo.DeleteToken(ctx, userID)
}

// SyncToday pulls today's metrics from Google Fit and upserts the daily
// row. Each metric degrades to zero on its own, a partial day is better
// than none.
func (s *Service) SyncToday(ctx context.Context, userID int) (_ *DaySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "googlefit.syncToday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if !s.client.Configured() {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, syncCallTimeout)
	defer cancel()

	token, err := s.repo.GetToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.timeNow()
	accessToken := token.AccessToken

	// expiry boundary is inclusive, a token expiring right now is stale
	if !now.Before(token.ExpiresAt) {
		refreshed, err := s.client.Refresh(ctx, token.RefreshToken)
		if err != nil {
			log.Errorf("google fit token refresh for user %d: %s", userID, err)
			return nil, ErrTokenRefresh
		}
		accessToken = refreshed.AccessToken
		if err := s.repo.UpdateAccessToken(ctx, userID, refreshed.AccessToken, refreshed.Expiry); err != nil {
			return nil, fmt.Errorf("store refreshed token: %w", err)
		}
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	day := DaySummary{
		UserID:   userID,
		Date:     startOfDay.Format(isoDate),
		SyncedAt: now,
	}

	if value, err := s.client.Aggregate(ctx, accessToken, dataTypeSteps, dataSourceSteps, startOfDay, endOfDay); err != nil {
		log.Errorf("google fit steps aggregate for user %d: %s", userID, err)
	} else if value != nil {
		day.Steps = int(value.IntVal)
	}

	if value, err := s.client.Aggregate(ctx, accessToken, dataTypeDistance, dataSourceDistance, startOfDay, endOfDay); err != nil {
		log.Errorf("google fit distance aggregate for user %d: %s", userID, err)
	} else if value != nil {
		// meters to km, 2 decimals
		day.Distance = math.Round(value.FpVal/1000*100) / 100
	}

	if value, err := s.client.Aggregate(ctx, accessToken, dataTypeCalories, dataSourceCalories, startOfDay, endOfDay); err != nil {
		log.Errorf("google fit calories aggregate for user %d: %s", userID, err)
	} else if value != nil {
		day.Calories = int(math.Round(value.FpVal))
	}

	if value, err := s.client.Aggregate(ctx, accessToken, dataTypeActiveMin, dataSourceActiveMin, startOfDay, endOfDay); err != nil {
		log.Errorf("google fit active minutes aggregate for user %d: %s", userID, err)
	} else if value != nil {
		day.ActiveMinutes = int(value.IntVal)
	}

	if err := s.repo.UpsertDay(ctx, day); err != nil {
		return nil, fmt.Errorf("store day summary: %w", err)
	}

	span.SetAttributes(attribute.Int("steps", day.Steps))
	return &day, nil
}
