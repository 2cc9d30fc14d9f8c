package progress

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Newcoder006/fitn/internal/googlefit"
	"github.com/Newcoder006/fitn/internal/telemetry/tracing"
	"github.com/Newcoder006/fitn/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=progress_mocks_test.go -package=progress

const isoDate = "2006-01-02"

// Range is the lookback window of a progress report.
type Range string

const (
	RangeOneMonth    Range = "1month"
	RangeThreeMonths Range = "3months"
	RangeSixMonths   Range = "6months"
	RangeOneYear     Range = "1year"
)

// ParseRange falls back to three months on anything it does not know.
func ParseRange(raw string) Range {
	switch Range(raw) {
	case RangeOneMonth, RangeThreeMonths, RangeSixMonths, RangeOneYear:
		return Range(raw)
	default:
		return RangeThreeMonths
	}
}

// startFrom subtracts the range from now, calendar style, so month
// lengths and leap years roll over the way AddDate does.
func (r Range) startFrom(now time.Time) time.Time {
	switch r {
	case RangeOneMonth:
		return now.AddDate(0, -1, 0)
	case RangeSixMonths:
		return now.AddDate(0, -6, 0)
	case RangeOneYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -3, 0)
	}
}

type sessionsRepo interface {
	ListSessionsSince(ctx context.Context, userID int, since time.Time) ([]workouts.Session, error)
}

type fitDaysRepo interface {
	ListDaysSince(ctx context.Context, userID int, sinceDate string) ([]googlefit.DaySummary, error)
}

type WeeklyBucket struct {
	Week     string `json:"week"`
	Workouts int    `json:"workouts"`
}

type MonthlyBucket struct {
	Month    string `json:"month"`
	Calories int    `json:"calories"`
}

type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type Stats struct {
	TotalWorkouts          int     `json:"totalWorkouts"`
	TotalCalories          int     `json:"totalCalories"`
	TotalMinutes           int     `json:"totalMinutes"`
	AverageWorkoutsPerWeek int     `json:"averageWorkoutsPerWeek"`
	TotalSteps             int     `json:"totalSteps"`
	TotalDistance          float64 `json:"totalDistance"`
	GoogleFitDays          int     `json:"googleFitDays"`
}

type FitSummary struct {
	TotalSteps        int     `json:"totalSteps"`
	TotalDistance     float64 `json:"totalDistance"`
	GoogleFitCalories int     `json:"googleFitCalories"`
	ActiveDays        int     `json:"activeDays"`
}

// Report is the full progress payload for one user and range.
type Report struct {
	WeeklyWorkouts   []WeeklyBucket  `json:"weeklyWorkouts"`
	MonthlyCalories  []MonthlyBucket `json:"monthlyCalories"`
	WeightProgress   []WeightPoint   `json:"weightProgress"`
	WorkoutStats     Stats           `json:"workoutStats"`
	GoogleFitSummary FitSummary      `json:"googleFitSummary"`
}

// Analyzer builds progress reports out of recorded workout sessions and
// synced Google Fit days.
type Analyzer struct {
	sessions sessionsRepo
	fitDays  fitDaysRepo

	// injectable clock for deterministic bucketing in tests
	timeNow func() time.Time
}

func NewAnalyzer(sessions sessionsRepo, fitDays fitDaysRepo) *Analyzer {
	return &Analyzer{
		sessions: sessions,
		fitDays:  fitDays,
		timeNow:  time.Now,
	}
}

func (a *Analyzer) Report(ctx context.Context, userID int, timeRange Range) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("range", string(timeRange)))

	start := timeRange.startFrom(a.timeNow())

	sessions, err := a.sessions.ListSessionsSince(ctx, userID, start)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	fitDays, err := a.fitDays.ListDaysSince(ctx, userID, start.Format(isoDate))
	if err != nil {
		return nil, fmt.Errorf("list fit days: %w", err)
	}

	weekly := weeklyBuckets(sessions)
	monthly := monthlyBuckets(sessions)

	var fitSteps, fitCalories int
	var fitDistance float64
	for _, day := range fitDays {
		fitSteps += day.Steps
		fitDistance += day.Distance
		fitCalories += day.Calories
	}
	fitDistance = math.Round(fitDistance*100) / 100

	var sessionCalories, sessionMinutes int
	for _, session := range sessions {
		sessionCalories += session.CaloriesBurned
		sessionMinutes += session.Duration
	}

	averagePerWeek := 0
	if len(sessions) > 0 {
		averagePerWeek = int(math.Round(float64(len(sessions)) / math.Max(1, float64(len(weekly)))))
	}

	return &Report{
		WeeklyWorkouts:  weekly,
		MonthlyCalories: monthly,
		// weight logging is not wired yet, the chart shows its empty state
		WeightProgress: []WeightPoint{{Date: "No data", Weight: 0}},
		WorkoutStats: Stats{
			TotalWorkouts:          len(sessions),
			TotalCalories:          sessionCalories + fitCalories,
			TotalMinutes:           sessionMinutes,
			AverageWorkoutsPerWeek: averagePerWeek,
			TotalSteps:             fitSteps,
			TotalDistance:          fitDistance,
			GoogleFitDays:          len(fitDays),
		},
		GoogleFitSummary: FitSummary{
			TotalSteps:        fitSteps,
			TotalDistance:     fitDistance,
			GoogleFitCalories: fitCalories,
			ActiveDays:        len(fitDays),
		},
	}, nil
}

// weeklyBuckets counts sessions per week, weeks keyed by their Sunday
// start date and labeled in first-seen order. Sessions arrive sorted by
// completion time so the labels read chronologically.
func weeklyBuckets(sessions []workouts.Session) []WeeklyBucket {
	var weekOrder []string
	weekCounts := make(map[string]int)

	for _, session := range sessions {
		day := session.CompletedAt
		weekStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).
			AddDate(0, 0, -int(day.Weekday()))
		key := weekStart.Format(isoDate)
		if _, seen := weekCounts[key]; !seen {
			weekOrder = append(weekOrder, key)
		}
		weekCounts[key]++
	}

	buckets := make([]WeeklyBucket, 0, len(weekOrder))
	for i, key := range weekOrder {
		buckets = append(buckets, WeeklyBucket{
			Week:     fmt.Sprintf("Week %d", i+1),
			Workouts: weekCounts[key],
		})
	}
	if len(buckets) == 0 {
		buckets = append(buckets, WeeklyBucket{Week: "No data", Workouts: 0})
	}
	return buckets
}

// monthlyBuckets sums burned calories per short month name, again in
// first-seen order.
func monthlyBuckets(sessions []workouts.Session) []MonthlyBucket {
	var monthOrder []string
	monthCalories := make(map[string]int)

	for _, session := range sessions {
		month := session.CompletedAt.Month().String()[:3]
		if _, seen := monthCalories[month]; !seen {
			monthOrder = append(monthOrder, month)
		}
		monthCalories[month] += session.CaloriesBurned
	}

	buckets := make([]MonthlyBucket, 0, len(monthOrder))
	for _, month := range monthOrder {
		buckets = append(buckets, MonthlyBucket{
			Month:    month,
			Calories: monthCalories[month],
		})
	}
	if len(buckets) == 0 {
		buckets = append(buckets, MonthlyBucket{Month: "No data", Calories: 0})
	}
	return buckets
}
