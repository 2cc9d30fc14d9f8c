package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Newcoder006/fitn/internal/auth"
	"github.com/Newcoder006/fitn/internal/exercises"
	"github.com/Newcoder006/fitn/internal/telemetry/metrics"
	"github.com/Newcoder006/fitn/internal/telemetry/tracing"
	"github.com/Newcoder006/fitn/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	GetBuilding(ctx context.Context, userID int) (*BuildingWorkout, error)
	CreateBuilding(ctx context.Context, userID int) (*BuildingWorkout, error)
	UpdateBuilding(ctx context.Context, workout *BuildingWorkout) error
	MarkSaved(ctx context.Context, buildingID, savedWorkoutID int) error
	DeleteBuilding(ctx context.Context, buildingID int) error
	SaveWorkout(ctx context.Context, workout Workout) (int, error)
	ListWorkouts(ctx context.Context, userID int) ([]Workout, error)
	AddSession(ctx context.Context, session Session) error
}

type exerciseGetter interface {
	Get(ctx context.Context, id int) (*exercises.Exercise, error)
}

type AddToWorkoutRequest struct {
	ExerciseID int  `json:"exerciseId"`
	Sets       *int `json:"sets"`
	Reps       *int `json:"reps"`
	Duration   int  `json:"duration"`
	RestTime   *int `json:"restTime"`
}

type AddToWorkoutResponse struct {
	Message       string `json:"message"`
	WorkoutID     int    `json:"workoutId"`
	ExerciseCount int    `json:"exerciseCount"`
	Success       bool   `json:"success"`
}

type CurrentWorkoutResponse struct {
	Workout           *BuildingWorkout `json:"workout"`
	HasCurrentWorkout bool             `json:"hasCurrentWorkout"`
	ExerciseCount     int              `json:"exerciseCount"`
}

type SaveWorkoutResponse struct {
	Message   string `json:"message"`
	WorkoutID string `json:"workoutId"`
}

type Handler struct {
	repo           workoutsRepo
	exercisesRepo  exerciseGetter
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, exercisesRepo exerciseGetter, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		exercisesRepo:  exercisesRepo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/api/workouts", handler.handleList).Methods("GET", "OPTIONS").Name("workouts-list")
	mainRouter.HandleFunc("/api/workouts/save", handler.handleSaveDirect).Methods("POST", "OPTIONS").Name("workouts-save")
	mainRouter.HandleFunc("/api/workouts/current", handler.handleGetCurrent).Methods("GET", "OPTIONS").Name("workouts-current-get")
	mainRouter.HandleFunc("/api/workouts/current", handler.handleCurrentAction).Methods("POST", "OPTIONS").Name("workouts-current-action")
	mainRouter.HandleFunc("/api/workouts/complete", handler.handleComplete).Methods("POST", "OPTIONS").Name("workouts-complete")
	mainRouter.HandleFunc("/api/exercises/add-to-workout", handler.handleAddToWorkout).Methods("POST", "OPTIONS").Name("workouts-add-exercise")
}

func (handler *Handler) handleAddToWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.addToWorkout")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var addReq AddToWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Tracef("add to workout, unmarshal json params: %s", err)
		http.Error(w, "add to workout failed", http.StatusBadRequest)
		return
	}

	if addReq.ExerciseID == 0 {
		http.Error(w, "error, exercise id required", http.StatusBadRequest)
		return
	}

	sets := DefaultSets
	if addReq.Sets != nil {
		sets = *addReq.Sets
	}
	reps := DefaultReps
	if addReq.Reps != nil {
		reps = *addReq.Reps
	}
	restTime := DefaultRestTime
	if addReq.RestTime != nil {
		restTime = *addReq.RestTime
	}
	if sets < 1 || reps < 1 || addReq.Duration < 0 || restTime < 0 {
		http.Error(w, "error, invalid exercise params", http.StatusBadRequest)
		return
	}

	exercise, err := handler.exercisesRepo.Get(ctx, addReq.ExerciseID)
	if err != nil {
		if errors.Is(err, exercises.ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("add to workout, get exercise %d: %s", addReq.ExerciseID, err)
		http.Error(w, "add to workout failed", http.StatusInternalServerError)
		return
	}

	workout, err := handler.repo.GetBuilding(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNoBuildingWorkout) {
			log.Errorf("add to workout, get building workout: %s", err)
			http.Error(w, "add to workout failed", http.StatusInternalServerError)
			return
		}
		if workout, err = handler.repo.CreateBuilding(ctx, userID); err != nil {
			log.Errorf("add to workout, create building workout: %s", err)
			http.Error(w, "add to workout failed", http.StatusInternalServerError)
			return
		}
	}

	rate := exercise.CaloriesPerMinute
	if rate == 0 {
		rate = exercises.DefaultCaloriesPerMinute
	}
	workout.Exercises = upsertEntry(workout.Exercises, WorkoutExercise{
		ExerciseID:        exercise.ID,
		Name:              exercise.Name,
		Category:          exercise.Category,
		Muscle:            exercise.Muscle,
		Sets:              sets,
		Reps:              reps,
		Duration:          addReq.Duration,
		RestTime:          restTime,
		CaloriesPerMinute: rate,
	})
	workout.TotalDuration, workout.EstimatedCalories = recalcTotals(workout.Exercises)

	if err := handler.repo.UpdateBuilding(ctx, workout); err != nil {
		log.Errorf("add to workout, update building workout %d: %s", workout.ID, err)
		http.Error(w, "add to workout failed", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	respJson, err := json.Marshal(AddToWorkoutResponse{
		Message:       "Exercise added to workout successfully",
		WorkoutID:     workout.ID,
		ExerciseCount: len(workout.Exercises),
		Success:       true,
	})
	if err != nil {
		log.Errorf("add to workout, marshal response: %s", err)
		http.Error(w, "add to workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutsList, err := handler.repo.ListWorkouts(ctx, userID)
	if err != nil {
		log.Errorf("list workouts for user %d: %s", userID, err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	// empty library shows the starter templates, stored only when started
	if len(workoutsList) == 0 {
		workoutsList = SampleWorkoutsFor()
	}

	workoutsJson, err := json.Marshal(workoutsList)
	if err != nil {
		log.Errorf("list workouts, marshal response: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutsJson)
}

func (handler *Handler) handleGetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.getCurrent")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workout, err := handler.repo.GetBuilding(ctx, userID)
	if err != nil && !errors.Is(err, ErrNoBuildingWorkout) {
		log.Errorf("get current workout for user %d: %s", userID, err)
		http.Error(w, "get current workout failed", http.StatusInternalServerError)
		return
	}

	resp := CurrentWorkoutResponse{Workout: workout}
	if workout != nil {
		resp.HasCurrentWorkout = true
		resp.ExerciseCount = len(workout.Exercises)
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("get current workout, marshal response: %s", err)
		http.Error(w, "get current workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) handleCurrentAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.currentAction")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	type currentActionRequest struct {
		Action      string `json:"action"`
		WorkoutName string `json:"workoutName"`
	}
	var actionReq currentActionRequest
	if err := json.NewDecoder(r.Body).Decode(&actionReq); err != nil {
		log.Tracef("current workout action, unmarshal json params: %s", err)
		http.Error(w, "invalid params", http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.String("action", actionReq.Action))

	workout, err := handler.repo.GetBuilding(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoBuildingWorkout) {
			http.Error(w, "no current workout found", http.StatusNotFound)
			return
		}
		log.Errorf("current workout action, get building workout: %s", err)
		http.Error(w, "current workout action failed", http.StatusInternalServerError)
		return
	}

	switch actionReq.Action {
	case "save":
		name := actionReq.WorkoutName
		if name == "" {
			name = workout.Name
		}
		savedID, err := handler.repo.SaveWorkout(ctx, Workout{
			UserID:            userID,
			Name:              name,
			Exercises:         workout.Exercises,
			TotalDuration:     workout.TotalDuration,
			EstimatedCalories: workout.EstimatedCalories,
			Difficulty:        deriveDifficulty(len(workout.Exercises)),
		})
		if err != nil {
			log.Errorf("save current workout %d: %s", workout.ID, err)
			http.Error(w, "save workout failed", http.StatusInternalServerError)
			return
		}
		if err := handler.repo.MarkSaved(ctx, workout.ID, savedID); err != nil {
			log.Errorf("mark building workout %d saved: %s", workout.ID, err)
			http.Error(w, "save workout failed", http.StatusInternalServerError)
			return
		}
		pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"message": "Workout saved successfully", "workoutId": "%d"}`, savedID))
	case "clear":
		if err := handler.repo.DeleteBuilding(ctx, workout.ID); err != nil {
			log.Errorf("clear building workout %d: %s", workout.ID, err)
			http.Error(w, "clear workout failed", http.StatusInternalServerError)
			return
		}
		pkg.WriteJSONResponseOK(w, `{"message": "Workout cleared successfully"}`)
	default:
		http.Error(w, "invalid action", http.StatusBadRequest)
	}
}

func (handler *Handler) handleSaveDirect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.saveDirect")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("save workout, unmarshal json params: %s", err)
		http.Error(w, "invalid workout data", http.StatusBadRequest)
		return
	}

	if workout.Name == "" || workout.Exercises == nil {
		http.Error(w, "invalid workout data", http.StatusBadRequest)
		return
	}

	workout.UserID = userID
	workout.IsSample = false
	if workout.Difficulty == "" {
		workout.Difficulty = exercises.DifficultyBeginner
	}

	savedID, err := handler.repo.SaveWorkout(ctx, workout)
	if err != nil {
		log.Errorf("save workout for user %d: %s", userID, err)
		http.Error(w, "save workout failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(SaveWorkoutResponse{
		Message:   "Workout saved successfully",
		WorkoutID: strconv.Itoa(savedID),
	})
	if err != nil {
		log.Errorf("save workout, marshal response: %s", err)
		http.Error(w, "save workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.complete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	type completeRequest struct {
		WorkoutID      string `json:"workoutId"`
		Duration       int    `json:"duration"`
		CaloriesBurned int    `json:"caloriesBurned"`
	}
	var completeReq completeRequest
	if err := json.NewDecoder(r.Body).Decode(&completeReq); err != nil {
		log.Tracef("complete workout, unmarshal json params: %s", err)
		http.Error(w, "invalid params", http.StatusBadRequest)
		return
	}

	if completeReq.WorkoutID == "" {
		http.Error(w, "error, workout id required", http.StatusBadRequest)
		return
	}

	if err := handler.repo.AddSession(ctx, Session{
		UserID:         userID,
		WorkoutID:      completeReq.WorkoutID,
		Duration:       completeReq.Duration,
		CaloriesBurned: completeReq.CaloriesBurned,
		CompletedAt:    time.Now(),
	}); err != nil {
		log.Errorf("complete workout [%s] for user %d: %s", completeReq.WorkoutID, userID, err)
		http.Error(w, "complete workout failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutsCompleted.Inc()
	span.SetAttributes(attribute.String("workout.id", completeReq.WorkoutID))
	pkg.WriteJSONResponseOK(w, `{"message": "Workout completed successfully", "success": true}`)
}
