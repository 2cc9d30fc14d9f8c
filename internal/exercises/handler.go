package exercises

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Newcoder006/fitn/internal/telemetry/tracing"
	"github.com/Newcoder006/fitn/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	ListAll(ctx context.Context) ([]Exercise, error)
}

var catalogCacheKey = []byte("exercise-catalog")

type Handler struct {
	repo  exercisesRepo
	cache *freecache.Cache
}

func NewHandler(repo exercisesRepo) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		repo:  repo,
		cache: freecache.NewCache(1 * megabyte),
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/api/exercises", handler.handleList).Methods("GET", "OPTIONS").Name("exercises-list")
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "exercisesHandler.list")
	defer span.End()

	// the catalog is immutable reference data, cache the marshaled response
	if catalogBytes, err := handler.cache.Get(catalogCacheKey); err == nil {
		log.Tracef("exercise catalog served from cache")
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, catalogBytes)
		return
	}

	exercises, err := handler.repo.ListAll(ctx)
	if err != nil {
		log.Errorf("failed to list exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	// no expiry, the catalog never changes at runtime
	if err := handler.cache.Set(catalogCacheKey, exercisesJson, 0); err != nil {
		log.Errorf("failed to cache exercise catalog: %s", err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exercisesJson)
}
