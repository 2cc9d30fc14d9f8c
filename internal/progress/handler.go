package progress

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Newcoder006/fitn/internal/auth"
	"github.com/Newcoder006/fitn/internal/telemetry/tracing"
	"github.com/Newcoder006/fitn/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type progressReporter interface {
	Report(ctx context.Context, userID int, timeRange Range) (*Report, error)
}

type Handler struct {
	reporter progressReporter
}

func NewHandler(reporter progressReporter) *Handler {
	return &Handler{
		reporter: reporter,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/api/progress", handler.handleGet).Methods("GET", "OPTIONS").Name("progress")
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "progressHandler.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	timeRange := ParseRange(r.URL.Query().Get("range"))
	report, err := handler.reporter.Report(ctx, userID, timeRange)
	if err != nil {
		log.Errorf("progress report for user %d: %s", userID, err)
		http.Error(w, "failed to build progress report", http.StatusInternalServerError)
		return
	}

	reportJson, err := json.Marshal(report)
	if err != nil {
		log.Errorf("progress report, marshal response: %s", err)
		http.Error(w, "failed to build progress report", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, reportJson)
}
