package googlefit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Newcoder006/fitn/internal/auth"
	"github.com/Newcoder006/fitn/internal/telemetry/metrics"
	"github.com/Newcoder006/fitn/internal/telemetry/tracing"
	"github.com/Newcoder006/fitn/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=googlefit_test

type syncService interface {
	ConnectURL(ctx context.Context, userID int) (string, error)
	HandleCallback(ctx context.Context, code, state string) error
	ConnectionStatus(ctx context.Context, userID int) (*Status, error)
	Disconnect(ctx context.Context, userID int) error
	SyncToday(ctx context.Context, userID int) (*DaySummary, error)
}

type SyncResponse struct {
	Message string      `json:"message"`
	FitData *DaySummary `json:"fitData"`
}

type Handler struct {
	service        syncService
	progressURL    string // frontend page the oauth callback redirects back to
	metricsManager *metrics.Manager
}

func NewHandler(service syncService, progressURL string, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		progressURL:    progressURL,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/api/googlefit/auth", handler.handleAuth).Methods("POST", "OPTIONS").Name("googlefit-auth")
	mainRouter.HandleFunc("/api/googlefit/callback", handler.handleCallback).Methods("GET").Name("googlefit-callback")
	mainRouter.HandleFunc("/api/googlefit/status", handler.handleStatus).Methods("GET", "OPTIONS").Name("googlefit-status")
	mainRouter.HandleFunc("/api/googlefit/sync", handler.handleSync).Methods("POST", "OPTIONS").Name("googlefit-sync")
	mainRouter.HandleFunc("/api/googlefit/disconnect", handler.handleDisconnect).Methods("POST", "OPTIONS").Name("googlefit-disconnect")
}

func (handler *Handler) handleAuth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "googlefitHandler.auth")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	authURL, err := handler.service.ConnectURL(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			http.Error(w, "google fit integration is not configured", http.StatusServiceUnavailable)
			return
		}
		log.Errorf("google fit auth for user %d: %s", userID, err)
		http.Error(w, "google fit auth failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(map[string]string{"authUrl": authURL})
	if err != nil {
		log.Errorf("google fit auth, marshal response: %s", err)
		http.Error(w, "google fit auth failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

// handleCallback is hit by the provider redirect, the outcome travels
// back to the frontend as a query parameter.
func (handler *Handler) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "googlefitHandler.callback")
	defer span.End()

	query := r.URL.Query()
	if oauthErr := query.Get("error"); oauthErr != "" {
		log.Warnf("google fit callback, provider error: %s", oauthErr)
		http.Redirect(w, r, handler.progressURL+"?error=google_fit_denied", http.StatusFound)
		return
	}

	code := query.Get("code")
	state := query.Get("state")
	if code == "" || state == "" {
		log.Warn("google fit callback, missing code or state")
		http.Redirect(w, r, handler.progressURL+"?error=invalid_callback", http.StatusFound)
		return
	}

	if err := handler.service.HandleCallback(ctx, code, state); err != nil {
		if errors.Is(err, ErrNotConfigured) {
			http.Redirect(w, r, handler.progressURL+"?error=oauth_not_configured", http.StatusFound)
			return
		}
		log.Errorf("google fit callback: %s", err)
		http.Redirect(w, r, handler.progressURL+"?error=token_exchange_failed", http.StatusFound)
		return
	}

	http.Redirect(w, r, handler.progressURL+"?success=google_fit_connected", http.StatusFound)
}

func (handler *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "googlefitHandler.status")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	status, err := handler.service.ConnectionStatus(ctx, userID)
	if err != nil {
		log.Errorf("google fit status for user %d: %s", userID, err)
		http.Error(w, "google fit status failed", http.StatusInternalServerError)
		return
	}

	statusJson, err := json.Marshal(status)
	if err != nil {
		log.Errorf("google fit status, marshal response: %s", err)
		http.Error(w, "google fit status failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, statusJson)
}

func (handler *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "googlefitHandler.sync")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	day, err := handler.service.SyncToday(ctx, userID)
	if err != nil {
		handler.metricsManager.CounterGoogleFitSyncs.With(prometheus.Labels{"outcome": "error"}).Inc()
		switch {
		case errors.Is(err, ErrNotConfigured):
			http.Error(w, "google fit integration is not configured", http.StatusServiceUnavailable)
		case errors.Is(err, ErrNotConnected):
			http.Error(w, "google fit not connected", http.StatusBadRequest)
		case errors.Is(err, ErrTokenRefresh):
			http.Error(w, "failed to refresh google fit token", http.StatusBadRequest)
		default:
			log.Errorf("google fit sync for user %d: %s", userID, err)
			http.Error(w, "google fit sync failed", http.StatusInternalServerError)
		}
		return
	}

	handler.metricsManager.CounterGoogleFitSyncs.With(prometheus.Labels{"outcome": "success"}).Inc()

	respJson, err := json.Marshal(SyncResponse{
		Message: "Google Fit data synced successfully",
		FitData: day,
	})
	if err != nil {
		log.Errorf("google fit sync, marshal response: %s", err)
		http.Error(w, "google fit sync failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "googlefitHandler.disconnect")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.service.Disconnect(ctx, userID); err != nil {
		log.Errorf("google fit disconnect for user %d: %s", userID, err)
		http.Error(w, "google fit disconnect failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"message": "Google Fit disconnected"}`)
}
