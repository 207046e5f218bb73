package system

import (
	"net/http"

	"travelog/config"
	"travelog/infras/otel"
	"travelog/infras/postgres"
	"travelog/shared/constant"
	"travelog/shared/timezone"
	"travelog/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the operational endpoints: health, demo-mode discovery
// and a cookie debug view. None of them require a session.
type Handler struct {
	db   *postgres.Connection
	cfg  *config.Config
	otel otel.Otel
}

func New(db *postgres.Connection, cfg *config.Config, otl otel.Otel) Handler {
	return Handler{
		db:   db,
		cfg:  cfg,
		otel: otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
	router.Get("/demo-mode", handler.DemoMode)
	router.Get("/debug/cookies", handler.DebugCookies)
}

type healthDatabase struct {
	Connected bool   `json:"connected"`
	Mode      string `json:"mode"`
}

type healthStatus struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Database  healthDatabase `json:"database"`
}

// Health reports service status and database reachability. In demo mode the
// database is always reported disconnected since none exists.
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} response.Data[any]
// @Router /v1/health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	mode := "production"
	if handler.cfg.DemoMode() {
		mode = "demo"
	}

	status := healthStatus{
		Status:    "ok",
		Timestamp: timezone.Now().Format(constant.DateFormat),
		Database: healthDatabase{
			Connected: handler.db.TestConnection(ctx),
			Mode:      mode,
		},
	}

	response.WithJSON(writer, http.StatusOK, status)
}

// DemoMode tells clients whether the service runs on the seeded in-memory
// dataset.
// @Summary Check demo mode
// @Tags System
// @Produce json
// @Success 200 {object} response.Data[any]
// @Router /v1/demo-mode [get]
func (handler *Handler) DemoMode(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DemoMode")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, map[string]bool{
		"demo_mode": handler.cfg.DemoMode(),
	})
}

type cookieInfo struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Exists bool   `json:"exists"`
}

// DebugCookies lists the cookies present on the request with their values
// redacted. Session values never appear in the output.
// @Summary Inspect request cookies
// @Tags System
// @Produce json
// @Success 200 {object} response.Data[any]
// @Router /v1/debug/cookies [get]
func (handler *Handler) DebugCookies(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DebugCookies")
	defer scope.End()

	requestCookies := request.Cookies()

	safeCookies := make([]cookieInfo, len(requestCookies))
	hasSession := false

	for i, cookie := range requestCookies {
		value := "***HIDDEN***"
		if cookie.Name == constant.CookieUserEmail {
			value = "***REDACTED***"
			hasSession = true
		}

		safeCookies[i] = cookieInfo{
			Name:   cookie.Name,
			Value:  value,
			Exists: true,
		}
	}

	response.WithJSON(writer, http.StatusOK, map[string]any{
		"status":       "ok",
		"cookie_count": len(requestCookies),
		"cookies":      safeCookies,
		"has_session":  hasSession,
		"timestamp":    timezone.Now().Format(constant.DateFormat),
	})
}
