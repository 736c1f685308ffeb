package http

import (
	"errors"
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RunTrigger starts an out-of-schedule triage run. Trigger reports false when a run
// is already in progress.
type RunTrigger interface {
	Trigger() bool
}

// Server exposes run reports and store discovery over HTTP.
type Server struct {
	getLatestRunHandler   queries.GetLatestRunQueryHandler
	getLatestSplitHandler queries.GetLatestSplitReportQueryHandler
	listStoresHandler     queries.ListStoresQueryHandler
	trigger               RunTrigger
}

// NewServer creates the server. trigger may be nil, in which case POST /api/v1/runs
// answers 501.
func NewServer(
	getLatestRunHandler queries.GetLatestRunQueryHandler,
	getLatestSplitHandler queries.GetLatestSplitReportQueryHandler,
	listStoresHandler queries.ListStoresQueryHandler,
	trigger RunTrigger,
) *Server {
	return &Server{
		getLatestRunHandler:   getLatestRunHandler,
		getLatestSplitHandler: getLatestSplitHandler,
		listStoresHandler:     listStoresHandler,
		trigger:               trigger,
	}
}

// Register mounts the routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)
	api := e.Group("/api/v1")
	api.GET("/runs/latest", s.GetLatestRun)
	api.POST("/runs", s.TriggerRun)
	api.GET("/splits/latest", s.GetLatestSplit)
	api.GET("/stores", s.GetStores)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetLatestRun handles GET /api/v1/runs/latest. Pass outcomes=true for per-order detail.
func (s *Server) GetLatestRun(ctx echo.Context) error {
	withOutcomes, err := boolParam(ctx, "outcomes")
	if err != nil {
		return badRequest(ctx, err)
	}

	resp, err := s.getLatestRunHandler.Handle(ctx.Request().Context(), queries.NewGetLatestRunQuery(withOutcomes))
	if err != nil {
		return failed(ctx, err, "Failed to retrieve the latest run")
	}
	return ctx.JSON(http.StatusOK, resp)
}

// TriggerRun handles POST /api/v1/runs.
func (s *Server) TriggerRun(ctx echo.Context) error {
	if s.trigger == nil {
		return ctx.JSON(http.StatusNotImplemented, Error{
			Code:    http.StatusNotImplemented,
			Message: "Manual runs are not enabled",
		})
	}
	if !s.trigger.Trigger() {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "A run is already in progress",
		})
	}
	return ctx.NoContent(http.StatusAccepted)
}

// GetLatestSplit handles GET /api/v1/splits/latest.
func (s *Server) GetLatestSplit(ctx echo.Context) error {
	rep, err := s.getLatestSplitHandler.Handle(ctx.Request().Context(), queries.NewGetLatestSplitReportQuery())
	if err != nil {
		return failed(ctx, err, "Failed to retrieve the latest split report")
	}
	return ctx.JSON(http.StatusOK, rep)
}

// GetStores handles GET /api/v1/stores. Pass active=true to hide inactive stores.
func (s *Server) GetStores(ctx echo.Context) error {
	activeOnly, err := boolParam(ctx, "active")
	if err != nil {
		return badRequest(ctx, err)
	}

	stores, err := s.listStoresHandler.Handle(ctx.Request().Context(), queries.NewListStoresQuery(activeOnly))
	if err != nil {
		return failed(ctx, err, "Failed to retrieve stores")
	}
	return ctx.JSON(http.StatusOK, stores)
}

func boolParam(ctx echo.Context, name string) (bool, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
}

func failed(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, errs.ErrRemoteCall):
		return ctx.JSON(http.StatusBadGateway, Error{Code: http.StatusBadGateway, Message: message})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
	}
}
