package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/checker"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/middleware"
	"github.com/povarna/generative-ai-agents/dupcheck/internal/models"
	"github.com/rs/zerolog"
)

const Version = "1.0.0"

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

type Handler struct {
	checker *checker.Checker
	logger  *zerolog.Logger
}

func NewHandler(checker *checker.Checker, logger *zerolog.Logger) *Handler {
	return &Handler{
		checker: checker,
		logger:  logger,
	}
}

// POST /api/v1/duplicates/check
// Body: CheckRequest
// Returns: CheckResult
func (h *Handler) Check(req *restful.Request, resp *restful.Response) {
	var checkRequest models.CheckRequest
	if err := req.ReadEntity(&checkRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("request_id", checkRequest.RequestID).
		Int("length", len(checkRequest.Values)).
		Msg("Start duplicate check")

	result, err := h.checker.Check(req.Request.Context(), checkRequest)
	if err != nil {
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: Version,
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrUnsupportedValue),
		errors.Is(err, models.ErrInvalidValue),
		errors.Is(err, models.ErrTooManyValues):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
