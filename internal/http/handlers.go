package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vokinneberg/ocean-query/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_querydispatcher.go -package=http QueryDispatcher

// QueryDispatcher resolves a query into a result, never failing
type QueryDispatcher interface {
	Resolve(ctx context.Context, query string) types.QueryResult
}

type QueryReq struct {
	Query string `json:"query" validate:"required,max=2000"`
}

// Suggestions are the dashboard's quick queries
var Suggestions = []string{
	"Show me sea surface temperature in the Arabian Sea",
	"What's the salinity near Mumbai in the last month?",
	"Show me chlorophyll data in the Indian Ocean",
}

type Handler struct {
	dispatcher QueryDispatcher
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewHandlers initializes handlers with dependencies
func NewHandlers(dispatcher QueryDispatcher, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		dispatcher: dispatcher,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (h *Handler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req QueryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if err := h.validate.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, validationMessage(err), nil)
		return
	}

	result := h.dispatcher.Resolve(r.Context(), req.Query)
	h.logger.Info("Query resolved",
		zap.String("data_source", string(result.DataSource)),
		zap.Bool("ok", result.OK),
	)

	writeJSON(w, http.StatusOK, result, h.logger)
}

func (h *Handler) SuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": Suggestions}, h.logger)
}

// HealthHandler reports that the process is serving
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, zap.NewNop())
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "Invalid request"
	}
	switch validationErrors[0].Tag() {
	case "required":
		return "Query is required"
	case "max":
		return fmt.Sprintf("Query must be at most %s characters", validationErrors[0].Param())
	default:
		return "Invalid query"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error encoding response", zap.Error(err), zap.Int("status", status))
	}
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}

	writeJSON(w, status, types.ErrorResponse{
		Error:   http.StatusText(status),
		Message: errorMsg,
	}, h.logger)
}
