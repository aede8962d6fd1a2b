package apiserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutriplan/v2/internal/ports/inbound"
	"github.com/nutriplan/v2/pkg/errors"
)

// PlanHandlers handles the plan API requests
type PlanHandlers struct {
	planService inbound.PlanService
	logger      *zap.Logger
}

// NewPlanHandlers creates a new plan handlers instance
func NewPlanHandlers(planService inbound.PlanService, logger *zap.Logger) *PlanHandlers {
	return &PlanHandlers{
		planService: planService,
		logger:      logger,
	}
}

// GeneratePlan handles POST /api/v1/plans
func (h *PlanHandlers) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.GeneratePlanCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	plan, err := h.planService.GeneratePlan(r.Context(), cmd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, plan)
}

// GetPlan handles GET /api/v1/plans/{id}
func (h *PlanHandlers) GetPlan(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid plan id"))
		return
	}

	plan, err := h.planService.GetPlanByID(r.Context(), planID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// GetUserPlans handles GET /api/v1/users/{userID}/plans
func (h *PlanHandlers) GetUserPlans(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid user id"))
		return
	}

	plans, err := h.planService.GetPlansByUser(r.Context(), userID, 10)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, plans)
}

// writeError maps application errors to HTTP responses
func (h *PlanHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.Wrap(err, "request failed")
	requestID := chimiddleware.GetReqID(r.Context())

	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("request_id", requestID),
			zap.String("path", r.URL.Path),
			zap.Error(appErr),
		)
	}

	writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
