package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"btyesteem/internal/model"
	"btyesteem/internal/service"
	"btyesteem/internal/transport/rest/middleware"
)

const defaultScheduleListLimit = 100

// ScheduleHandler manages the drip-message queue for admins.
type ScheduleHandler struct {
	scheduleSvc *service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(scheduleSvc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// List handles GET /v1/schedules?status=pending&limit=100
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	if middleware.GetAdminID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	status := model.MessageStatus(r.URL.Query().Get("status"))
	limit := int64(defaultScheduleListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	descriptors, err := h.scheduleSvc.ListAll(r.Context(), status, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, descriptors)
}

// GetBySubmission handles GET /v1/schedules/{submissionId}
func (h *ScheduleHandler) GetBySubmission(w http.ResponseWriter, r *http.Request) {
	if middleware.GetAdminID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	submissionID := mux.Vars(r)["submissionId"]
	descriptors, err := h.scheduleSvc.ListBySubmission(r.Context(), submissionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(descriptors) == 0 {
		writeError(w, http.StatusNotFound, "no schedule for submission")
		return
	}
	writeJSON(w, http.StatusOK, descriptors)
}

// Cancel handles POST /v1/schedules/{id}/cancel
func (h *ScheduleHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if middleware.GetAdminID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := mux.Vars(r)["id"]
	descriptor, err := h.scheduleSvc.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if descriptor == nil {
		writeError(w, http.StatusNotFound, "no pending message with that id")
		return
	}
	writeJSON(w, http.StatusOK, descriptor)
}
