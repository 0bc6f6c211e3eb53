package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"btyesteem/internal/service"
	"btyesteem/internal/transport/rest/middleware"
)

// QualityHandler serves stored quality verdicts to admins.
type QualityHandler struct {
	assessSvc *service.AssessmentService
}

// NewQualityHandler creates a new quality handler.
func NewQualityHandler(assessSvc *service.AssessmentService) *QualityHandler {
	return &QualityHandler{assessSvc: assessSvc}
}

// Get handles GET /v1/quality/{submissionId}
func (h *QualityHandler) Get(w http.ResponseWriter, r *http.Request) {
	submissionID := mux.Vars(r)["submissionId"]
	if middleware.GetAdminID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	verdict, err := h.assessSvc.GetQualityVerdict(r.Context(), submissionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if verdict == nil {
		writeError(w, http.StatusNotFound, "submission not found")
		return
	}
	writeJSON(w, http.StatusOK, verdict)
}
