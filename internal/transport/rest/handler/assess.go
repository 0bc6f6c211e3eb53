package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"btyesteem/internal/assessment"
	"btyesteem/internal/model"
	"btyesteem/internal/service"
)

// AssessmentHandler handles submission and result endpoints.
type AssessmentHandler struct {
	assessSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler.
func NewAssessmentHandler(assessSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessSvc: assessSvc}
}

type submitRequest struct {
	UserID        string    `json:"userId"`
	Answers       []int     `json:"answers"`
	ResponseTimes []float64 `json:"responseTimes,omitempty"`
}

type submitResponse struct {
	SubmissionID     string                     `json:"submissionId"`
	Quality          model.QualityVerdict       `json:"quality"`
	StyleCorrections *model.StyleCorrection     `json:"styleCorrections,omitempty"`
	Scores           *model.DimensionScores     `json:"scores,omitempty"`
	ProfileType      model.ProfileType          `json:"profileType,omitempty"`
	Strengths        []model.StrengthResult     `json:"strengths,omitempty"`
	Schedule         []*model.MessageDescriptor `json:"schedule,omitempty"`
	Message          string                     `json:"message,omitempty"`
}

// Submit handles POST /v1/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	submission, schedule, err := h.assessSvc.Submit(r.Context(), req.UserID, req.Answers, req.ResponseTimes)
	if err != nil {
		if errors.Is(err, assessment.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := submitResponse{
		SubmissionID: submission.ID,
		Quality:      submission.Result.Quality,
	}
	if submission.Result.Rejected() {
		resp.Message = submission.Result.Message
	} else {
		resp.StyleCorrections = submission.Result.StyleCorrection
		resp.Scores = submission.Result.Scores
		resp.ProfileType = submission.Result.ProfileType
		resp.Strengths = submission.Result.Strengths
		resp.Schedule = schedule
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /v1/assessments/{id}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	submission, err := h.assessSvc.GetSubmission(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if submission == nil {
		writeError(w, http.StatusNotFound, "submission not found")
		return
	}
	writeJSON(w, http.StatusOK, submission)
}
