package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
	"github.com/wisnuad/internship_mgmt_app/internal/middleware"
)

// evaluationHandler handles end-of-internship evaluation requests.
type evaluationHandler struct {
	evaluationService portssvc.EvaluationSvcFacade
}

func newEvaluationHandler(evaluationService portssvc.EvaluationSvcFacade) *evaluationHandler {
	return &evaluationHandler{evaluationService: evaluationService}
}

// upsertEvaluation godoc
// @Summary Create or replace a participant's evaluation
// @Description Reviewers score the participant against weighted criteria
// @Tags evaluations
// @Accept  json
// @Produce  json
// @Param   participantID path string true "Participant ID"
// @Param   evaluation body dto.UpsertEvaluationRequest true "Evaluation with weighted scores"
// @Success 200 {object} domain.Evaluation "The stored evaluation"
// @Failure 403 {object} map[string]string "Reviewer capability required"
// @Router /participants/{participantID}/evaluation [put]
func (h *evaluationHandler) upsertEvaluation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	participantID := c.Param("participantID")

	var req dto.UpsertEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for upsertEvaluation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	evaluation, err := h.evaluationService.UpsertEvaluation(c.Request.Context(), participantID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to store evaluation")
		return
	}

	c.JSON(http.StatusOK, evaluation)
}

// getEvaluation godoc
// @Summary Get a participant's evaluation report
// @Description Includes the weighted final score, the logbook approval rate, and certificate eligibility
// @Tags evaluations
// @Produce  json
// @Param   participantID path string true "Participant ID"
// @Success 200 {object} dto.EvaluationResponse "Evaluation report"
// @Failure 404 {object} map[string]string "No evaluation exists yet"
// @Router /participants/{participantID}/evaluation [get]
func (h *evaluationHandler) getEvaluation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	participantID := c.Param("participantID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.evaluationService.GetEvaluation(c.Request.Context(), participantID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve evaluation")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// registerEvaluationRoutes registers evaluation routes
func registerEvaluationRoutes(group *gin.RouterGroup, evaluationService portssvc.EvaluationSvcFacade) {
	h := newEvaluationHandler(evaluationService)

	participants := group.Group("/participants")
	{
		participants.PUT("/:participantID/evaluation", h.upsertEvaluation)
		participants.GET("/:participantID/evaluation", h.getEvaluation)
	}
}
