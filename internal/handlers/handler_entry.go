package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
	"github.com/wisnuad/internship_mgmt_app/internal/middleware"
)

// entryHandler handles HTTP requests for the entry approval workflow.
type entryHandler struct {
	entryService   portssvc.EntrySvcFacade
	historyService portssvc.HistorySvcFacade
}

// newEntryHandler creates a new entryHandler.
func newEntryHandler(entryService portssvc.EntrySvcFacade, historyService portssvc.HistorySvcFacade) *entryHandler {
	return &entryHandler{
		entryService:   entryService,
		historyService: historyService,
	}
}

// createEntry godoc
// @Summary Create a logbook, attendance, or leave entry
// @Description Creates a new entry in PENDING status for the authenticated participant
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse "The created entry"
// @Failure 400 {object} map[string]string "Invalid request format or validation failure"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get an entry
// @Description Retrieves one entry by ID; participants can only see their own
// @Tags entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse "The entry"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List entries
// @Description Retrieves a paginated, filtered list of entries; participants are scoped to their own
// @Tags entries
// @Produce  json
// @Param   participantID query string false "Filter by participant (reviewers only)"
// @Param   entryType query string false "Filter by entry type"
// @Param   status query string false "Filter by status"
// @Param   dateFrom query string false "Filter from date (YYYY-MM-DD)"
// @Param   dateTo query string false "Filter to date (YYYY-MM-DD)"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListEntriesResponse "Entries page"
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.entryService.ListEntries(c.Request.Context(), actor, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// resubmitEntry godoc
// @Summary Resubmit an entry
// @Description Edits a rejected or needs-revision entry and returns it to PENDING
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   entry body dto.ResubmitEntryRequest true "Updated entry content"
// @Success 200 {object} dto.EntryResponse "The resubmitted entry"
// @Failure 409 {object} map[string]string "Entry is not in a resubmittable status"
// @Router /entries/{entryID}/resubmit [put]
func (h *entryHandler) resubmitEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.ResubmitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for resubmitEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entryService.ResubmitEntry(c.Request.Context(), entryID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resubmit entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete an entry
// @Description Soft-deletes a pending or needs-revision entry owned by the caller
// @Tags entries
// @Param   entryID path string true "Entry ID"
// @Success 204 "Entry deleted"
// @Failure 409 {object} map[string]string "Entry is not in a deletable status"
// @Router /entries/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID, actor); err != nil {
		respondServiceError(c, logger, err, "Failed to delete entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// reviewAction adapts one reviewer transition to a gin handler. The three
// transition endpoints differ only in the service method they call.
func (h *entryHandler) reviewAction(action func(c *gin.Context, entryID string, req dto.ReviewRequest) (*dto.ReviewResult, error), fallbackMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		entryID := c.Param("entryID")

		var req dto.ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for review", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		result, err := action(c, entryID, req)
		if err != nil {
			respondServiceError(c, logger, err, fallbackMsg)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// approveEntry godoc
// @Summary Approve a pending entry
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   review body dto.ReviewRequest true "Optional reviewer note"
// @Success 200 {object} dto.ReviewResult "The approved entry"
// @Failure 403 {object} map[string]string "Reviewer capability required"
// @Failure 409 {object} map[string]string "Entry is not pending"
// @Router /entries/{entryID}/approve [post]
func (h *entryHandler) approveEntry() gin.HandlerFunc {
	return h.reviewAction(func(c *gin.Context, entryID string, req dto.ReviewRequest) (*dto.ReviewResult, error) {
		actor, ok := middleware.GetActorFromContext(c)
		if !ok {
			return nil, errUnauthorizedActor
		}
		return h.entryService.ApproveEntry(c.Request.Context(), entryID, req, actor)
	}, "Failed to approve entry")
}

// rejectEntry godoc
// @Summary Reject a pending entry
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   review body dto.ReviewRequest true "Mandatory reviewer note"
// @Success 200 {object} dto.ReviewResult "The rejected entry"
// @Failure 400 {object} map[string]string "Reviewer note too short"
// @Failure 409 {object} map[string]string "Entry is not pending"
// @Router /entries/{entryID}/reject [post]
func (h *entryHandler) rejectEntry() gin.HandlerFunc {
	return h.reviewAction(func(c *gin.Context, entryID string, req dto.ReviewRequest) (*dto.ReviewResult, error) {
		actor, ok := middleware.GetActorFromContext(c)
		if !ok {
			return nil, errUnauthorizedActor
		}
		return h.entryService.RejectEntry(c.Request.Context(), entryID, req, actor)
	}, "Failed to reject entry")
}

// requestRevision godoc
// @Summary Request revision of a pending entry
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   review body dto.ReviewRequest true "Mandatory reviewer note"
// @Success 200 {object} dto.ReviewResult "The entry sent back for revision"
// @Failure 400 {object} map[string]string "Reviewer note too short"
// @Failure 409 {object} map[string]string "Entry is not pending"
// @Router /entries/{entryID}/request-revision [post]
func (h *entryHandler) requestRevision() gin.HandlerFunc {
	return h.reviewAction(func(c *gin.Context, entryID string, req dto.ReviewRequest) (*dto.ReviewResult, error) {
		actor, ok := middleware.GetActorFromContext(c)
		if !ok {
			return nil, errUnauthorizedActor
		}
		return h.entryService.RequestRevision(c.Request.Context(), entryID, req, actor)
	}, "Failed to request revision")
}

// getEntryHistory godoc
// @Summary Get the audit trail of an entry
// @Description Retrieves all history events for an entry, oldest first
// @Tags entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {array} domain.HistoryEvent "History events"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /entries/{entryID}/history [get]
func (h *entryHandler) getEntryHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	events, err := h.historyService.GetEntryHistory(c.Request.Context(), entryID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve entry history")
		return
	}

	c.JSON(http.StatusOK, events)
}

// registerEntryRoutes registers entry workflow routes
func registerEntryRoutes(group *gin.RouterGroup, entryService portssvc.EntrySvcFacade, historyService portssvc.HistorySvcFacade) {
	h := newEntryHandler(entryService, historyService)

	entries := group.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.PUT("/:entryID/resubmit", h.resubmitEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
		entries.POST("/:entryID/approve", h.approveEntry())
		entries.POST("/:entryID/reject", h.rejectEntry())
		entries.POST("/:entryID/request-revision", h.requestRevision())
		entries.GET("/:entryID/history", h.getEntryHistory)
	}
}
