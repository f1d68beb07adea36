package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
	"github.com/wisnuad/internship_mgmt_app/internal/middleware"
)

// reportingHandler serves the statistics and export endpoints.
type reportingHandler struct {
	statisticsService portssvc.StatisticsSvcFacade
}

func newReportingHandler(statisticsService portssvc.StatisticsSvcFacade) *reportingHandler {
	return &reportingHandler{statisticsService: statisticsService}
}

// bindReportFilter binds the report filter and scopes participants to their
// own entries. Reviewers may report across participants.
func bindReportFilter(c *gin.Context) (dto.EntryReportFilter, bool) {
	var filter dto.EntryReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind report filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return filter, false
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return filter, false
	}
	if !actor.IsReviewer {
		filter.ParticipantID = &actor.ActorID
	}
	return filter, true
}

// getSummary godoc
// @Summary Get the entry summary report
// @Description Returns per-status counts, the approval rate, and total logged duration for the filtered entry set
// @Tags reports
// @Produce  json
// @Param   participantID query string false "Filter by participant (reviewers only)"
// @Param   entryType query string false "Filter by entry type"
// @Param   dateFrom query string false "Filter from date (YYYY-MM-DD)"
// @Param   dateTo query string false "Filter to date (YYYY-MM-DD)"
// @Success 200 {object} dto.EntrySummaryResponse "Summary report"
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}

	summary, err := h.statisticsService.Summarize(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntrySummaryResponse(summary))
}

// getRollup godoc
// @Summary Get the time-bucketed rollup report
// @Description Buckets the filtered entry set by day, ISO week, or month of the entry date
// @Tags reports
// @Produce  json
// @Param   period query string true "Bucket width: DAILY, WEEKLY, or MONTHLY"
// @Success 200 {object} dto.RollupResponse "Rollup report"
// @Failure 400 {object} map[string]string "Unknown period"
// @Router /reports/rollup [get]
func (h *reportingHandler) getRollup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period := domain.RollupPeriod(c.Query("period"))
	switch period {
	case domain.RollupDaily, domain.RollupWeekly, domain.RollupMonthly:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be DAILY, WEEKLY, or MONTHLY"})
		return
	}

	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}

	buckets, err := h.statisticsService.Rollup(c.Request.Context(), filter, period)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute rollup")
		return
	}

	c.JSON(http.StatusOK, dto.ToRollupResponse(period, buckets))
}

// exportEntries godoc
// @Summary Export the filtered entry set as CSV
// @Tags reports
// @Produce  text/csv
// @Success 200 {string} string "CSV payload"
// @Router /reports/export [get]
func (h *reportingHandler) exportEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("entries-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.statisticsService.ExportCSV(c.Request.Context(), filter, c.Writer); err != nil {
		// Headers may already be written; log and abort the stream.
		logger.Error("Failed to export entries as CSV", slog.String("error", err.Error()))
		c.Abort()
		return
	}
}

// registerReportingRoutes registers the statistics and export routes
func registerReportingRoutes(group *gin.RouterGroup, statisticsService portssvc.StatisticsSvcFacade) {
	h := newReportingHandler(statisticsService)

	reports := group.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/rollup", h.getRollup)
		reports.GET("/export", h.exportEntries)
	}
}
