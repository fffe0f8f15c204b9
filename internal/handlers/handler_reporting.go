package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/dto"
	"github.com/SscSPs/property_ledger/internal/export"
	"github.com/SscSPs/property_ledger/internal/middleware"
)

// reportingHandler serves the ledger reports, as JSON or as a downloadable file.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	renderers        map[dto.ExportFormat]export.Renderer
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		renderers: map[dto.ExportFormat]export.Renderer{
			dto.ExportSpreadsheet: export.SpreadsheetRenderer{},
			dto.ExportDocument:    export.DocumentRenderer{},
		},
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/journal", h.getJournalListing)
	}
}

// bindFilter parses the shared report query. It writes the error response itself and reports false on failure.
func (h *reportingHandler) bindFilter(c *gin.Context, logger *slog.Logger) (domain.EntryFilter, dto.ExportFormat, bool) {
	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return domain.EntryFilter{}, "", false
	}
	filter, err := query.ToFilter()
	if err != nil {
		respondError(c, logger, err, "Failed to parse report filter")
		return domain.EntryFilter{}, "", false
	}
	return filter, query.Export, true
}

// respond writes the JSON body, or the rendered table when an export format was requested.
func (h *reportingHandler) respond(c *gin.Context, logger *slog.Logger, format dto.ExportFormat, filename string, body any, table func() export.Table) {
	renderer, ok := h.renderers[format]
	if !ok {
		c.JSON(http.StatusOK, body)
		return
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, table()); err != nil {
		logger.Error("Failed to render report", slog.String("format", string(format)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, filename, renderer.Extension()))
	c.Data(http.StatusOK, renderer.ContentType(), buf.Bytes())
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Per-account debit, credit and balance (debit - credit) over the filtered entries, with grand totals.
// @Tags reports
// @Produce  json
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce  application/pdf
// @Param   dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param   dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param   accountCode query string false "Restrict to one account"
// @Param   partyId query string false "Only entries touching this party"
// @Param   export query string false "none, spreadsheet or document"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter, format, ok := h.bindFilter(c, logger)
	if !ok {
		return
	}

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to generate trial balance")
		return
	}

	h.respond(c, logger, format, "balance_prueba", dto.ToTrialBalanceResponse(filter, tb), func() export.Table {
		return export.TrialBalanceTable(filter, tb)
	})
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Asset, liability and equity totals with the per-account detail.
// @Tags reports
// @Produce  json
// @Param   dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param   dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param   accountCode query string false "Restrict to one account"
// @Param   partyId query string false "Only entries touching this party"
// @Param   export query string false "none, spreadsheet or document"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter, format, ok := h.bindFilter(c, logger)
	if !ok {
		return
	}

	bs, err := h.reportingService.BalanceSheet(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to generate balance sheet")
		return
	}

	h.respond(c, logger, format, "balance_general", dto.ToBalanceSheetResponse(filter, bs), func() export.Table {
		return export.BalanceSheetTable(filter, bs)
	})
}

// getIncomeStatement godoc
// @Summary Income statement
// @Description Total income, total expense and net income over the filtered entries.
// @Tags reports
// @Produce  json
// @Param   dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param   dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param   accountCode query string false "Restrict to one account"
// @Param   partyId query string false "Only entries touching this party"
// @Param   export query string false "none, spreadsheet or document"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter, format, ok := h.bindFilter(c, logger)
	if !ok {
		return
	}

	is, err := h.reportingService.IncomeStatement(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to generate income statement")
		return
	}

	h.respond(c, logger, format, "estado_resultados", dto.ToIncomeStatementResponse(filter, is), func() export.Table {
		return export.IncomeStatementTable(filter, is)
	})
}

// getJournalListing godoc
// @Summary Journal listing
// @Description Filtered entries in insertion order, each expanded into its lines with account names.
// @Tags reports
// @Produce  json
// @Param   dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param   dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param   accountCode query string false "Only entries touching this account"
// @Param   partyId query string false "Only entries touching this party"
// @Param   export query string false "none, spreadsheet or document"
// @Success 200 {object} dto.JournalListingResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/journal [get]
func (h *reportingHandler) getJournalListing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter, format, ok := h.bindFilter(c, logger)
	if !ok {
		return
	}

	jl, err := h.reportingService.JournalListing(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to generate journal listing")
		return
	}

	h.respond(c, logger, format, "libro_diario", dto.ToJournalListingResponse(filter, jl), func() export.Table {
		return export.JournalTable(filter, jl)
	})
}
