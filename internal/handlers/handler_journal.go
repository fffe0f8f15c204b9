package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/dto"
	"github.com/SscSPs/property_ledger/internal/middleware"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers routes related to journal entries.
// Admitted entries are immutable: PUT, PATCH and DELETE are answered by rejectMutation.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journal-entries")
	{
		journals.POST("", h.createEntry)
		journals.GET("", h.listEntries)
		journals.GET("/:entryID", h.getEntry)
		journals.POST("/:entryID/reverse", h.reverseEntry)
		journals.PUT("/:entryID", h.rejectMutation)
		journals.PATCH("/:entryID", h.rejectMutation)
		journals.DELETE("/:entryID", h.rejectMutation)
	}
}

// createEntry godoc
// @Summary Post a journal entry
// @Description Validates a proposed entry against the chart of accounts and appends it to the ledger.
// @Description Rejections carry a structured payload with the failure kind and offending account codes.
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Proposed entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Entry dated in a closed period"
// @Failure 422 {object} dto.LedgerErrorResponse "Entry rejected by the ledger"
// @Failure 500 {object} map[string]string "Failed to post entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post entry")
		return
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entry.ID), slog.Int64("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists admitted entries in insertion order, one page at a time.
// @Tags journal
// @Produce  json
// @Param   dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param   dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param   accountCode query string false "Only entries touching this account"
// @Param   partyId query string false "Only entries touching this party"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid filter or token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		respondError(c, logger, err, "Failed to list entries")
		return
	}

	params := dto.ListJournalEntriesParams{Filter: filter}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		params.Limit = limit
	}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	page, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, page)
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journal
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.journalService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseEntry godoc
// @Summary Reverse a journal entry
// @Description Appends a new entry with debits and credits swapped. The original is left untouched.
// @Tags journal
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Reversal date falls in a closed period"
// @Failure 500 {object} map[string]string "Failed to reverse entry"
// @Security BearerAuth
// @Router /journal-entries/{entryID}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	reversal, err := h.journalService.ReverseEntry(c.Request.Context(), entryID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to reverse entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversal))
}

// rejectMutation godoc
// @Summary Modify or delete a journal entry (not allowed)
// @Description Admitted entries cannot be changed. Post a reversal instead.
// @Tags journal
// @Param   entryID path string true "Entry ID"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 405 {object} map[string]string "Entries are immutable"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [put]
// @Router /journal-entries/{entryID} [delete]
func (h *journalHandler) rejectMutation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	err := h.journalService.RejectMutation(c.Request.Context(), entryID)
	if err == nil {
		// the service never accepts a mutation
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "journal entries are immutable once admitted"})
		return
	}
	respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to process request")
}
