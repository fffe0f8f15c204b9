package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/dto"
	"github.com/SscSPs/property_ledger/internal/middleware"
)

type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

func newPartyHandler(ps portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{partyService: ps}
}

// registerPartyRoutes registers routes related to counterparties.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:partyID", h.getParty)
		parties.DELETE("/:partyID", h.deactivateParty)
	}
}

// createParty godoc
// @Summary Register a counterparty
// @Description Owners, tenants and suppliers referenced by posting lines.
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Identification number already registered"
// @Failure 500 {object} map[string]string "Failed to create party"
// @Security BearerAuth
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create party")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List active counterparties
// @Tags parties
// @Produce  json
// @Param   kind query string false "OWNER, TENANT or SUPPLIER"
// @Success 200 {array} dto.PartyResponse
// @Failure 400 {object} map[string]string "Unknown kind"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list parties"
// @Security BearerAuth
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kind := domain.PartyKind(strings.ToUpper(strings.TrimSpace(c.Query("kind"))))
	switch kind {
	case "", domain.PartyOwner, domain.PartyTenant, domain.PartySupplier:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be one of OWNER, TENANT, SUPPLIER"})
		return
	}

	parties, err := h.partyService.ListParties(c.Request.Context(), kind)
	if err != nil {
		respondError(c, logger, err, "Failed to list parties")
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponses(parties))
}

// getParty godoc
// @Summary Get a counterparty
// @Tags parties
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party not found"
// @Security BearerAuth
// @Router /parties/{partyID} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	party, err := h.partyService.GetParty(c.Request.Context(), partyID)
	if err != nil {
		respondError(c, logger.With(slog.String("party_id", partyID)), err, "Failed to retrieve party")
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// deactivateParty godoc
// @Summary Deactivate a counterparty
// @Description Inactive parties can no longer be referenced by new postings.
// @Tags parties
// @Param   partyID path string true "Party ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party not found"
// @Security BearerAuth
// @Router /parties/{partyID} [delete]
func (h *partyHandler) deactivateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.partyService.DeactivateParty(c.Request.Context(), partyID, userID); err != nil {
		respondError(c, logger.With(slog.String("party_id", partyID)), err, "Failed to deactivate party")
		return
	}

	c.Status(http.StatusNoContent)
}
