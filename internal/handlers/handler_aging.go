package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/billing_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/billing_ledger_app/internal/dto"
	"github.com/SscSPs/billing_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// agingHandler handles HTTP requests for aging summaries
type agingHandler struct {
	agingService portssvc.AgingSvc
	calendar     dto.CivilFormatter
}

func newAgingHandler(as portssvc.AgingSvc, cal dto.CivilFormatter) *agingHandler {
	return &agingHandler{
		agingService: as,
		calendar:     cal,
	}
}

func registerAgingRoutes(rg *gin.RouterGroup, agingService portssvc.AgingSvc, cal dto.CivilFormatter) {
	h := newAgingHandler(agingService, cal)

	rg.GET("/customers/:party_id/aging", h.getCustomerAging)
	rg.GET("/suppliers/:party_id/aging", h.getSupplierAging)
}

// getCustomerAging godoc
// @Summary Get customer aging summary
// @Description Settles payments against invoices oldest-first and buckets what remains by age: Current, 30-60, 60-180, 180-360, >360 days.
// @Tags aging
// @Produce json
// @Param company_id path string true "Company ID"
// @Param party_id path string true "Customer ID"
// @Success 200 {object} dto.AgingSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to compute aging summary"
// @Security BearerAuth
// @Router /companies/{company_id}/customers/{party_id}/aging [get]
func (h *agingHandler) getCustomerAging(c *gin.Context) {
	h.getAging(c, domain.Customer)
}

// getSupplierAging godoc
// @Summary Get supplier aging summary
// @Description Settles payments against invoices oldest-first and buckets what remains by age: Current, 30-60, 60-180, 180-360, >360 days.
// @Tags aging
// @Produce json
// @Param company_id path string true "Company ID"
// @Param party_id path string true "Supplier ID"
// @Success 200 {object} dto.AgingSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to compute aging summary"
// @Security BearerAuth
// @Router /companies/{company_id}/suppliers/{party_id}/aging [get]
func (h *agingHandler) getSupplierAging(c *gin.Context) {
	h.getAging(c, domain.Supplier)
}

func (h *agingHandler) getAging(c *gin.Context, kind domain.PartyKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("company_id", c.Param("company_id")),
		slog.String("party_id", c.Param("party_id")),
		slog.String("party_kind", string(kind)),
	)
	logger.Info("Received request to compute aging summary")

	summary, err := h.agingService.GetAgingSummary(c.Request.Context(), c.Param("company_id"), kind, c.Param("party_id"))
	if err != nil {
		respondWithServiceError(c, logger, err, "compute aging summary")
		return
	}

	logger.Info("Aging summary computed successfully", slog.String("total_receivable", summary.TotalReceivable.String()))
	c.JSON(http.StatusOK, dto.ToAgingSummaryResponse(summary, h.calendar))
}
