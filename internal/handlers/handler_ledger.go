package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/apperrors"
	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/billing_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/billing_ledger_app/internal/dto"
	"github.com/SscSPs/billing_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for customer and supplier ledgers
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
	calendar      dto.CivilFormatter
}

// newLedgerHandler creates a new ledgerHandler
func newLedgerHandler(ls portssvc.LedgerSvc, cal dto.CivilFormatter) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
		calendar:      cal,
	}
}

// registerLedgerRoutes registers ledger routes under a company group
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc, cal dto.CivilFormatter) {
	h := newLedgerHandler(ledgerService, cal)

	rg.GET("/customers/:party_id/ledger", h.getCustomerLedger)
	rg.GET("/suppliers/:party_id/ledger", h.getSupplierLedger)
}

// getCustomerLedger godoc
// @Summary Get customer ledger
// @Description Returns the running-balance ledger of a customer over its full history. fromDate and toDate are validated and echoed but do not filter entries.
// @Tags ledgers
// @Produce json
// @Param company_id path string true "Company ID"
// @Param party_id path string true "Customer ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Security BearerAuth
// @Router /companies/{company_id}/customers/{party_id}/ledger [get]
func (h *ledgerHandler) getCustomerLedger(c *gin.Context) {
	h.getLedger(c, domain.Customer)
}

// getSupplierLedger godoc
// @Summary Get supplier ledger
// @Description Returns the running-balance ledger of a supplier over its full history. fromDate and toDate are validated and echoed but do not filter entries.
// @Tags ledgers
// @Produce json
// @Param company_id path string true "Company ID"
// @Param party_id path string true "Supplier ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Security BearerAuth
// @Router /companies/{company_id}/suppliers/{party_id}/ledger [get]
func (h *ledgerHandler) getSupplierLedger(c *gin.Context) {
	h.getLedger(c, domain.Supplier)
}

func (h *ledgerHandler) getLedger(c *gin.Context, kind domain.PartyKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	partyID := c.Param("party_id")

	logger = logger.With(
		slog.String("company_id", companyID),
		slog.String("party_id", partyID),
		slog.String("party_kind", string(kind)),
	)

	dateRange, err := bindDateRange(c)
	if err != nil {
		respondWithServiceError(c, logger, err, "build ledger")
		return
	}

	logger.Info("Received request to build ledger")

	ledger, err := h.ledgerService.GetLedger(c.Request.Context(), companyID, kind, partyID, dateRange)
	if err != nil {
		respondWithServiceError(c, logger, err, "build ledger")
		return
	}

	logger.Info("Ledger built successfully", slog.Int("entry_count", len(ledger.Entries)))
	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger, h.calendar))
}

// bindDateRange parses the optional fromDate and toDate query parameters.
func bindDateRange(c *gin.Context) (domain.DateRange, error) {
	var query dto.LedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return domain.DateRange{}, apperrors.NewAppError(http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD", err)
	}

	var dateRange domain.DateRange
	if query.FromDate != "" {
		from, err := time.Parse(time.DateOnly, query.FromDate)
		if err != nil {
			return domain.DateRange{}, apperrors.NewAppError(http.StatusBadRequest, "Invalid fromDate. Use YYYY-MM-DD", err)
		}
		dateRange.From = &from
	}
	if query.ToDate != "" {
		to, err := time.Parse(time.DateOnly, query.ToDate)
		if err != nil {
			return domain.DateRange{}, apperrors.NewAppError(http.StatusBadRequest, "Invalid toDate. Use YYYY-MM-DD", err)
		}
		dateRange.To = &to
	}
	return dateRange, nil
}
