package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/apperrors"
	portssvc "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/dto"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/middleware"
	"github.com/gin-gonic/gin"
)

// billPayHandler manages scheduled bill payment metadata.
type billPayHandler struct {
	billPayService portssvc.BillPaySvcFacade
}

func newBillPayHandler(bs portssvc.BillPaySvcFacade) *billPayHandler {
	return &billPayHandler{billPayService: bs}
}

// registerBillPayRoutes registers the scheduled payment routes.
func registerBillPayRoutes(rg *gin.RouterGroup, billPayService portssvc.BillPaySvcFacade) {
	h := newBillPayHandler(billPayService)

	billPays := rg.Group("/billpays")
	{
		billPays.POST("", h.scheduleBillPay)
		billPays.GET("", h.listBillPays)
		billPays.GET("/:billPayID", h.getBillPay)
		billPays.DELETE("/:billPayID", h.cancelBillPay)
	}
}

func billPayIDParam(c *gin.Context) (int, bool) {
	billPayID, err := strconv.Atoi(c.Param("billPayID"))
	if err != nil || billPayID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bill pay ID"})
		return 0, false
	}
	return billPayID, true
}

// scheduleBillPay records a new scheduled payment.
func (h *billPayHandler) scheduleBillPay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromContext(c)
	if !ok {
		logger.Error("Customer ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ScheduleBillPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ScheduleBillPay", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	billPay, err := h.billPayService.ScheduleBillPay(c.Request.Context(), customerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error scheduling bill pay", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account or payee not found scheduling bill pay")
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to schedule bill pay", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule payment"})
		}
		return
	}

	logger.Info("Bill pay scheduled", slog.Int("bill_pay_id", billPay.BillPayID))
	c.JSON(http.StatusCreated, dto.ToBillPayResponse(billPay))
}

// listBillPays returns the scheduled payments for one of the customer's
// accounts, selected by the accountNumber query parameter.
func (h *billPayHandler) listBillPays(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromContext(c)
	if !ok {
		logger.Error("Customer ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accountNumber, err := strconv.Atoi(c.Query("accountNumber"))
	if err != nil || accountNumber <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing accountNumber query parameter"})
		return
	}

	billPays, err := h.billPayService.ListBillPays(c.Request.Context(), customerID, accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to list bill pays", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve scheduled payments"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListBillPaysResponse(billPays))
}

// getBillPay returns one scheduled payment.
func (h *billPayHandler) getBillPay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromContext(c)
	if !ok {
		logger.Error("Customer ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	billPayID, ok := billPayIDParam(c)
	if !ok {
		return
	}

	billPay, err := h.billPayService.GetBillPay(c.Request.Context(), customerID, billPayID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Scheduled payment not found"})
		} else {
			logger.Error("Failed to get bill pay", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve scheduled payment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBillPayResponse(billPay))
}

// cancelBillPay removes a scheduled payment.
func (h *billPayHandler) cancelBillPay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromContext(c)
	if !ok {
		logger.Error("Customer ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	billPayID, ok := billPayIDParam(c)
	if !ok {
		return
	}

	if err := h.billPayService.CancelBillPay(c.Request.Context(), customerID, billPayID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Scheduled payment not found"})
		} else {
			logger.Error("Failed to cancel bill pay", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel scheduled payment"})
		}
		return
	}

	logger.Info("Bill pay cancelled", slog.Int("bill_pay_id", billPayID))
	c.Status(http.StatusNoContent)
}
