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

// payeeHandler serves the read-only payee directory.
type payeeHandler struct {
	payeeService portssvc.PayeeSvcFacade
}

func newPayeeHandler(ps portssvc.PayeeSvcFacade) *payeeHandler {
	return &payeeHandler{payeeService: ps}
}

// registerPayeeRoutes registers the payee directory routes.
func registerPayeeRoutes(rg *gin.RouterGroup, payeeService portssvc.PayeeSvcFacade) {
	h := newPayeeHandler(payeeService)

	payees := rg.Group("/payees")
	{
		payees.GET("", h.listPayees)
		payees.GET("/:payeeID", h.getPayee)
	}
}

// listPayees returns all registered payees.
func (h *payeeHandler) listPayees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payees, err := h.payeeService.ListPayees(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPayeesResponse(payees))
}

// getPayee returns one payee.
func (h *payeeHandler) getPayee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payeeID, err := strconv.Atoi(c.Param("payeeID"))
	if err != nil || payeeID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payee ID"})
		return
	}

	payee, err := h.payeeService.GetPayee(c.Request.Context(), payeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payee not found"})
		} else {
			logger.Error("Failed to get payee from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payee"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPayeeResponse(payee))
}
