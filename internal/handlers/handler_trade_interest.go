package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	portssvc "github.com/clearbrook/fund_admin_app/internal/core/ports/services"
	"github.com/clearbrook/fund_admin_app/internal/dto"
	"github.com/clearbrook/fund_admin_app/internal/middleware"
)

// tradeInterestHandler handles HTTP requests related to monthly interest rates.
type tradeInterestHandler struct {
	tradeInterestService portssvc.TradeInterestSvcFacade
}

func newTradeInterestHandler(ts portssvc.TradeInterestSvcFacade) *tradeInterestHandler {
	return &tradeInterestHandler{tradeInterestService: ts}
}

// registerTradeInterestRoutes registers routes related to trade interest rates.
func registerTradeInterestRoutes(rg *gin.RouterGroup, tradeInterestService portssvc.TradeInterestSvcFacade) {
	h := newTradeInterestHandler(tradeInterestService)

	rates := rg.Group("/trade-interest")
	{
		rates.PUT("", h.publishRate)
		rates.GET("", h.listRates)
	}
}

// publishRate godoc
// @Summary Record a monthly interest rate
// @Description Inserts or updates the rate row for a calendar month. Admin only.
// @Tags trade-interest
// @Accept json
// @Produce json
// @Param rate body dto.PublishTradeInterestRequest true "Rate details"
// @Success 200 {object} dto.TradeInterestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /trade-interest [put]
func (h *tradeInterestHandler) publishRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.PublishTradeInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PublishRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.tradeInterestService.PublishRate(c.Request.Context(), actorID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Operation not permitted"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to record rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeInterestResponse(rate))
}

// listRates godoc
// @Summary List monthly interest rates
// @Description Lists every recorded rate row, published or not, ascending by month. Staff only.
// @Tags trade-interest
// @Produce json
// @Success 200 {array} dto.TradeInterestResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /trade-interest [get]
func (h *tradeInterestHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rates, err := h.tradeInterestService.ListRates(c.Request.Context(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Operation not permitted"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to list rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list rates"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeInterestResponses(rates))
}
