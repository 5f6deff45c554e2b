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

// requestHandler handles HTTP requests related to money-movement requests.
type requestHandler struct {
	requestService portssvc.RequestSvcFacade
}

func newRequestHandler(rs portssvc.RequestSvcFacade) *requestHandler {
	return &requestHandler{requestService: rs}
}

// registerRequestRoutes registers routes related to money-movement requests.
func registerRequestRoutes(rg *gin.RouterGroup, requestService portssvc.RequestSvcFacade) {
	h := newRequestHandler(requestService)

	requests := rg.Group("/requests")
	{
		requests.POST("", h.submitRequest)
		requests.GET("", h.listRequests)
		requests.PUT("/:id", h.updateRequest)
		requests.POST("/:id/post", h.postRequest)
		requests.POST("/:id/cancel", h.cancelRequest)
		requests.POST("/:id/recurring", h.makeRecurring)
	}
}

// renderRequestError maps service errors to HTTP responses shared by all
// request endpoints.
func renderRequestError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Request or account not found", slog.String("action", action))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Actor not permitted", slog.String("action", action))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Operation not permitted"})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("State conflict", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Request operation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// submitRequest godoc
// @Summary Submit a money-movement request
// @Description Creates a new request in Pending (or Recurring) status for a visible account.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequestRequest true "Request details"
// @Success 201 {object} dto.RequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /requests [post]
func (h *requestHandler) submitRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	request, err := h.requestService.SubmitRequest(c.Request.Context(), actorID, req)
	if err != nil {
		renderRequestError(c, logger, err, "submit request")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(request))
}

// listRequests godoc
// @Summary List requests
// @Description Lists requests for accounts visible to the actor, newest first, with cursor pagination.
// @Tags requests
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListRequestsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /requests [get]
func (h *requestHandler) listRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListRequests", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.requestService.ListRequests(c.Request.Context(), actorID, params)
	if err != nil {
		renderRequestError(c, logger, err, "list requests")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateRequest godoc
// @Summary Update a request
// @Description Merges the patch into the request. The amount of an approved request cannot change.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.UpdateRequestRequest true "Fields to update"
// @Success 200 {object} dto.RequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /requests/{id} [put]
func (h *requestHandler) updateRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	request, err := h.requestService.UpdateRequest(c.Request.Context(), actorID, requestID, req)
	if err != nil {
		renderRequestError(c, logger, err, "update request")
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}

// postRequest godoc
// @Summary Post a request into the ledger
// @Description Records the request's operation for the given month and advances the state machine.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param posting body dto.PostRequestRequest true "Posting details"
// @Success 200 {object} dto.PostRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /requests/{id}/post [post]
func (h *requestHandler) postRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.PostRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	request, operation, err := h.requestService.PostRequest(c.Request.Context(), actorID, requestID, req)
	if err != nil {
		renderRequestError(c, logger, err, "post request")
		return
	}

	c.JSON(http.StatusOK, dto.PostRequestResponse{
		Request:   dto.ToRequestResponse(request),
		Operation: dto.ToOperationResponse(operation),
	})
}

// cancelRequest godoc
// @Summary Cancel a request
// @Description Voids a Pending or Recurring request. Cancelling a resolved request returns it unchanged with a message.
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.CancelRequestResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /requests/{id}/cancel [post]
func (h *requestHandler) cancelRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	request, message, err := h.requestService.CancelRequest(c.Request.Context(), actorID, requestID)
	if err != nil {
		renderRequestError(c, logger, err, "cancel request")
		return
	}

	c.JSON(http.StatusOK, dto.CancelRequestResponse{
		Request: dto.ToRequestResponse(request),
		Message: message,
	})
}

// makeRecurring godoc
// @Summary Make a request recurring
// @Description Turns a Pending or Approved debit request into a standing monthly one.
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.RequestResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /requests/{id}/recurring [post]
func (h *requestHandler) makeRecurring(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	request, err := h.requestService.MakeRecurring(c.Request.Context(), actorID, requestID)
	if err != nil {
		renderRequestError(c, logger, err, "make request recurring")
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}
