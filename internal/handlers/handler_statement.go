package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	portssvc "github.com/clearbrook/fund_admin_app/internal/core/ports/services"
	"github.com/clearbrook/fund_admin_app/internal/dto"
	"github.com/clearbrook/fund_admin_app/internal/middleware"
)

// statementHandler handles HTTP requests related to monthly statements.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

func newStatementHandler(ss portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{statementService: ss}
}

// registerStatementRoutes registers routes related to statements.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := newStatementHandler(statementService)

	statements := rg.Group("/statements")
	{
		statements.POST("/generate", h.generateStatements)
		statements.GET("/accounts/:accountID", h.listStatements)
	}
}

// generateStatements godoc
// @Summary Regenerate statements
// @Description Recomputes statements for the given accounts from the requested month through the latest published trade-interest month. One account's failure does not affect the others.
// @Tags statements
// @Accept json
// @Produce json
// @Param generation body dto.GenerateStatementsRequest true "Accounts and starting month"
// @Success 200 {object} dto.GenerateStatementsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements/generate [post]
func (h *statementHandler) generateStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.GenerateStatementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateStatements", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	from, err := domain.NewPeriod(req.FromMonth, req.FromYear)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	results, err := h.statementService.Generate(c.Request.Context(), actorID, req.AccountIDs, from)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Actor not permitted to regenerate statements")
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Operation not permitted"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrComputation):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to start statement generation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate statements"})
		}
		return
	}

	resp := dto.GenerateStatementsResponse{Statements: []dto.StatementResponse{}}
	for result := range results {
		if result.Err != nil {
			resp.Errors = append(resp.Errors, dto.GenerationErrorResponse{
				AccountID: result.AccountID,
				Error:     result.Err.Error(),
			})
			continue
		}
		resp.Statements = append(resp.Statements, dto.ToStatementResponse(result.Statement))
	}

	logger.Info("Statement generation finished",
		slog.Int("statements", len(resp.Statements)),
		slog.Int("errors", len(resp.Errors)))
	c.JSON(http.StatusOK, resp)
}

// listStatements godoc
// @Summary List statements for an account
// @Description Lists the non-deleted statements of a visible account, ascending by month.
// @Tags statements
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {array} dto.StatementResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements/accounts/{accountID} [get]
func (h *statementHandler) listStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	actorID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	statements, err := h.statementService.ListStatements(c.Request.Context(), actorID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
			return
		}
		logger.Error("Failed to list statements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list statements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponses(statements))
}
