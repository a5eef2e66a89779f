package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strength-check/backend/internal/application/usecase/strength"
	domainerror "github.com/strength-check/backend/internal/domain/error"
	"github.com/strength-check/backend/internal/integration/entrypoint/dto"
)

// StrengthController handles password strength endpoints.
type StrengthController struct {
	evaluateUseCase *strength.EvaluatePasswordUseCase
	batchUseCase    *strength.EvaluateBatchUseCase
	statsUseCase    *strength.GetStatsUseCase
}

// NewStrengthController creates a new strength controller instance.
func NewStrengthController(
	evaluateUseCase *strength.EvaluatePasswordUseCase,
	batchUseCase *strength.EvaluateBatchUseCase,
	statsUseCase *strength.GetStatsUseCase,
) *StrengthController {
	return &StrengthController{
		evaluateUseCase: evaluateUseCase,
		batchUseCase:    batchUseCase,
		statsUseCase:    statsUseCase,
	}
}

// Evaluate handles POST /passwords/evaluate requests.
func (c *StrengthController) Evaluate(ctx *gin.Context) {
	// Parse request body
	var req dto.EvaluatePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingPasswordField),
			Details: err.Error(),
		})
		return
	}

	// Execute use case
	output, err := c.evaluateUseCase.Execute(ctx.Request.Context(), strength.EvaluatePasswordInput{
		Password: *req.Password,
	})
	if err != nil {
		c.handleStrengthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEvaluationResponse(output))
}

// EvaluateBatch handles POST /passwords/evaluate/batch requests.
func (c *StrengthController) EvaluateBatch(ctx *gin.Context) {
	// Parse request body
	var req dto.EvaluateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingPasswordField),
			Details: err.Error(),
		})
		return
	}

	// Execute use case
	output, err := c.batchUseCase.Execute(ctx.Request.Context(), strength.EvaluateBatchInput{
		Passwords: req.Passwords,
	})
	if err != nil {
		c.handleStrengthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEvaluateBatchResponse(output))
}

// Stats handles GET /passwords/stats requests.
func (c *StrengthController) Stats(ctx *gin.Context) {
	output, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleStrengthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStrengthStatsResponse(output.Stats))
}

// handleStrengthError handles strength errors and returns appropriate HTTP responses.
func (c *StrengthController) handleStrengthError(ctx *gin.Context, err error) {
	var strengthErr *domainerror.StrengthError
	if errors.As(err, &strengthErr) {
		statusCode := c.getStatusCodeForStrengthError(strengthErr.Code)
		if statusCode >= http.StatusInternalServerError {
			slog.Error("Password strength request failed",
				"code", strengthErr.Code,
				"error", err,
			)
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: strengthErr.Message,
			Code:  string(strengthErr.Code),
		})
		return
	}

	slog.Error("Unexpected password strength error", "error", err)

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForStrengthError maps strength error codes to HTTP status codes.
func (c *StrengthController) getStatusCodeForStrengthError(code domainerror.StrengthErrorCode) int {
	switch code {
	case domainerror.ErrCodePasswordTooLong,
		domainerror.ErrCodeBatchTooLarge,
		domainerror.ErrCodeEmptyBatch,
		domainerror.ErrCodeMissingPasswordField:
		return http.StatusBadRequest
	case domainerror.ErrCodeStatsUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
