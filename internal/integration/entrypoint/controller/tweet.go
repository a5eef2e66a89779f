package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strength-check/backend/internal/application/usecase/tweet"
	domainerror "github.com/strength-check/backend/internal/domain/error"
	"github.com/strength-check/backend/internal/domain/valueobject"
	"github.com/strength-check/backend/internal/integration/entrypoint/dto"
)

// TweetController handles tweet dataset endpoints.
type TweetController struct {
	parseCoordinatesUseCase *tweet.ParseCoordinatesUseCase
	validateSchemaUseCase   *tweet.ValidateSchemaUseCase
}

// NewTweetController creates a new tweet controller instance.
func NewTweetController(
	parseCoordinatesUseCase *tweet.ParseCoordinatesUseCase,
	validateSchemaUseCase *tweet.ValidateSchemaUseCase,
) *TweetController {
	return &TweetController{
		parseCoordinatesUseCase: parseCoordinatesUseCase,
		validateSchemaUseCase:   validateSchemaUseCase,
	}
}

// ParseCoordinates handles POST /tweets/coordinates/parse requests.
func (c *TweetController) ParseCoordinates(ctx *gin.Context) {
	var req dto.ParseCoordinatesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidTweetRequest),
			Details: err.Error(),
		})
		return
	}

	output, err := c.parseCoordinatesUseCase.Execute(ctx.Request.Context(), tweet.ParseCoordinatesInput{
		Raw:   req.Coordinates,
		Order: valueobject.CoordinateOrder(req.Order),
	})
	if err != nil {
		c.handleTweetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToParseCoordinatesResponse(output))
}

// ValidateSchema handles POST /tweets/schema/validate requests.
func (c *TweetController) ValidateSchema(ctx *gin.Context) {
	var req dto.ValidateSchemaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidTweetRequest),
			Details: err.Error(),
		})
		return
	}

	result, err := c.validateSchemaUseCase.Execute(ctx.Request.Context(), req.Columns)
	if err != nil {
		c.handleTweetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTweetSchemaResponse(result))
}

// handleTweetError handles tweet dataset errors and returns appropriate HTTP responses.
func (c *TweetController) handleTweetError(ctx *gin.Context, err error) {
	var tweetErr *domainerror.TweetDataError
	if errors.As(err, &tweetErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: tweetErr.Message,
			Code:  string(tweetErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
