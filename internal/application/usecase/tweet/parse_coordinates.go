// Package tweet contains tweet dataset use cases.
package tweet

import (
	"context"
	"fmt"

	domainerror "github.com/strength-check/backend/internal/domain/error"
	"github.com/strength-check/backend/internal/domain/valueobject"
)

// MaxCoordinatesPerRequest bounds a single parse request.
const MaxCoordinatesPerRequest = 1000

// ParseCoordinatesInput represents the input for coordinate parsing.
// An empty Order reads cells longitude first, as tweet_coord stores them.
type ParseCoordinatesInput struct {
	Raw   []string
	Order valueobject.CoordinateOrder
}

// CoordinateResult is the outcome for one raw cell.
// Exactly one of Coordinate and ErrorCode is set.
type CoordinateResult struct {
	Raw        string
	Coordinate *valueobject.Coordinate
	ErrorCode  domainerror.TweetErrorCode
	Error      string
}

// ParseCoordinatesOutput represents the output of coordinate parsing.
type ParseCoordinatesOutput struct {
	Results     []CoordinateResult
	ParsedCount int
	FailedCount int
}

// ParseCoordinatesUseCase parses tweet coordinate cells.
type ParseCoordinatesUseCase struct{}

// NewParseCoordinatesUseCase creates a new ParseCoordinatesUseCase instance.
func NewParseCoordinatesUseCase() *ParseCoordinatesUseCase {
	return &ParseCoordinatesUseCase{}
}

// Execute parses every cell, reporting failures per item.
func (uc *ParseCoordinatesUseCase) Execute(_ context.Context, input ParseCoordinatesInput) (*ParseCoordinatesOutput, error) {
	if len(input.Raw) > MaxCoordinatesPerRequest {
		return nil, domainerror.NewTweetDataError(
			domainerror.ErrCodeTooManyCoordinates,
			fmt.Sprintf("at most %d coordinates can be parsed per request", MaxCoordinatesPerRequest),
			domainerror.ErrTooManyCoordinates,
		)
	}

	order := input.Order
	if order == "" {
		order = valueobject.OrderLonLat
	}
	if !order.IsValid() {
		return nil, domainerror.NewTweetDataError(
			domainerror.ErrCodeInvalidTweetRequest,
			"order must be 'lat_lon' or 'lon_lat'",
			nil,
		)
	}

	output := &ParseCoordinatesOutput{
		Results: make([]CoordinateResult, 0, len(input.Raw)),
	}
	for _, raw := range input.Raw {
		result := CoordinateResult{Raw: raw}

		coord, err := valueobject.ParseCoordinate(raw, order)
		if err != nil {
			result.ErrorCode = domainerror.CoordinateErrorCode(err)
			result.Error = err.Error()
			output.FailedCount++
		} else {
			result.Coordinate = &coord
			output.ParsedCount++
		}

		output.Results = append(output.Results, result)
	}

	return output, nil
}
