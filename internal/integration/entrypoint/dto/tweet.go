package dto

import (
	"github.com/strength-check/backend/internal/application/usecase/tweet"
	"github.com/strength-check/backend/internal/domain/valueobject"
)

// ParseCoordinatesRequest represents the request body for coordinate parsing.
type ParseCoordinatesRequest struct {
	Coordinates []string `json:"coordinates" binding:"required"`
	Order       string   `json:"order,omitempty" binding:"omitempty,oneof=lat_lon lon_lat"`
}

// ValidateSchemaRequest represents the request body for a tweet schema check.
type ValidateSchemaRequest struct {
	Columns []string `json:"columns" binding:"required"`
}

// CoordinateResponse represents a parsed coordinate.
type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CoordinateResultResponse represents the outcome for one raw coordinate cell.
type CoordinateResultResponse struct {
	Raw        string              `json:"raw"`
	Coordinate *CoordinateResponse `json:"coordinate,omitempty"`
	ErrorCode  string              `json:"error_code,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// ParseCoordinatesResponse represents the response for coordinate parsing.
type ParseCoordinatesResponse struct {
	Results     []CoordinateResultResponse `json:"results"`
	ParsedCount int                        `json:"parsed_count"`
	FailedCount int                        `json:"failed_count"`
}

// TweetSchemaResponse represents the response for a tweet schema check.
type TweetSchemaResponse struct {
	Status         string   `json:"status"`
	Missing        []string `json:"missing"`
	HasAirline     bool     `json:"has_airline"`
	HasCoordinates bool     `json:"has_coordinates"`
	HasTimestamps  bool     `json:"has_timestamps"`
}

// ToParseCoordinatesResponse converts a parse output to a ParseCoordinatesResponse DTO.
func ToParseCoordinatesResponse(output *tweet.ParseCoordinatesOutput) ParseCoordinatesResponse {
	results := make([]CoordinateResultResponse, len(output.Results))
	for i, result := range output.Results {
		results[i] = CoordinateResultResponse{
			Raw:       result.Raw,
			ErrorCode: string(result.ErrorCode),
			Error:     result.Error,
		}
		if result.Coordinate != nil {
			results[i].Coordinate = &CoordinateResponse{
				Latitude:  result.Coordinate.Latitude,
				Longitude: result.Coordinate.Longitude,
			}
		}
	}

	return ParseCoordinatesResponse{
		Results:     results,
		ParsedCount: output.ParsedCount,
		FailedCount: output.FailedCount,
	}
}

// ToTweetSchemaResponse converts a schema result to a TweetSchemaResponse DTO.
func ToTweetSchemaResponse(result *valueobject.TweetSchemaResult) TweetSchemaResponse {
	missing := result.Missing
	if missing == nil {
		missing = []string{}
	}

	return TweetSchemaResponse{
		Status:         string(result.Status),
		Missing:        missing,
		HasAirline:     result.HasAirline,
		HasCoordinates: result.HasCoordinates,
		HasTimestamps:  result.HasTimestamps,
	}
}
