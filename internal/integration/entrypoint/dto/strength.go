package dto

import (
	"github.com/strength-check/backend/internal/application/usecase/strength"
	"github.com/strength-check/backend/internal/domain/valueobject"
)

// EvaluatePasswordRequest represents the request body for a single evaluation.
// Password is a pointer so that an empty password is accepted while a missing field is not.
type EvaluatePasswordRequest struct {
	Password *string `json:"password" binding:"required"`
}

// EvaluateBatchRequest represents the request body for a batch evaluation.
type EvaluateBatchRequest struct {
	Passwords []string `json:"passwords" binding:"required"`
}

// EvaluationResponse represents a single password evaluation in API responses.
type EvaluationResponse struct {
	Score          int      `json:"score"`
	Label          string   `json:"label"`
	Color          string   `json:"color"`
	Percentage     int      `json:"percentage"`
	Verdict        string   `json:"verdict"`
	Deficiencies   []string `json:"deficiencies"`
	FailedCriteria []string `json:"failed_criteria"`
}

// EvaluateBatchResponse represents the response for a batch evaluation.
type EvaluateBatchResponse struct {
	Results []EvaluationResponse `json:"results"`
}

// ScoreBucketResponse is the number of evaluations with one score.
type ScoreBucketResponse struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// StrengthStatsResponse represents the response for evaluation statistics.
type StrengthStatsResponse struct {
	Total            int64                 `json:"total"`
	ByScore          []ScoreBucketResponse `json:"by_score"`
	ByFailedCriteria map[string]int64      `json:"by_failed_criteria"`
	StrongPercent    string                `json:"strong_percent"`
}

// ToEvaluationResponse converts an evaluation output to an EvaluationResponse DTO.
func ToEvaluationResponse(output *strength.EvaluatePasswordOutput) EvaluationResponse {
	failed := make([]string, len(output.Evaluation.FailedCriteria))
	for i, criterion := range output.Evaluation.FailedCriteria {
		failed[i] = string(criterion)
	}

	deficiencies := output.Evaluation.Deficiencies
	if deficiencies == nil {
		deficiencies = []string{}
	}

	return EvaluationResponse{
		Score:          output.Evaluation.Score,
		Label:          output.Level.Label,
		Color:          output.Level.Color,
		Percentage:     output.Level.Percentage,
		Verdict:        output.Level.Verdict,
		Deficiencies:   deficiencies,
		FailedCriteria: failed,
	}
}

// ToEvaluateBatchResponse converts a batch output to an EvaluateBatchResponse DTO.
func ToEvaluateBatchResponse(output *strength.EvaluateBatchOutput) EvaluateBatchResponse {
	results := make([]EvaluationResponse, len(output.Results))
	for i, result := range output.Results {
		results[i] = ToEvaluationResponse(result)
	}
	return EvaluateBatchResponse{Results: results}
}

// ToStrengthStatsResponse converts statistics to a StrengthStatsResponse DTO.
func ToStrengthStatsResponse(stats valueobject.StrengthStats) StrengthStatsResponse {
	buckets := make([]ScoreBucketResponse, 0, valueobject.MaxStrengthScore+1)
	for score := 0; score <= valueobject.MaxStrengthScore; score++ {
		buckets = append(buckets, ScoreBucketResponse{
			Score: score,
			Label: valueobject.LevelForScore(score).Label,
			Count: stats.ByScore[score],
		})
	}

	byCriterion := make(map[string]int64, len(stats.ByFailedCriteria))
	for criterion, count := range stats.ByFailedCriteria {
		byCriterion[string(criterion)] = count
	}

	return StrengthStatsResponse{
		Total:            stats.Total,
		ByScore:          buckets,
		ByFailedCriteria: byCriterion,
		StrongPercent:    stats.StrongPercent.StringFixed(2),
	}
}
