package strength

import (
	"context"

	"github.com/strength-check/backend/internal/application/adapter"
	domainerror "github.com/strength-check/backend/internal/domain/error"
	"github.com/strength-check/backend/internal/domain/valueobject"
)

// GetStatsOutput represents the output of the statistics query.
type GetStatsOutput struct {
	Stats valueobject.StrengthStats
}

// GetStatsUseCase summarises recorded evaluations.
type GetStatsUseCase struct {
	evaluationRepo adapter.EvaluationRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(evaluationRepo adapter.EvaluationRepository) *GetStatsUseCase {
	return &GetStatsUseCase{
		evaluationRepo: evaluationRepo,
	}
}

// Execute reads the evaluation statistics.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*GetStatsOutput, error) {
	if uc.evaluationRepo == nil {
		return nil, domainerror.NewStrengthError(
			domainerror.ErrCodeStatsUnavailable,
			"evaluation statistics are not recorded",
			domainerror.ErrStatsUnavailable,
		)
	}

	byScore, err := uc.evaluationRepo.CountByScore(ctx)
	if err != nil {
		return nil, domainerror.NewStrengthError(
			domainerror.ErrCodeStatsUnavailable,
			"failed to count evaluations by score",
			err,
		)
	}

	byCriterion, err := uc.evaluationRepo.CountByFailedCriterion(ctx)
	if err != nil {
		return nil, domainerror.NewStrengthError(
			domainerror.ErrCodeStatsUnavailable,
			"failed to count evaluations by criterion",
			err,
		)
	}

	return &GetStatsOutput{
		Stats: valueobject.NewStrengthStats(byScore, byCriterion),
	}, nil
}
