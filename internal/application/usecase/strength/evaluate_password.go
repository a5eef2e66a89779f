// Package strength contains password strength use cases.
package strength

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/strength-check/backend/internal/application/adapter"
	"github.com/strength-check/backend/internal/domain/entity"
	domainerror "github.com/strength-check/backend/internal/domain/error"
	"github.com/strength-check/backend/internal/domain/valueobject"
)

// MaxPasswordBytes is the largest password accepted for evaluation.
const MaxPasswordBytes = 4096

// EvaluatePasswordInput represents the input for a password evaluation.
type EvaluatePasswordInput struct {
	Password string
	Source   entity.EvaluationSource
}

// EvaluatePasswordOutput represents the output of a password evaluation.
type EvaluatePasswordOutput struct {
	Evaluation valueobject.PasswordEvaluation
	Level      valueobject.StrengthLevel
}

// EvaluatePasswordUseCase scores a password and records the outcome.
type EvaluatePasswordUseCase struct {
	evaluationRepo adapter.EvaluationRepository
	metrics        adapter.StrengthMetrics
}

// NewEvaluatePasswordUseCase creates a new EvaluatePasswordUseCase instance.
// evaluationRepo and metrics may be nil, in which case nothing is recorded.
func NewEvaluatePasswordUseCase(evaluationRepo adapter.EvaluationRepository, metrics adapter.StrengthMetrics) *EvaluatePasswordUseCase {
	return &EvaluatePasswordUseCase{
		evaluationRepo: evaluationRepo,
		metrics:        metrics,
	}
}

// Execute performs the password evaluation.
func (uc *EvaluatePasswordUseCase) Execute(ctx context.Context, input EvaluatePasswordInput) (*EvaluatePasswordOutput, error) {
	if len(input.Password) > MaxPasswordBytes {
		return nil, domainerror.NewStrengthError(
			domainerror.ErrCodePasswordTooLong,
			fmt.Sprintf("password must not exceed %d bytes", MaxPasswordBytes),
			domainerror.ErrPasswordTooLong,
		)
	}

	source := input.Source
	if source == "" {
		source = entity.EvaluationSourceAPI
	}

	evaluation := valueobject.EvaluatePassword(input.Password)

	if uc.metrics != nil {
		uc.metrics.ObserveEvaluation(string(source), evaluation)
	}

	if uc.evaluationRepo != nil {
		record := entity.NewEvaluationRecord(input.Password, evaluation, source)
		if err := uc.evaluationRepo.Create(ctx, record); err != nil {
			// The score is still valid; a lost record only affects statistics.
			slog.Warn("Failed to record password evaluation",
				"error", err,
				"score", evaluation.Score,
				"source", source,
			)
			if uc.metrics != nil {
				uc.metrics.ObserveRecordFailure()
			}
		}
	}

	return &EvaluatePasswordOutput{
		Evaluation: evaluation,
		Level:      evaluation.Level(),
	}, nil
}
