package strength

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/strength-check/backend/internal/domain/entity"
	domainerror "github.com/strength-check/backend/internal/domain/error"
)

// DefaultMaxBatchSize is used when no batch size limit is configured.
const DefaultMaxBatchSize = 100

// EvaluateBatchInput represents the input for a batch evaluation.
type EvaluateBatchInput struct {
	Passwords []string
}

// EvaluateBatchOutput holds one result per input password, in input order.
type EvaluateBatchOutput struct {
	Results []*EvaluatePasswordOutput
}

// EvaluateBatchUseCase scores several passwords concurrently.
type EvaluateBatchUseCase struct {
	evaluateUseCase *EvaluatePasswordUseCase
	maxBatchSize    int
}

// NewEvaluateBatchUseCase creates a new EvaluateBatchUseCase instance.
func NewEvaluateBatchUseCase(evaluateUseCase *EvaluatePasswordUseCase, maxBatchSize int) *EvaluateBatchUseCase {
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &EvaluateBatchUseCase{
		evaluateUseCase: evaluateUseCase,
		maxBatchSize:    maxBatchSize,
	}
}

// Execute performs the batch evaluation.
func (uc *EvaluateBatchUseCase) Execute(ctx context.Context, input EvaluateBatchInput) (*EvaluateBatchOutput, error) {
	if len(input.Passwords) == 0 {
		return nil, domainerror.NewStrengthError(
			domainerror.ErrCodeEmptyBatch,
			"at least one password is required",
			domainerror.ErrEmptyBatch,
		)
	}
	if len(input.Passwords) > uc.maxBatchSize {
		return nil, domainerror.NewStrengthError(
			domainerror.ErrCodeBatchTooLarge,
			fmt.Sprintf("batch must not exceed %d passwords", uc.maxBatchSize),
			domainerror.ErrBatchTooLarge,
		)
	}

	// Reject the whole batch before recording anything.
	for i, password := range input.Passwords {
		if len(password) > MaxPasswordBytes {
			return nil, domainerror.NewStrengthError(
				domainerror.ErrCodePasswordTooLong,
				fmt.Sprintf("password at index %d must not exceed %d bytes", i, MaxPasswordBytes),
				domainerror.ErrPasswordTooLong,
			)
		}
	}

	results := make([]*EvaluatePasswordOutput, len(input.Passwords))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, password := range input.Passwords {
		g.Go(func() error {
			output, err := uc.evaluateUseCase.Execute(gctx, EvaluatePasswordInput{
				Password: password,
				Source:   entity.EvaluationSourceBatch,
			})
			if err != nil {
				return fmt.Errorf("failed to evaluate password at index %d: %w", i, err)
			}
			results[i] = output
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &EvaluateBatchOutput{Results: results}, nil
}
