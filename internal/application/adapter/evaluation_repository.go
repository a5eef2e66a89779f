// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/strength-check/backend/internal/domain/entity"
	"github.com/strength-check/backend/internal/domain/valueobject"
)

// EvaluationRepository defines the interface for evaluation record persistence.
type EvaluationRepository interface {
	// Create stores an evaluation record.
	Create(ctx context.Context, record *entity.EvaluationRecord) error

	// CountByScore returns the number of records per score.
	CountByScore(ctx context.Context) (map[int]int64, error)

	// CountByFailedCriterion returns the number of records that failed each criterion.
	CountByFailedCriterion(ctx context.Context) (map[valueobject.PasswordCriterion]int64, error)
}
