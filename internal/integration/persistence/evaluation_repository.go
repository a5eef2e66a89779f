// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/strength-check/backend/internal/application/adapter"
	"github.com/strength-check/backend/internal/domain/entity"
	"github.com/strength-check/backend/internal/domain/valueobject"
	"github.com/strength-check/backend/internal/integration/persistence/model"
)

// evaluationRepository implements the adapter.EvaluationRepository interface.
type evaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository creates a new evaluation repository instance.
func NewEvaluationRepository(db *gorm.DB) adapter.EvaluationRepository {
	return &evaluationRepository{
		db: db,
	}
}

// Create stores an evaluation record.
func (r *evaluationRepository) Create(ctx context.Context, record *entity.EvaluationRecord) error {
	recordModel := model.EvaluationRecordFromEntity(record)
	if err := r.db.WithContext(ctx).Create(recordModel).Error; err != nil {
		return fmt.Errorf("failed to create evaluation record: %w", err)
	}
	return nil
}

// CountByScore returns the number of records per score.
func (r *evaluationRepository) CountByScore(ctx context.Context) (map[int]int64, error) {
	var rows []struct {
		Score int   `gorm:"column:score"`
		Total int64 `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.EvaluationRecordModel{}).
		Select("score, COUNT(*) as total").
		Group("score").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count evaluations by score: %w", err)
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.Score] = row.Total
	}
	return counts, nil
}

// CountByFailedCriterion returns the number of records that failed each criterion.
func (r *evaluationRepository) CountByFailedCriterion(ctx context.Context) (map[valueobject.PasswordCriterion]int64, error) {
	var result struct {
		Length  int64 `gorm:"column:failed_length"`
		Case    int64 `gorm:"column:failed_case"`
		Digit   int64 `gorm:"column:failed_digit"`
		Special int64 `gorm:"column:failed_special"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.EvaluationRecordModel{}).
		Select(`COALESCE(SUM(CASE WHEN failed_length THEN 1 ELSE 0 END), 0) as failed_length,
			COALESCE(SUM(CASE WHEN failed_case THEN 1 ELSE 0 END), 0) as failed_case,
			COALESCE(SUM(CASE WHEN failed_digit THEN 1 ELSE 0 END), 0) as failed_digit,
			COALESCE(SUM(CASE WHEN failed_special THEN 1 ELSE 0 END), 0) as failed_special`).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count evaluations by criterion: %w", err)
	}

	return map[valueobject.PasswordCriterion]int64{
		valueobject.CriterionLength:  result.Length,
		valueobject.CriterionCase:    result.Case,
		valueobject.CriterionDigit:   result.Digit,
		valueobject.CriterionSpecial: result.Special,
	}, nil
}
