// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/strength-check/backend/internal/domain/entity"
	"github.com/strength-check/backend/internal/domain/valueobject"
)

// EvaluationRecordModel represents the evaluation_records table in the database.
type EvaluationRecordModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Score          int       `gorm:"not null;index"`
	FailedLength   bool      `gorm:"not null;default:false"`
	FailedCase     bool      `gorm:"not null;default:false"`
	FailedDigit    bool      `gorm:"not null;default:false"`
	FailedSpecial  bool      `gorm:"not null;default:false"`
	PasswordLength int       `gorm:"not null"`
	Source         string    `gorm:"type:varchar(10);not null"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the EvaluationRecordModel.
func (EvaluationRecordModel) TableName() string {
	return "evaluation_records"
}

// ToEntity converts an EvaluationRecordModel to a domain EvaluationRecord entity.
func (m *EvaluationRecordModel) ToEntity() *entity.EvaluationRecord {
	failed := make([]valueobject.PasswordCriterion, 0, len(valueobject.PasswordCriteria))
	flags := map[valueobject.PasswordCriterion]bool{
		valueobject.CriterionLength:  m.FailedLength,
		valueobject.CriterionCase:    m.FailedCase,
		valueobject.CriterionDigit:   m.FailedDigit,
		valueobject.CriterionSpecial: m.FailedSpecial,
	}
	for _, criterion := range valueobject.PasswordCriteria {
		if flags[criterion] {
			failed = append(failed, criterion)
		}
	}

	return &entity.EvaluationRecord{
		ID:             m.ID,
		Score:          m.Score,
		FailedCriteria: failed,
		PasswordLength: m.PasswordLength,
		Source:         entity.EvaluationSource(m.Source),
		CreatedAt:      m.CreatedAt,
	}
}

// EvaluationRecordFromEntity creates an EvaluationRecordModel from a domain EvaluationRecord entity.
func EvaluationRecordFromEntity(record *entity.EvaluationRecord) *EvaluationRecordModel {
	m := &EvaluationRecordModel{
		ID:             record.ID,
		Score:          record.Score,
		PasswordLength: record.PasswordLength,
		Source:         string(record.Source),
		CreatedAt:      record.CreatedAt,
	}

	for _, criterion := range record.FailedCriteria {
		switch criterion {
		case valueobject.CriterionLength:
			m.FailedLength = true
		case valueobject.CriterionCase:
			m.FailedCase = true
		case valueobject.CriterionDigit:
			m.FailedDigit = true
		case valueobject.CriterionSpecial:
			m.FailedSpecial = true
		}
	}

	return m
}
