// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/strength-check/backend/internal/domain/valueobject"
)

// EvaluationSource identifies the presentation layer that submitted a password.
type EvaluationSource string

const (
	EvaluationSourceAPI   EvaluationSource = "api"
	EvaluationSourceBatch EvaluationSource = "batch"
	EvaluationSourceCLI   EvaluationSource = "cli"
)

// EvaluationRecord is the stored outcome of one password evaluation.
// The password itself is never part of the record.
type EvaluationRecord struct {
	ID             uuid.UUID
	Score          int
	FailedCriteria []valueobject.PasswordCriterion
	PasswordLength int
	Source         EvaluationSource
	CreatedAt      time.Time
}

// NewEvaluationRecord creates a record from an evaluation of password.
func NewEvaluationRecord(password string, evaluation valueobject.PasswordEvaluation, source EvaluationSource) *EvaluationRecord {
	failed := make([]valueobject.PasswordCriterion, len(evaluation.FailedCriteria))
	copy(failed, evaluation.FailedCriteria)

	return &EvaluationRecord{
		ID:             uuid.New(),
		Score:          evaluation.Score,
		FailedCriteria: failed,
		PasswordLength: utf8.RuneCountInString(password),
		Source:         source,
		CreatedAt:      time.Now().UTC(),
	}
}
