package adapter

import "github.com/strength-check/backend/internal/domain/valueobject"

// StrengthMetrics records counters for password evaluations.
type StrengthMetrics interface {
	// ObserveEvaluation counts one evaluation for the given source.
	ObserveEvaluation(source string, evaluation valueobject.PasswordEvaluation)

	// ObserveRecordFailure counts an evaluation that could not be stored.
	ObserveRecordFailure()
}
