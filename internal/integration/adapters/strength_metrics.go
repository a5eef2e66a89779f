// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/strength-check/backend/internal/domain/valueobject"
)

// StrengthMetrics exposes password evaluation counters to Prometheus.
type StrengthMetrics struct {
	EvaluationsTotal       *prometheus.CounterVec
	CriterionFailuresTotal *prometheus.CounterVec
	RecordFailuresTotal    prometheus.Counter
	RateLimitHitsTotal     *prometheus.CounterVec
}

// NewStrengthMetrics registers the counters on reg.
func NewStrengthMetrics(reg prometheus.Registerer) *StrengthMetrics {
	factory := promauto.With(reg)

	return &StrengthMetrics{
		EvaluationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "strength_check_evaluations_total",
				Help: "Total number of password evaluations",
			},
			[]string{"source", "score"},
		),
		CriterionFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "strength_check_criterion_failures_total",
				Help: "Total number of evaluations failing each criterion",
			},
			[]string{"criterion"},
		),
		RecordFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "strength_check_record_failures_total",
				Help: "Total number of evaluations that could not be recorded",
			},
		),
		RateLimitHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "strength_check_rate_limit_hits_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
			[]string{"route"},
		),
	}
}

// ObserveEvaluation counts one evaluation for the given source.
func (m *StrengthMetrics) ObserveEvaluation(source string, evaluation valueobject.PasswordEvaluation) {
	m.EvaluationsTotal.WithLabelValues(source, strconv.Itoa(evaluation.Score)).Inc()
	for _, criterion := range evaluation.FailedCriteria {
		m.CriterionFailuresTotal.WithLabelValues(string(criterion)).Inc()
	}
}

// ObserveRecordFailure counts an evaluation that could not be stored.
func (m *StrengthMetrics) ObserveRecordFailure() {
	m.RecordFailuresTotal.Inc()
}

// ObserveRateLimitHit counts a rejected request.
func (m *StrengthMetrics) ObserveRateLimitHit(route string) {
	m.RateLimitHitsTotal.WithLabelValues(route).Inc()
}
