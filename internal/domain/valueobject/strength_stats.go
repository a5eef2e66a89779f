package valueobject

import "github.com/shopspring/decimal"

// StrengthStats summarises recorded password evaluations.
type StrengthStats struct {
	Total            int64
	ByScore          map[int]int64
	ByFailedCriteria map[PasswordCriterion]int64
	StrongPercent    decimal.Decimal
}

// NewStrengthStats builds statistics from per-score and per-criterion counts.
// Every score bucket and every criterion is present in the result, zero when absent.
func NewStrengthStats(byScore map[int]int64, byCriterion map[PasswordCriterion]int64) StrengthStats {
	stats := StrengthStats{
		ByScore:          make(map[int]int64, MaxStrengthScore+1),
		ByFailedCriteria: make(map[PasswordCriterion]int64, len(PasswordCriteria)),
		StrongPercent:    decimal.Zero,
	}

	for score := 0; score <= MaxStrengthScore; score++ {
		count := byScore[score]
		stats.ByScore[score] = count
		stats.Total += count
	}
	for _, criterion := range PasswordCriteria {
		stats.ByFailedCriteria[criterion] = byCriterion[criterion]
	}

	if stats.Total > 0 {
		stats.StrongPercent = decimal.NewFromInt(stats.ByScore[MaxStrengthScore]).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(stats.Total)).
			Round(2)
	}

	return stats
}
