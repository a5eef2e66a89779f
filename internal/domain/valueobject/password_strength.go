// Package valueobject contains immutable value objects for the domain layer.
package valueobject

import "unicode/utf8"

// PasswordCriterion identifies one independent check contributing to the strength score.
type PasswordCriterion string

const (
	CriterionLength  PasswordCriterion = "length"
	CriterionCase    PasswordCriterion = "case"
	CriterionDigit   PasswordCriterion = "digit"
	CriterionSpecial PasswordCriterion = "special"
)

const (
	// MinPasswordLength is the character count required by the length criterion.
	MinPasswordLength = 8
	// MaxStrengthScore is the score of a password satisfying every criterion.
	MaxStrengthScore = 4
	// SpecialCharacters is the closed set accepted by the special criterion.
	SpecialCharacters = "!@#$%^&*"
)

// Deficiency messages, one per criterion.
const (
	DeficiencyLength  = "At least 8 characters required."
	DeficiencyCase    = "Use both uppercase & lowercase letters."
	DeficiencyDigit   = "Add some numbers (0-9)."
	DeficiencySpecial = "Add a special character (!@#$%^&*)."
)

// PasswordCriteria lists the criteria in checklist order.
var PasswordCriteria = []PasswordCriterion{
	CriterionLength,
	CriterionCase,
	CriterionDigit,
	CriterionSpecial,
}

// DeficiencyMessage returns the human-readable message for a failed criterion.
func (c PasswordCriterion) DeficiencyMessage() string {
	switch c {
	case CriterionLength:
		return DeficiencyLength
	case CriterionCase:
		return DeficiencyCase
	case CriterionDigit:
		return DeficiencyDigit
	case CriterionSpecial:
		return DeficiencySpecial
	}
	return ""
}

// IsValid reports whether c is one of the known criteria.
func (c PasswordCriterion) IsValid() bool {
	return c.DeficiencyMessage() != ""
}

// PasswordEvaluation is the result of scoring a candidate password.
type PasswordEvaluation struct {
	Score          int
	Deficiencies   []string
	FailedCriteria []PasswordCriterion
}

// IsStrong reports whether every criterion was satisfied.
func (e PasswordEvaluation) IsStrong() bool {
	return e.Score == MaxStrengthScore
}

// Level returns the presentation level for the evaluation score.
func (e PasswordEvaluation) Level() StrengthLevel {
	return LevelForScore(e.Score)
}

// EvaluatePassword scores a password against the four criteria.
// Every criterion is checked; no input is rejected.
func EvaluatePassword(password string) PasswordEvaluation {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case isSpecialCharacter(r):
			hasSpecial = true
		}
	}

	satisfied := map[PasswordCriterion]bool{
		CriterionLength:  utf8.RuneCountInString(password) >= MinPasswordLength,
		CriterionCase:    hasUpper && hasLower,
		CriterionDigit:   hasDigit,
		CriterionSpecial: hasSpecial,
	}

	evaluation := PasswordEvaluation{
		Deficiencies:   make([]string, 0, len(PasswordCriteria)),
		FailedCriteria: make([]PasswordCriterion, 0, len(PasswordCriteria)),
	}
	for _, criterion := range PasswordCriteria {
		if satisfied[criterion] {
			evaluation.Score++
			continue
		}
		evaluation.Deficiencies = append(evaluation.Deficiencies, criterion.DeficiencyMessage())
		evaluation.FailedCriteria = append(evaluation.FailedCriteria, criterion)
	}

	return evaluation
}

func isSpecialCharacter(r rune) bool {
	for _, s := range SpecialCharacters {
		if r == s {
			return true
		}
	}
	return false
}
