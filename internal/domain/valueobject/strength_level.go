package valueobject

// StrengthLevel is the presentation of a strength score.
type StrengthLevel struct {
	Score      int
	Label      string
	Color      string
	Percentage int
	Verdict    string
}

const (
	verdictStrong = "Your password is strong."
	verdictMedium = "Not bad, but can be stronger."
	verdictWeak   = "Weak password, easy to guess."
)

var strengthLevels = [MaxStrengthScore + 1]StrengthLevel{
	{Score: 0, Label: "Very Weak", Color: "#ff0033", Percentage: 0, Verdict: verdictWeak},
	{Score: 1, Label: "Weak", Color: "#ff6600", Percentage: 25, Verdict: verdictWeak},
	{Score: 2, Label: "Fair", Color: "#ffcc00", Percentage: 50, Verdict: verdictWeak},
	{Score: 3, Label: "Medium", Color: "#3399ff", Percentage: 75, Verdict: verdictMedium},
	{Score: 4, Label: "Strong", Color: "#33cc33", Percentage: 100, Verdict: verdictStrong},
}

// LevelForScore maps a score to its level. Out-of-range scores are clamped.
func LevelForScore(score int) StrengthLevel {
	if score < 0 {
		score = 0
	}
	if score > MaxStrengthScore {
		score = MaxStrengthScore
	}
	return strengthLevels[score]
}
