package game

type Judgement uint8

const (
	JudgementNone Judgement = iota
	JudgementPerfect
	JudgementGood
	JudgementOk
	JudgementMiss
)

var judgementNames = [...]string{"", "Perfect", "Good", "Ok", "Miss"}

func (j Judgement) String() string {
	if int(j) < len(judgementNames) {
		return judgementNames[j]
	}
	return ""
}

// BaseScore is the unmultiplied score value of a tier.
func (j Judgement) BaseScore() float64 {
	switch j {
	case JudgementPerfect:
		return 300
	case JudgementGood:
		return 100
	case JudgementOk:
		return 50
	}
	return 0
}

// AccuracyWeight is the tier's contribution to the weighted accuracy ratio.
func (j Judgement) AccuracyWeight() float64 {
	switch j {
	case JudgementPerfect:
		return 1.0
	case JudgementGood:
		return 0.75
	case JudgementOk:
		return 0.45
	}
	return 0
}
