package score

import "github.com/Ding-Daniel/osuclone/internal/game"

// Stats is the running accumulation for one run: fractional score, the
// current and best combo, and per-tier counts. Zero value is a fresh run.
type Stats struct {
	Score    float64
	Combo    int
	MaxCombo int

	Perfect int
	Good    int
	Ok      int
	Miss    int

	TotalJudged int
	TotalHit    int
}

// Hit applies a resolved judgement: the combo grows before the multiplier is
// computed, so the first hit after a miss scores at exactly 1x.
func (s *Stats) Hit(j game.Judgement, comboBonus float64) {
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	multiplier := 1 + float64(s.Combo-1)*comboBonus
	s.Score += j.BaseScore() * multiplier

	switch j {
	case game.JudgementPerfect:
		s.Perfect++
	case game.JudgementGood:
		s.Good++
	case game.JudgementOk:
		s.Ok++
	}
	s.TotalJudged++
	s.TotalHit++
}

// Missed applies a swept miss: the combo resets, the best combo stands, and
// no score is added.
func (s *Stats) Missed() {
	s.Combo = 0
	s.Miss++
	s.TotalJudged++
}

// Accuracy is the weighted tier ratio in [0, 1]. The denominator guard keeps
// it 0 before anything has been judged.
func (s *Stats) Accuracy() float64 {
	judged := s.TotalJudged
	if judged < 1 {
		judged = 1
	}
	weighted := float64(s.Perfect)*game.JudgementPerfect.AccuracyWeight() +
		float64(s.Good)*game.JudgementGood.AccuracyWeight() +
		float64(s.Ok)*game.JudgementOk.AccuracyWeight()
	return weighted / float64(judged)
}
