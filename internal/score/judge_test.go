package score

import (
	"testing"

	"github.com/Ding-Daniel/osuclone/internal/game"
)

// Thresholds are inclusive and symmetric around zero offset.
var judgeTests = map[float64]game.Judgement{
	0:      game.JudgementPerfect,
	10:     game.JudgementPerfect,
	-45:    game.JudgementPerfect,
	45:     game.JudgementPerfect,
	45.001: game.JudgementGood,
	-60:    game.JudgementGood,
	90:     game.JudgementGood,
	-90:    game.JudgementGood,
	90.001: game.JudgementOk,
	120:    game.JudgementOk,
	-159:   game.JudgementOk,
	160:    game.JudgementOk,
}

func TestJudge(t *testing.T) {
	scorer := DefaultScorer{Timing: game.DefaultTiming()}
	for offset, expected := range judgeTests {
		j := scorer.Judge(offset)
		if j != expected {
			t.Log("offset  ", offset)
			t.Log("judged  ", j)
			t.Log("expected", expected)
			t.Fail()
		}
		if j == game.JudgementMiss {
			t.Log("Judge produced a miss for", offset)
			t.Fail()
		}
	}
}
