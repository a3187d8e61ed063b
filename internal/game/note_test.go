package game

import "testing"

func TestHitStampsJudgementOnce(t *testing.T) {
	n := &Note{Ms: 1000}
	if n.State != StatePending || n.Judgement != JudgementNone || n.JudgedMs != 0 {
		t.Fatalf("fresh note not pristine: %+v", n)
	}

	if !n.Hit(1010, JudgementPerfect) {
		t.Fatal("pending note refused a hit")
	}
	if n.State != StateHit || n.JudgedMs != 1010 || n.OffsetMs != 10 || n.Judgement != JudgementPerfect {
		t.Fatalf("hit stamped wrong: %+v", n)
	}

	// Terminal: neither transition may restamp.
	if n.Hit(2000, JudgementOk) || n.Miss(2000) {
		t.Fatal("terminal note accepted a transition")
	}
	if n.JudgedMs != 1010 || n.Judgement != JudgementPerfect {
		t.Fatalf("judgement fields overwritten: %+v", n)
	}
}

func TestMissStampsOvershoot(t *testing.T) {
	n := &Note{Ms: 500}
	if !n.Miss(661) {
		t.Fatal("pending note refused a miss")
	}
	if n.State != StateMiss || n.JudgedMs != 661 || n.OffsetMs != 161 || n.Judgement != JudgementMiss {
		t.Fatalf("miss stamped wrong: %+v", n)
	}
	if n.Miss(700) || n.Hit(700, JudgementGood) {
		t.Fatal("missed note accepted a transition")
	}
}

func TestBaseScoreOrdering(t *testing.T) {
	if !(JudgementPerfect.BaseScore() > JudgementGood.BaseScore() &&
		JudgementGood.BaseScore() > JudgementOk.BaseScore() &&
		JudgementOk.BaseScore() > JudgementMiss.BaseScore()) {
		t.Fatal("base score ordering broken")
	}
	if JudgementMiss.BaseScore() != 0 {
		t.Fatalf("miss must score 0, got %v", JudgementMiss.BaseScore())
	}
}
