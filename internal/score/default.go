package score

import (
	"math"

	"github.com/Ding-Daniel/osuclone/internal/game"
)

type DefaultScorer struct {
	Timing game.Timing
}

// Resolve scans the time-sorted notes for eligible candidates: pending,
// |nowMs - Ms| inside the hit window, and the activation point inside the
// note's circle. The winner is the minimum by the ordered key
// (|dt|, squared distance, Seq): smallest timing error first, nearest to the
// cursor on a timing tie, and beatmap order as the final deterministic
// fallback for an exact double tie. The scan replaces the candidate only on
// a strictly smaller key, so the lowest Seq of a full tie wins for free.
func (s *DefaultScorer) Resolve(notes []*game.Note, p game.Vec2, nowMs float64) *game.Note {
	var best *game.Note
	bestDt := math.MaxFloat64
	bestDistSq := math.MaxFloat64

	for _, note := range notes {
		if note.Ms-s.Timing.HitWindowMs > nowMs {
			// Sorted input; every later note is further out still.
			break
		}
		if note.State != game.StatePending {
			continue
		}
		dt := math.Abs(nowMs - note.Ms)
		if dt > s.Timing.HitWindowMs {
			continue
		}
		distSq := p.DistSq(note.Pos)
		if distSq > note.Radius*note.Radius {
			continue
		}
		if dt < bestDt || (dt == bestDt && distSq < bestDistSq) {
			best = note
			bestDt = dt
			bestDistSq = distSq
		}
	}
	return best
}

// Judge maps an absolute offset to a tier. The caller guarantees the offset
// is inside the hit window, so anything past the good threshold is Ok.
func (s *DefaultScorer) Judge(offsetMs float64) game.Judgement {
	d := math.Abs(offsetMs)
	switch {
	case d <= s.Timing.PerfectMs:
		return game.JudgementPerfect
	case d <= s.Timing.GoodMs:
		return game.JudgementGood
	default:
		return game.JudgementOk
	}
}
