package score

import "github.com/Ding-Daniel/osuclone/internal/game"

type Scorer interface {
	// Resolve picks the one pending note an activation at p satisfies at
	// nowMs, or nil when nothing is eligible. A nil result is informational,
	// not an error; nothing is mutated and the combo is not broken.
	Resolve(notes []*game.Note, p game.Vec2, nowMs float64) *game.Note

	// Judge classifies a resolved timing offset. It never produces a miss;
	// only the sweep does that.
	Judge(offsetMs float64) game.Judgement
}
