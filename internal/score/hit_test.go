package score

import (
	"testing"

	"github.com/Ding-Daniel/osuclone/internal/game"
)

func testNotes() []*game.Note {
	return []*game.Note{
		{Seq: 0, Ms: 1000, Pos: game.Vec2{X: 100, Y: 100}, Radius: 34},
		{Seq: 1, Ms: 2000, Pos: game.Vec2{X: 100, Y: 100}, Radius: 34},
		{Seq: 2, Ms: 2000, Pos: game.Vec2{X: 700, Y: 100}, Radius: 34},
		{Seq: 3, Ms: 2080, Pos: game.Vec2{X: 120, Y: 100}, Radius: 34},
		{Seq: 4, Ms: 3000, Pos: game.Vec2{X: 400, Y: 300}, Radius: 34},
	}
}

type activation struct {
	X, Y float64
	Ms   float64
}

// Expected winner by Seq, -1 for no eligible note.
var resolveTests = map[activation]int{
	{X: 100, Y: 100, Ms: 1010}: 0,  // only note 0 is inside the window
	{X: 100, Y: 100, Ms: 2000}: 1,  // chord: spatial exclusivity picks the near one
	{X: 700, Y: 100, Ms: 2000}: 2,  // same chord, other position
	{X: 120, Y: 100, Ms: 2040}: 3,  // equal |dt|, nearer to cursor wins
	{X: 110, Y: 100, Ms: 2040}: 1,  // equal |dt| and equal distance, lowest Seq wins
	{X: 100, Y: 100, Ms: 2100}: 3,  // smaller |dt| beats smaller distance
	{X: 400, Y: 300, Ms: 3200}: -1, // 200ms late, outside the hit window
	{X: 50, Y: 500, Ms: 2000}:  -1, // nowhere near any circle
}

func TestResolve(t *testing.T) {
	scorer := DefaultScorer{Timing: game.DefaultTiming()}
	for input, expected := range resolveTests {
		notes := testNotes()
		note := scorer.Resolve(notes, game.Vec2{X: input.X, Y: input.Y}, input.Ms)
		if note == nil && expected == -1 {
			continue
		}
		if note == nil || note.Seq != expected {
			t.Log("input   ", input)
			t.Log("note    ", note)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestResolveIdempotentUntilMutation(t *testing.T) {
	scorer := DefaultScorer{Timing: game.DefaultTiming()}
	notes := testNotes()
	p := game.Vec2{X: 100, Y: 100}

	first := scorer.Resolve(notes, p, 2000)
	second := scorer.Resolve(notes, p, 2000)
	if first == nil || first != second {
		t.Fatalf("unchanged set resolved differently: %v then %v", first, second)
	}

	if !first.Hit(2000, game.JudgementPerfect) {
		t.Fatal("pending note refused the hit")
	}
	if again := scorer.Resolve(notes, p, 2000); again == first {
		t.Fatal("hit note was resolved a second time")
	}
}

func TestResolveNeverExceedsWindow(t *testing.T) {
	timing := game.DefaultTiming()
	scorer := DefaultScorer{Timing: timing}
	notes := testNotes()
	for ms := 0.0; ms <= 4000; ms += 7 {
		note := scorer.Resolve(notes, game.Vec2{X: 100, Y: 100}, ms)
		if note == nil {
			continue
		}
		dt := ms - note.Ms
		if dt < -timing.HitWindowMs || dt > timing.HitWindowMs {
			t.Log("ms  ", ms)
			t.Log("note", note.Seq, note.Ms)
			t.Fail()
		}
	}
}

var resolved *game.Note

func BenchmarkResolve(b *testing.B) {
	scorer := DefaultScorer{Timing: game.DefaultTiming()}
	notes := make([]*game.Note, 0, 2000)
	for i := 0; i < 2000; i++ {
		notes = append(notes, &game.Note{
			Seq: i, Ms: float64(i * 250),
			Pos:    game.Vec2{X: float64(i%8) * 100, Y: float64(i%6) * 100},
			Radius: 34,
		})
	}
	p := game.Vec2{X: 400, Y: 300}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		resolved = scorer.Resolve(notes, p, float64(n%500000))
	}
}
