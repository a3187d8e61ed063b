package beatmap

import (
	"fmt"

	"github.com/Ding-Daniel/osuclone/internal/game"
)

// Note is one scheduled target as authored: a hit time in milliseconds and a
// position normalized to the unit square. Scale widens or narrows the target
// relative to the configured base radius; zero means unset and defaults to 1.
type Note struct {
	Ms    float64 `json:"ms"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale,omitempty"`
}

// Chart is a parsed beatmap. Notes are required to be sorted ascending by Ms;
// equal times form a chord and every entry stays a distinct note.
type Chart struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Audio  string `json:"audio,omitempty"`
	Notes  []Note `json:"notes"`
}

const (
	MinScale = 0.6
	MaxScale = 1.6
)

// Validate fails fast on malformed content. The sweeper and the end check
// both assume sorted non-negative times, so a bad chart is rejected at load
// rather than corrected at runtime.
func (c *Chart) Validate() error {
	if len(c.Notes) == 0 {
		return fmt.Errorf("chart %q has no notes", c.Title)
	}
	prev := 0.0
	for i, n := range c.Notes {
		if n.Ms < 0 {
			return fmt.Errorf("note %d: negative time %vms", i, n.Ms)
		}
		if n.Ms < prev {
			return fmt.Errorf("note %d: time %vms out of order after %vms", i, n.Ms, prev)
		}
		if n.X < 0 || n.X > 1 || n.Y < 0 || n.Y > 1 {
			return fmt.Errorf("note %d: position (%v, %v) outside the unit square", i, n.X, n.Y)
		}
		if n.Scale != 0 && (n.Scale < MinScale || n.Scale > MaxScale) {
			return fmt.Errorf("note %d: scale %v outside [%v, %v]", i, n.Scale, MinScale, MaxScale)
		}
		prev = n.Ms
	}
	return nil
}

// Project derives the runtime notes for a viewport, mapping normalized
// coordinates to pixels and scaling radii against the reference dimension.
func Project(c *Chart, width, height float64, t game.Timing) []*game.Note {
	notes := make([]*game.Note, len(c.Notes))
	for i, d := range c.Notes {
		n := &game.Note{Seq: i, Ms: d.Ms}
		place(n, d, width, height, t)
		notes[i] = n
	}
	return notes
}

// Reproject recomputes positions and radii in place after a viewport change.
// Lifecycle state and judgement fields are untouched, so a resize mid-run
// moves still-approaching targets without forgetting anything already judged.
func Reproject(notes []*game.Note, c *Chart, width, height float64, t game.Timing) {
	for i, n := range notes {
		place(n, c.Notes[i], width, height, t)
	}
}

func place(n *game.Note, d Note, width, height float64, t game.Timing) {
	scale := d.Scale
	if scale == 0 {
		scale = 1
	}
	minDim := width
	if height < minDim {
		minDim = height
	}
	n.Pos = game.Vec2{X: d.X * width, Y: d.Y * height}
	n.Radius = t.BaseRadius * scale * minDim / game.RefMinDim
}
