package game

// Chart is the runtime note collection for one run. Notes are ordered
// ascending by Ms (chords may share an Ms) and Seq mirrors the slice index.
// The sweep cursor tracks the contiguous prefix of notes whose hit windows
// have fully elapsed; everything before it is terminal.
type Chart struct {
	Notes []*Note

	sweepFrom int
}

func NewChart(notes []*Note) *Chart {
	return &Chart{Notes: notes}
}

// Sweep force-misses every still-pending note whose hit window has fully
// elapsed at nowMs, and returns the notes it transitioned. A note swept once
// is terminal and cannot be swept or hit again, so calling Sweep twice with
// the same nowMs returns nothing the second time.
func (c *Chart) Sweep(nowMs float64, t Timing) []*Note {
	var missed []*Note
	i := c.sweepFrom
	for ; i < len(c.Notes); i++ {
		n := c.Notes[i]
		if nowMs <= n.Ms+t.HitWindowMs {
			break
		}
		if n.Miss(nowMs) {
			missed = append(missed, n)
		}
	}
	c.sweepFrom = i
	return missed
}

// Pending counts the notes still awaiting judgement. Notes before the sweep
// cursor are terminal by construction and are skipped.
func (c *Chart) Pending() int {
	p := 0
	for _, n := range c.Notes[c.sweepFrom:] {
		if n.State == StatePending {
			p++
		}
	}
	return p
}

// Last returns the latest-scheduled note, or nil for an empty chart.
func (c *Chart) Last() *Note {
	if len(c.Notes) == 0 {
		return nil
	}
	return c.Notes[len(c.Notes)-1]
}

// Reset returns every note to pending and rewinds the sweep cursor. Position
// and radius are left alone; they only change on a reprojection.
func (c *Chart) Reset() {
	for _, n := range c.Notes {
		n.State = StatePending
		n.JudgedMs = 0
		n.OffsetMs = 0
		n.Judgement = JudgementNone
	}
	c.sweepFrom = 0
}
