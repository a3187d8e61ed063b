package game

// Timing holds the constants every scheduling decision derives from.
// Components receive it explicitly; nothing reads it from package state.
type Timing struct {
	PreemptMs   float64 // lead time before Ms during which a note approaches
	HitWindowMs float64 // symmetric activation window around Ms
	PerfectMs   float64
	GoodMs      float64
	AfterMs     float64 // fade-out time after judgement
	EndGraceMs  float64 // quiet time past the last window before completion
	BaseRadius  float64 // note radius at RefMinDim, before per-note scale
	ComboBonus  float64 // multiplier gain per combo step
}

// RefMinDim is the viewport min-dimension at which BaseRadius applies as-is.
const RefMinDim = 600.0

func DefaultTiming() Timing {
	return Timing{
		PreemptMs:   900,
		HitWindowMs: 160,
		PerfectMs:   45,
		GoodMs:      90,
		AfterMs:     300,
		EndGraceMs:  1000,
		BaseRadius:  34,
		ComboBonus:  0.05,
	}
}

// Visible reports whether nowMs falls inside [Ms-preempt, Ms+hit+after].
// Presentation consults this; the resolver only ever uses Hittable.
func (t Timing) Visible(n *Note, nowMs float64) bool {
	return nowMs >= n.Ms-t.PreemptMs && nowMs <= n.Ms+t.HitWindowMs+t.AfterMs
}

// Hittable reports whether a pending note can still take an activation at
// nowMs, i.e. nowMs is inside [Ms-hit, Ms+hit] and the note is pending.
func (t Timing) Hittable(n *Note, nowMs float64) bool {
	if n.State != StatePending {
		return false
	}
	d := nowMs - n.Ms
	return d >= -t.HitWindowMs && d <= t.HitWindowMs
}

// Progress is the normalized [0,1] presentation progress: the approach
// run-up while pending, the fade-out keyed to JudgedMs once judged. Pure in
// its inputs; it keeps no state of its own.
func (t Timing) Progress(n *Note, nowMs float64) float64 {
	if n.State == StatePending {
		if t.PreemptMs <= 0 {
			return 1
		}
		return clamp01((nowMs - (n.Ms - t.PreemptMs)) / t.PreemptMs)
	}
	if t.AfterMs <= 0 {
		return 1
	}
	return clamp01((nowMs - n.JudgedMs) / t.AfterMs)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
