package clock

import "time"

// ManualProvider is a hand-driven time source for deterministic tests and
// replays. It only moves when told to.
type ManualProvider struct {
	now time.Time
}

func NewManual() *ManualProvider {
	return &ManualProvider{now: time.Unix(0, 0)}
}

func (m *ManualProvider) Now() time.Time { return m.now }

func (m *ManualProvider) Set(t time.Time) { m.now = t }

// AdvanceMs moves the provider forward by ms milliseconds.
func (m *ManualProvider) AdvanceMs(ms float64) {
	m.now = m.now.Add(time.Duration(ms * float64(time.Millisecond)))
}
