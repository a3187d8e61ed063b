package game

type NoteState uint8

const (
	StatePending NoteState = iota
	StateHit
	StateMiss
)

func (s NoteState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateHit:
		return "hit"
	case StateMiss:
		return "miss"
	}
	return "invalid"
}

// Note is the runtime state of one scheduled target. Instances are rebuilt
// from the chart descriptors on load and on restart.
type Note struct {
	Seq    int     // chart order, also the final resolver tie-break
	Ms     float64 // the time the note should be hit
	Pos    Vec2
	Radius float64

	// This is state
	State     NoteState
	JudgedMs  float64
	OffsetMs  float64
	Judgement Judgement
}

// Hit moves a pending note to hit and stamps the judgement fields in the
// same step. Terminal notes refuse further transitions.
func (n *Note) Hit(nowMs float64, j Judgement) bool {
	if n.State != StatePending {
		return false
	}
	n.State = StateHit
	n.JudgedMs = nowMs
	n.OffsetMs = nowMs - n.Ms
	n.Judgement = j
	return true
}

// Miss moves a pending note to miss, recording the overshoot as its offset.
func (n *Note) Miss(nowMs float64) bool {
	if n.State != StatePending {
		return false
	}
	n.State = StateMiss
	n.JudgedMs = nowMs
	n.OffsetMs = nowMs - n.Ms
	n.Judgement = JudgementMiss
	return true
}
