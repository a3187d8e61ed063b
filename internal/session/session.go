package session

import (
	"github.com/Ding-Daniel/osuclone/internal/beatmap"
	"github.com/Ding-Daniel/osuclone/internal/clock"
	"github.com/Ding-Daniel/osuclone/internal/game"
	"github.com/Ding-Daniel/osuclone/internal/score"
)

type Config struct {
	Timing game.Timing

	// Viewport the normalized chart coordinates project into.
	Width, Height float64

	// Applied when stamping activations, never inside the clock, so the
	// elapsed value the sweeper and presentation see stays untouched.
	InputOffsetMs float64

	// Time source; nil means the real monotonic clock. Tests inject a
	// clock.ManualProvider here.
	Provider clock.TimeProvider
}

// JudgementEvent is the discrete outcome of one resolved or swept note,
// suitable for transient feedback.
type JudgementEvent struct {
	Note      *game.Note
	Judgement game.Judgement
	OffsetMs  float64
}

// Summary is emitted once when a run completes.
type Summary struct {
	MaxCombo int
	Accuracy float64
	Stats    score.Stats
}

// Hooks are optional callbacks into the presentation layer. Any field may be
// nil. They fire synchronously on the session's own thread of control.
type Hooks struct {
	OnJudgement func(JudgementEvent)
	OnComplete  func(Summary)
}

// Snapshot is the read-only per-step handoff to presentation.
type Snapshot struct {
	ElapsedMs float64
	Notes     []*game.Note
	Stats     score.Stats
	Ended     bool
}

// Session owns one run: the pause-aware clock, the runtime notes, the stats
// and the scorer. All mutation happens on the single logical thread that
// calls Tick and Activate, so there is no locking anywhere.
type Session struct {
	cfg    Config
	chart  *beatmap.Chart
	clock  *clock.SessionClock
	scorer score.Scorer
	notes  *game.Chart
	stats  score.Stats
	hooks  Hooks
	ended  bool
}

func New(cfg Config, chart *beatmap.Chart, hooks Hooks) *Session {
	return &Session{
		cfg:    cfg,
		chart:  chart,
		clock:  clock.NewSession(cfg.Provider),
		scorer: &score.DefaultScorer{Timing: cfg.Timing},
		notes:  game.NewChart(beatmap.Project(chart, cfg.Width, cfg.Height, cfg.Timing)),
		hooks:  hooks,
	}
}

func (s *Session) Start() {
	s.clock.Start()
}

// Restart resets stats and note lifecycle and starts the clock over.
func (s *Session) Restart() {
	s.notes.Reset()
	s.stats = score.Stats{}
	s.ended = false
	s.clock.Start()
}

func (s *Session) TogglePause() {
	if s.ended {
		return
	}
	s.clock.Toggle()
}

func (s *Session) Paused() bool  { return s.clock.Paused() }
func (s *Session) Running() bool { return s.clock.Running() }
func (s *Session) Ended() bool   { return s.ended }

// Resize reprojects every note's position and radius in place. Lifecycle
// state survives, so a resize mid-run moves targets without rejudging them.
func (s *Session) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.cfg.Width, s.cfg.Height = width, height
	beatmap.Reproject(s.notes.Notes, s.chart, width, height, s.cfg.Timing)
}

// Tick runs one simulation step: elapsed time, then the miss sweep, then the
// end check, then the snapshot handoff. The driving cadence belongs to the
// caller; feeding the same instant twice is harmless.
func (s *Session) Tick() Snapshot {
	now := s.clock.ElapsedMs()

	if s.clock.Running() && !s.clock.Paused() && !s.ended {
		for _, n := range s.notes.Sweep(now, s.cfg.Timing) {
			s.stats.Missed()
			s.emitJudgement(n)
		}
		s.checkEnd(now)
	}

	return s.snapshot(now)
}

// Snapshot rebuilds the handoff without advancing the simulation.
func (s *Session) Snapshot() Snapshot {
	return s.snapshot(s.clock.ElapsedMs())
}

func (s *Session) snapshot(now float64) Snapshot {
	return Snapshot{
		ElapsedMs: now,
		Notes:     s.notes.Notes,
		Stats:     s.stats,
		Ended:     s.ended,
	}
}

// Activate resolves one discrete input at p against the pending set. The
// returned bool reports whether anything was hit; a false result mutates
// nothing and does not break the combo.
func (s *Session) Activate(p game.Vec2) (JudgementEvent, bool) {
	if !s.clock.Running() || s.clock.Paused() || s.ended {
		return JudgementEvent{}, false
	}
	now := s.clock.ElapsedMs() + s.cfg.InputOffsetMs

	note := s.scorer.Resolve(s.notes.Notes, p, now)
	if nil == note {
		return JudgementEvent{}, false
	}

	j := s.scorer.Judge(now - note.Ms)
	note.Hit(now, j)
	s.stats.Hit(j, s.cfg.Timing.ComboBonus)

	ev := s.emitJudgement(note)
	return ev, true
}

func (s *Session) emitJudgement(n *game.Note) JudgementEvent {
	ev := JudgementEvent{Note: n, Judgement: n.Judgement, OffsetMs: n.OffsetMs}
	if nil != s.hooks.OnJudgement {
		s.hooks.OnJudgement(ev)
	}
	return ev
}

// checkEnd marks the run complete once the quiet time past the last note's
// window has elapsed and nothing is left pending. Terminal: no further
// activations are accepted and the completion hook fires exactly once.
func (s *Session) checkEnd(now float64) {
	last := s.notes.Last()
	if nil == last {
		s.ended = true
		return
	}
	t := s.cfg.Timing
	if now <= last.Ms+t.HitWindowMs+t.AfterMs+t.EndGraceMs {
		return
	}
	if s.notes.Pending() > 0 {
		return
	}
	s.ended = true
	if nil != s.hooks.OnComplete {
		s.hooks.OnComplete(Summary{
			MaxCombo: s.stats.MaxCombo,
			Accuracy: s.stats.Accuracy(),
			Stats:    s.stats,
		})
	}
}
