package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/basicfont"

	"github.com/Ding-Daniel/osuclone/internal/beatmap"
	"github.com/Ding-Daniel/osuclone/internal/config"
	"github.com/Ding-Daniel/osuclone/internal/game"
	"github.com/Ding-Daniel/osuclone/internal/session"
	"github.com/Ding-Daniel/osuclone/internal/theme"
)

// Program is the presentation collaborator: it polls inputs into the
// session, drives the per-frame tick, and renders from the snapshot. All
// judging lives in the session; nothing here touches note state directly.
type Program struct {
	Session *session.Session
	Theme   theme.Theme
	Sounds  *soundBank

	timing        game.Timing
	width, height int
	auto          bool

	snap  session.Snapshot
	popup *session.JudgementEvent
}

func NewProgram(chart *beatmap.Chart, offsetMs float64) *Program {
	p := &Program{
		Theme:  &theme.DefaultTheme{},
		Sounds: newSoundBank(),
		timing: config.Timing(),
		width:  *config.Width,
		height: *config.Height,
		auto:   *config.Auto,
	}
	p.Session = session.New(session.Config{
		Timing:        p.timing,
		Width:         float64(p.width),
		Height:        float64(p.height),
		InputOffsetMs: offsetMs,
	}, chart, session.Hooks{
		OnJudgement: func(ev session.JudgementEvent) {
			p.popup = &ev
			p.Sounds.Play(ev.Judgement)
		},
		OnComplete: func(sm session.Summary) {
			log.Info().Int("max_combo", sm.MaxCombo).
				Float64("accuracy", sm.Accuracy).Msg("run complete")
		},
	})
	p.Session.Start()
	return p
}

func (p *Program) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.Session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.popup = nil
		p.Session.Restart()
	}

	p.Session.Tick()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.activate(x, y)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		p.activate(x, y)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		x, y := ebiten.CursorPosition()
		p.activate(x, y)
	}
	if p.auto {
		p.autoplay()
	}

	p.snap = p.Session.Snapshot()
	return nil
}

func (p *Program) activate(x, y int) {
	p.Session.Activate(game.Vec2{X: float64(x), Y: float64(y)})
}

// autoplay fires every due note at its own center.
func (p *Program) autoplay() {
	snap := p.Session.Snapshot()
	for _, n := range snap.Notes {
		if n.Ms > snap.ElapsedMs {
			break
		}
		if n.State == game.StatePending {
			p.Session.Activate(n.Pos)
		}
	}
}

func (p *Program) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != p.width || outsideHeight != p.height {
		p.width, p.height = outsideWidth, outsideHeight
		p.Session.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (p *Program) Draw(screen *ebiten.Image) {
	screen.Fill(p.Theme.Background())

	now := p.snap.ElapsedMs
	for _, n := range p.snap.Notes {
		if !p.timing.Visible(n, now) {
			continue
		}
		p.drawNote(screen, n, now)
	}

	p.drawPopup(screen, now)
	p.drawHUD(screen)

	if p.Session.Paused() {
		p.drawCentered(screen, "paused - space to resume", p.height/2)
	}
	if p.snap.Ended {
		p.drawResults(screen)
	}
}

func (p *Program) drawNote(screen *ebiten.Image, n *game.Note, now float64) {
	x, y := float32(n.Pos.X), float32(n.Pos.Y)
	r := float32(n.Radius)
	progress := p.timing.Progress(n, now)

	if n.State == game.StatePending {
		// Approach ring shrinks from 3r down onto the rim.
		ring := r * float32(3-2*progress)
		vector.StrokeCircle(screen, x, y, ring, 2, p.Theme.ApproachRing(), true)
		vector.DrawFilledCircle(screen, x, y, r, p.Theme.NoteFill(), true)
		vector.StrokeCircle(screen, x, y, r, 2, p.Theme.NoteOutline(), true)
		return
	}

	// Judged notes flare outward and fade.
	alpha := 1 - progress
	flare := r * float32(1+0.4*progress)
	vector.DrawFilledCircle(screen, x, y, flare,
		fade(p.Theme.JudgementColor(n.Judgement), alpha), true)
}

func (p *Program) drawPopup(screen *ebiten.Image, now float64) {
	if nil == p.popup {
		return
	}
	n := p.popup.Note
	sinceJudged := now - n.JudgedMs
	if sinceJudged < 0 || sinceJudged > p.timing.AfterMs {
		return
	}
	label := p.popup.Judgement.String()
	col := p.Theme.JudgementColor(p.popup.Judgement)
	text.Draw(screen, label, basicfont.Face7x13,
		int(n.Pos.X)-len(label)*7/2, int(n.Pos.Y-n.Radius)-6, col)
}

func (p *Program) drawHUD(screen *ebiten.Image) {
	stats := p.snap.Stats
	col := p.Theme.HUDText()
	lines := []string{
		fmt.Sprintf("   Score: %8.0f", stats.Score),
		fmt.Sprintf("   Combo: %4v (max %v)", stats.Combo, stats.MaxCombo),
		fmt.Sprintf("Accuracy: %6.2f%%", stats.Accuracy()*100),
		fmt.Sprintf(" Perfect: %4v", stats.Perfect),
		fmt.Sprintf("    Good: %4v", stats.Good),
		fmt.Sprintf("      Ok: %4v", stats.Ok),
		fmt.Sprintf("    Miss: %4v", stats.Miss),
	}
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 8, 16*(i+1), col)
	}
}

func (p *Program) drawResults(screen *ebiten.Image) {
	stats := p.snap.Stats
	mid := p.height / 2
	p.drawCentered(screen, "run complete", mid-32)
	p.drawCentered(screen, fmt.Sprintf("score %.0f", stats.Score), mid-16)
	p.drawCentered(screen, fmt.Sprintf("max combo %v", stats.MaxCombo), mid)
	p.drawCentered(screen, fmt.Sprintf("accuracy %.2f%%", stats.Accuracy()*100), mid+16)
	p.drawCentered(screen, "r to retry, esc to quit", mid+48)
}

func (p *Program) drawCentered(screen *ebiten.Image, s string, y int) {
	text.Draw(screen, s, basicfont.Face7x13, p.width/2-len(s)*7/2, y, p.Theme.HUDText())
}

// fade premultiplies a color down to the given alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(255 * alpha),
	}
}
