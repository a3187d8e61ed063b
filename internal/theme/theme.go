package theme

import (
	"image/color"

	"github.com/Ding-Daniel/osuclone/internal/game"
)

type Theme interface {
	Background() color.RGBA
	NoteFill() color.RGBA
	NoteOutline() color.RGBA
	ApproachRing() color.RGBA
	HUDText() color.RGBA
	JudgementColor(j game.Judgement) color.RGBA
}
