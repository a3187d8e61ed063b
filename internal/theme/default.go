package theme

import (
	"image/color"

	"github.com/Ding-Daniel/osuclone/internal/game"
)

type DefaultTheme struct{}

func (t *DefaultTheme) Background() color.RGBA {
	return color.RGBA{16, 16, 24, 255}
}

func (t *DefaultTheme) NoteFill() color.RGBA {
	return color.RGBA{0, 118, 236, 255}
}

func (t *DefaultTheme) NoteOutline() color.RGBA {
	return color.RGBA{235, 235, 235, 255}
}

func (t *DefaultTheme) ApproachRing() color.RGBA {
	return color.RGBA{173, 236, 236, 255}
}

func (t *DefaultTheme) HUDText() color.RGBA {
	return color.RGBA{235, 235, 235, 255}
}

var judgementColors = map[game.Judgement]color.RGBA{
	game.JudgementPerfect: {173, 236, 236, 255},
	game.JudgementGood:    {0, 236, 128, 255},
	game.JudgementOk:      {236, 195, 0, 255},
	game.JudgementMiss:    {236, 30, 0, 255},
}

func (t *DefaultTheme) JudgementColor(j game.Judgement) color.RGBA {
	col, ok := judgementColors[j]
	if !ok {
		return color.RGBA{255, 255, 255, 255}
	}
	return col
}
