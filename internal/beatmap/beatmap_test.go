package beatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ding-Daniel/osuclone/internal/game"
)

func TestDecodeValidChart(t *testing.T) {
	chart, err := Decode([]byte(`{
		"title": "demo", "artist": "nobody",
		"notes": [
			{"ms": 0, "x": 0.5, "y": 0.5},
			{"ms": 1000, "x": 0.25, "y": 0.75, "scale": 1.2},
			{"ms": 1000, "x": 0.75, "y": 0.75},
			{"ms": 1500, "x": 1, "y": 0}
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "demo", chart.Title)
	require.Len(t, chart.Notes, 4)
	assert.Equal(t, 1.2, chart.Notes[1].Scale)
	assert.Zero(t, chart.Notes[2].Scale, "unset scale stays zero until projection")
}

func TestDecodeRejectsMalformedCharts(t *testing.T) {
	cases := map[string]string{
		"not json":      `{"title": "x", "notes": [`,
		"no notes":      `{"title": "x", "notes": []}`,
		"negative time": `{"notes": [{"ms": -5, "x": 0.5, "y": 0.5}]}`,
		"unsorted":      `{"notes": [{"ms": 900, "x": 0.5, "y": 0.5}, {"ms": 100, "x": 0.5, "y": 0.5}]}`,
		"x too large":   `{"notes": [{"ms": 0, "x": 1.5, "y": 0.5}]}`,
		"y negative":    `{"notes": [{"ms": 0, "x": 0.5, "y": -0.1}]}`,
		"scale low":     `{"notes": [{"ms": 0, "x": 0.5, "y": 0.5, "scale": 0.5}]}`,
		"scale high":    `{"notes": [{"ms": 0, "x": 0.5, "y": 0.5, "scale": 1.7}]}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestProject(t *testing.T) {
	chart := &Chart{Notes: []Note{
		{Ms: 100, X: 0.125, Y: 1.0 / 6.0},
		{Ms: 200, X: 0.5, Y: 0.5, Scale: 1.5},
	}}
	require.NoError(t, chart.Validate())

	timing := game.DefaultTiming()
	notes := Project(chart, 800, 600, timing)
	require.Len(t, notes, 2)

	// min dimension equals the reference, so the base radius applies as-is.
	assert.Equal(t, game.Vec2{X: 100, Y: 100}, notes[0].Pos)
	assert.Equal(t, timing.BaseRadius, notes[0].Radius)
	assert.Equal(t, timing.BaseRadius*1.5, notes[1].Radius)
	assert.Equal(t, 0, notes[0].Seq)
	assert.Equal(t, 1, notes[1].Seq)
	assert.Equal(t, game.StatePending, notes[0].State)
}

func TestReprojectPreservesState(t *testing.T) {
	chart := &Chart{Notes: []Note{{Ms: 100, X: 0.5, Y: 0.5}}}
	timing := game.DefaultTiming()
	notes := Project(chart, 800, 600, timing)

	require.True(t, notes[0].Hit(110, game.JudgementPerfect))
	Reproject(notes, chart, 1600, 1200, timing)

	assert.Equal(t, game.Vec2{X: 800, Y: 600}, notes[0].Pos)
	assert.Equal(t, timing.BaseRadius*2, notes[0].Radius)
	assert.Equal(t, game.StateHit, notes[0].State)
	assert.Equal(t, 110.0, notes[0].JudgedMs)
	assert.Equal(t, game.JudgementPerfect, notes[0].Judgement)
}
