package testdata

import "github.com/Ding-Daniel/osuclone/internal/beatmap"

// GetChart decodes the embedded demo chart. It backs tests and the no-args
// demo mode.
func GetChart() (*beatmap.Chart, error) {
	return beatmap.Decode([]byte(data))
}

// A 120 BPM figure-eight sweep over 16 beats, with one chord on the last
// downbeat.
const data = `{
	"title": "Demo Loop",
	"artist": "built-in",
	"notes": [
		{"ms": 1000, "x": 0.20, "y": 0.30},
		{"ms": 1500, "x": 0.35, "y": 0.45},
		{"ms": 2000, "x": 0.50, "y": 0.60},
		{"ms": 2500, "x": 0.65, "y": 0.45},
		{"ms": 3000, "x": 0.80, "y": 0.30},
		{"ms": 3500, "x": 0.65, "y": 0.20, "scale": 0.8},
		{"ms": 4000, "x": 0.50, "y": 0.35},
		{"ms": 4500, "x": 0.35, "y": 0.20, "scale": 0.8},
		{"ms": 5000, "x": 0.20, "y": 0.35},
		{"ms": 5500, "x": 0.30, "y": 0.55},
		{"ms": 6000, "x": 0.45, "y": 0.70},
		{"ms": 6500, "x": 0.60, "y": 0.75, "scale": 1.2},
		{"ms": 7000, "x": 0.75, "y": 0.65},
		{"ms": 7500, "x": 0.80, "y": 0.45},
		{"ms": 8000, "x": 0.70, "y": 0.25},
		{"ms": 8500, "x": 0.55, "y": 0.15},
		{"ms": 9000, "x": 0.40, "y": 0.25, "scale": 1.4},
		{"ms": 9500, "x": 0.30, "y": 0.40},
		{"ms": 10000, "x": 0.45, "y": 0.55},
		{"ms": 10500, "x": 0.60, "y": 0.50},
		{"ms": 11000, "x": 0.70, "y": 0.35},
		{"ms": 11500, "x": 0.55, "y": 0.30},
		{"ms": 12000, "x": 0.25, "y": 0.50},
		{"ms": 12000, "x": 0.75, "y": 0.50}
	]
}`
