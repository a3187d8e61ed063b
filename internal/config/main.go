package config

import (
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/Ding-Daniel/osuclone/internal/game"
)

var (
	Settings = kingpin.Flag("settings", "Settings file").Default("settings.yaml").String()
	Library  = kingpin.Flag("library", "Chart library root").Default("songs").String()
	Catalog  = kingpin.Flag("catalog", "Catalog database file").Default("catalog.db").String()
	Offset   = kingpin.Flag("offset", "Input offset, overrides the calibrated value when set").Short('o').Default("0ms").Duration()

	Play      = kingpin.Command("play", "Play a chart").Default()
	Directory = Play.Arg("directory", "Song/chart directory; omit to pick from the library").String()
	Auto      = Play.Flag("auto", "Let the game hit every note on time").Bool()
	Width     = Play.Flag("width", "Window width").Default("800").Int()
	Height    = Play.Flag("height", "Window height").Default("600").Int()

	List = kingpin.Command("list", "List the chart library")

	Calibrate = kingpin.Command("calibrate", "Measure your input offset against a metronome")
	Pulses    = Calibrate.Flag("pulses", "Number of metronome pulses").Default("16").Int()
	Period    = Calibrate.Flag("period", "Metronome period").Default("750ms").Duration()

	preempt    = kingpin.Flag("preempt", "Approach lead time").Default("900ms").Duration()
	hitWindow  = kingpin.Flag("hit-window", "Activation window either side of a note").Default("160ms").Duration()
	perfect    = kingpin.Flag("perfect", "Perfect judgement window").Default("45ms").Duration()
	good       = kingpin.Flag("good", "Good judgement window").Default("90ms").Duration()
	after      = kingpin.Flag("fade", "Fade-out time after judgement").Default("300ms").Duration()
	endGrace   = kingpin.Flag("end-grace", "Quiet time before the results screen").Default("1s").Duration()
	baseRadius = kingpin.Flag("radius", "Note radius at the reference window size").Default("34").Float64()
	comboBonus = kingpin.Flag("combo-bonus", "Score multiplier gain per combo step").Default("0.05").Float64()
)

// Parse reads the command line and returns the selected command. Called once
// from main, never from init, so importing this package stays inert in tests.
func Parse() string {
	kingpin.Version("0.1.0")
	return kingpin.Parse()
}

// Timing assembles the window constants from the flags. Only meaningful
// after Parse; the flag defaults mirror game.DefaultTiming.
func Timing() game.Timing {
	return game.Timing{
		PreemptMs:   durationMs(*preempt),
		HitWindowMs: durationMs(*hitWindow),
		PerfectMs:   durationMs(*perfect),
		GoodMs:      durationMs(*good),
		AfterMs:     durationMs(*after),
		EndGraceMs:  durationMs(*endGrace),
		BaseRadius:  *baseRadius,
		ComboBonus:  *comboBonus,
	}
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
