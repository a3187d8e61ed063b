package main

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Ding-Daniel/osuclone/internal/beatmap"
	"github.com/Ding-Daniel/osuclone/internal/config"
	"github.com/Ding-Daniel/osuclone/internal/library"
	"github.com/Ding-Daniel/osuclone/internal/testdata"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	var err error
	switch config.Parse() {
	case "play":
		err = runPlay()
	case "list":
		err = runList()
	case "calibrate":
		err = runCalibrate()
	}
	if nil != err {
		log.Fatal().Err(err).Msg("exited")
	}
}

// inputOffsetMs resolves the activation offset: the flag when set, otherwise
// the calibrated value from the settings file.
func inputOffsetMs() (float64, error) {
	if *config.Offset != 0 {
		return float64(*config.Offset) / float64(time.Millisecond), nil
	}
	settings, err := config.LoadSettings(*config.Settings)
	if nil != err {
		return 0, fmt.Errorf("unable to load settings: %w", err)
	}
	return settings.OffsetMs, nil
}

// findChart walks a song directory for its chart file.
func findChart(dir string) (string, error) {
	var chartFile string
	if err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if !info.IsDir() && path.Ext(info.Name()) == ".json" {
			chartFile = p
		}
		return nil
	}); nil != err {
		return "", fmt.Errorf("unable to walk song directory: %w", err)
	}
	if chartFile == "" {
		return "", errors.New("unable to find a .json chart in given directory")
	}
	return chartFile, nil
}

// chooseChart refreshes the catalog and lets the player pick by number. An
// empty path means the library is empty and the demo chart should run.
func chooseChart() (string, error) {
	cat, err := library.Open(*config.Catalog)
	if nil != err {
		return "", fmt.Errorf("unable to open catalog: %w", err)
	}
	defer cat.Close()

	if _, err := os.Stat(*config.Library); nil == err {
		if err := cat.Scan(*config.Library); nil != err {
			return "", fmt.Errorf("unable to scan library: %w", err)
		}
	}
	entries, err := cat.List()
	if nil != err {
		return "", fmt.Errorf("unable to list catalog: %w", err)
	}
	if len(entries) == 0 {
		return "", nil
	}

	keyChannel, err := keyboard.GetKeys(16)
	if nil != err {
		return "", fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Warn().Err(err).Msg("unable to close keyboard")
		}
	}()

	for i, e := range entries {
		fmt.Printf("%2v) %-28v %-20v %5v notes  %v\n",
			i, e.Title, e.Artist, e.Notes, formatMs(e.LastMs))
	}
	fmt.Println("select a chart by number, esc to quit")

	key := <-keyChannel
	if key.Key == keyboard.KeyEsc {
		return "", errors.New("no chart selected")
	}
	index, err := strconv.ParseInt(string(key.Rune), 10, 64)
	if nil != err || index > int64(len(entries)-1) {
		return "", fmt.Errorf("not a chart number: %q", string(key.Rune))
	}
	return entries[index].Path, nil
}

func formatMs(ms float64) string {
	d := time.Duration(ms * float64(time.Millisecond)).Round(time.Second)
	return d.String()
}

func runPlay() error {
	offset, err := inputOffsetMs()
	if nil != err {
		return err
	}

	var psr beatmap.Parser = &beatmap.DefaultParser{}

	var chart *beatmap.Chart
	if *config.Directory != "" {
		file, err := findChart(*config.Directory)
		if nil != err {
			return err
		}
		if chart, err = psr.Parse(file); nil != err {
			return err
		}
	} else {
		file, err := chooseChart()
		if nil != err {
			return err
		}
		if file == "" {
			log.Info().Msg("library is empty, playing the built-in demo chart")
			if chart, err = testdata.GetChart(); nil != err {
				return err
			}
		} else if chart, err = psr.Parse(file); nil != err {
			return err
		}
	}

	log.Info().Str("title", chart.Title).Str("artist", chart.Artist).
		Int("notes", len(chart.Notes)).Float64("offset_ms", offset).Msg("starting run")

	program := NewProgram(chart, offset)
	ebiten.SetWindowSize(*config.Width, *config.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("%v - %v", chart.Artist, chart.Title))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(program); nil != err && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runList() error {
	cat, err := library.Open(*config.Catalog)
	if nil != err {
		return fmt.Errorf("unable to open catalog: %w", err)
	}
	defer cat.Close()

	if err := cat.Scan(*config.Library); nil != err {
		return fmt.Errorf("unable to scan library: %w", err)
	}
	entries, err := cat.List()
	if nil != err {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%-28v %-20v %5v notes  %-8v %v\n",
			e.Title, e.Artist, e.Notes, formatMs(e.LastMs), e.Path)
	}
	if len(entries) == 0 {
		fmt.Printf("no charts under %v\n", *config.Library)
	}
	return nil
}
