package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/Ding-Daniel/osuclone/internal/clock"
	"github.com/Ding-Daniel/osuclone/internal/config"
)

// wizardScreen drives the raw terminal the calibration runs in: alternate
// buffer, hidden cursor, positioned writes batched into one flush per frame.
type wizardScreen struct {
	buffer       strings.Builder
	restoreState *term.State
}

func (w *wizardScreen) init() error {
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if nil != err {
		return err
	}
	w.restoreState = state

	fmt.Printf("%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (w *wizardScreen) deinit() error {
	fmt.Printf("%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return term.Restore(int(os.Stdin.Fd()), w.restoreState)
}

func (w *wizardScreen) fill(row, column int, message string) {
	w.buffer.WriteString("\033[")
	w.buffer.WriteString(strconv.Itoa(row))
	w.buffer.WriteString(";")
	w.buffer.WriteString(strconv.Itoa(column))
	w.buffer.WriteString("H")
	w.buffer.WriteString(message)
}

func (w *wizardScreen) flush() {
	os.Stdout.WriteString(w.buffer.String())
	w.buffer.Reset()
}

// runCalibrate plays a fixed metronome, collects tap offsets against the
// pulse schedule, and saves the negated mean so late tappers get their
// activations stamped earlier.
func runCalibrate() error {
	offsets, aborted, err := runWizard()
	if nil != err {
		return err
	}
	if aborted {
		log.Info().Msg("calibration aborted, nothing saved")
		return nil
	}
	if len(offsets) < 2 {
		return errors.New("not enough taps to calibrate, try again")
	}

	sum := 0.0
	for _, o := range offsets {
		sum += o
	}
	mean := sum / float64(len(offsets))
	stdev := 0.0
	for _, o := range offsets {
		xi := o - mean
		stdev += xi * xi
	}
	stdev /= float64(len(offsets) - 1)
	stdev = math.Sqrt(stdev)

	fmt.Printf(" Taps:  %6v\n", len(offsets))
	fmt.Printf(" Mean:  %6.2f ms\n", mean)
	fmt.Printf("Stdev:  %6.2f ms\n", stdev)

	settings, err := config.LoadSettings(*config.Settings)
	if nil != err {
		return err
	}
	settings.OffsetMs = -mean
	if err := config.SaveSettings(*config.Settings, settings); nil != err {
		return fmt.Errorf("unable to save settings: %w", err)
	}
	log.Info().Float64("offset_ms", settings.OffsetMs).
		Str("settings", *config.Settings).Msg("calibration saved")
	return nil
}

func runWizard() (offsets []float64, aborted bool, err error) {
	periodMs := float64(*config.Period) / float64(time.Millisecond)
	pulses := *config.Pulses
	if periodMs <= 0 || pulses < 2 {
		return nil, false, errors.New("calibration needs a positive period and at least 2 pulses")
	}

	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return nil, false, fmt.Errorf("unable to get terminal size: %w", err)
	}
	cen, mid := rows/2, columns/2

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, false, fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Warn().Err(err).Msg("unable to close keyboard")
		}
	}()

	screen := &wizardScreen{}
	if err := screen.init(); nil != err {
		return nil, false, err
	}
	defer func() {
		if derr := screen.deinit(); nil == err {
			err = derr
		}
	}()

	// Pulse i fires at i*period, i in [1, pulses]; pulse 0 is the lead-in.
	sc := clock.NewSession(nil)
	sc.Start()
	endMs := float64(pulses+1) * periodMs

	screen.fill(cen-4, mid-14, "tap any key on every pulse")
	screen.fill(cen-3, mid-14, "esc finishes, q abandons")

	for {
		now := sc.ElapsedMs()
		if now > endMs {
			break
		}

		done := false
		for i := 0; i < len(keyChannel); i++ {
			key := <-keyChannel
			if key.Key == keyboard.KeyEsc {
				done = true
				break
			}
			if key.Rune == 'q' {
				return nil, true, nil
			}
			tap := sc.ElapsedMs()
			pulse := math.Round(tap / periodMs)
			if pulse < 1 {
				pulse = 1
			} else if pulse > float64(pulses) {
				pulse = float64(pulses)
			}
			offsets = append(offsets, tap-pulse*periodMs)
		}
		if done {
			break
		}

		phase := math.Mod(now, periodMs) / periodMs
		sym := "   ·   "
		if phase < 0.2 {
			sym = "  ⬤  "
		}
		screen.fill(cen, mid-3, sym)
		screen.fill(rows-1, 2, fmt.Sprintf("pulse %2v/%v  taps %3v ",
			int(now/periodMs), pulses, len(offsets)))
		screen.flush()

		time.Sleep(2 * time.Millisecond)
	}

	return offsets, false, nil
}
