package app

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/vinayakagude/chimes/internal/timeutil"
	"github.com/vinayakagude/chimes/store"
)

// parseTimeOfDay accepts strict "HH:MM" input, falling back to lenient
// parsing so inputs like "9am" or "5.30 pm" also work.
func parseTimeOfDay(s string) (timeutil.TimeOfDay, error) {
	tod, err := timeutil.ParseTimeOfDay(s)
	if err == nil {
		return tod, nil
	}

	dt, derr := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: time.Now(),
	}, s)
	if derr != nil {
		return timeutil.TimeOfDay{}, errInvalidTimeInput.Fmt(s)
	}

	return timeutil.FromTime(dt.Time), nil
}

// promptWindow collects a window definition interactively.
func promptWindow(db store.DB, def *store.Definition) error {
	sounds, err := db.ListSounds()
	if err != nil {
		return err
	}

	names := make([]string, len(sounds))
	for i, s := range sounds {
		names[i] = s.Name
	}

	var (
		start   string
		end     string
		every   = "1"
		playFor = "8"
		daily   = true
	)

	validateTime := func(s string) error {
		_, err := parseTimeOfDay(s)
		return err
	}

	validateNumber := func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 1 {
			return errExpectedPositiveInt
		}

		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Placeholder("Meditation").
				Value(&def.Label),
			huh.NewInput().
				Title("Start time").
				Placeholder("09:00").
				Validate(validateTime).
				Value(&start),
			huh.NewInput().
				Title("End time").
				Placeholder("17:00").
				Validate(validateTime).
				Value(&end),
			huh.NewInput().
				Title("Repeat every (minutes)").
				Validate(validateNumber).
				Value(&every),
			huh.NewSelect[string]().
				Title("Chime sound").
				Options(huh.NewOptions(names...)...).
				Height(10).
				Value(&def.SoundRef),
			huh.NewInput().
				Title("Each chime plays (seconds)").
				Validate(validateNumber).
				Value(&playFor),
			huh.NewConfirm().
				Title("Repeat daily?").
				Value(&daily),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	def.Start, err = parseTimeOfDay(start)
	if err != nil {
		return err
	}

	def.End, err = parseTimeOfDay(end)
	if err != nil {
		return err
	}

	def.IntervalMins, _ = strconv.Atoi(strings.TrimSpace(every))
	def.PlaySeconds, _ = strconv.Atoi(strings.TrimSpace(playFor))
	def.RepeatDaily = daily

	return nil
}

// addAction handles the add command which creates a new chime window.
func addAction(ctx *cli.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := ensureLibrary(db, cfg); err != nil {
		return err
	}

	def := store.Definition{
		Label:        ctx.String("label"),
		SoundRef:     ctx.String("sound"),
		IntervalMins: int(ctx.Uint("every")),
		PlaySeconds:  int(ctx.Uint("for")),
		RepeatDaily:  !ctx.Bool("once"),
	}

	if ctx.String("start") == "" && ctx.String("end") == "" {
		if err := promptWindow(db, &def); err != nil {
			return err
		}
	} else {
		def.Start, err = parseTimeOfDay(ctx.String("start"))
		if err != nil {
			return err
		}

		def.End, err = parseTimeOfDay(ctx.String("end"))
		if err != nil {
			return err
		}
	}

	if _, err := db.GetSound(def.SoundRef); err != nil {
		if !errors.Is(err, store.ErrSoundNotFound) {
			return err
		}

		pterm.Warning.Printfln(
			"sound %q is not in the library yet; the window will stay silent until it is added",
			def.SoundRef,
		)
	}

	w, err := db.AddWindow(def)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Added %q: %s → %s, every %d min, %s for %ds",
		w.Label,
		w.Start,
		w.End,
		w.IntervalMins,
		w.SoundRef,
		w.PlaySeconds,
	)

	return nil
}
