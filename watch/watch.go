// Package watch operates the live chime loop: a recurring tick drives the
// firing engine and renders each fire as audio, a notification, and a log
// line.
package watch

import (
	"log/slog"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/vinayakagude/chimes/config"
	"github.com/vinayakagude/chimes/engine"
	"github.com/vinayakagude/chimes/internal/models"
	"github.com/vinayakagude/chimes/playback"
	"github.com/vinayakagude/chimes/store"
)

const fireLogSize = 12

type keymap struct {
	quit key.Binding
}

var defaultKeymap = keymap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type fireLogLine struct {
	firedAt time.Time
	instant string
	label   string
}

// tickMsg carries the wall-clock time of one scheduler tick.
type tickMsg time.Time

// Model is the bubbletea model for the watch loop.
type Model struct {
	db      store.DB
	opts    *config.Config
	driver  *playback.Driver
	styles  Styles
	help    help.Model
	now     time.Time
	windows []*models.ChimeWindow
	fireLog []fireLogLine
	err     error
}

func New(db store.DB, opts *config.Config) *Model {
	return &Model{
		db:     db,
		opts:   opts,
		driver: playback.NewDriver(),
		styles: newStyles(opts.Display.DarkTheme),
		help:   help.New(),
		now:    time.Now().In(opts.Location),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.opts.TickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// windowFingerprint captures the parts of fired state that evaluation can
// change, so only mutated windows are written back to the store.
type windowFingerprint struct {
	lastDay   string
	instants  int
	everFired bool
}

func fingerprint(w *models.ChimeWindow) windowFingerprint {
	return windowFingerprint{
		lastDay:   w.Fired.LastDay,
		instants:  len(w.Fired.Instants),
		everFired: w.Fired.EverFired,
	}
}

// evaluate runs one engine pass against the current store contents and
// renders any resulting fire events.
func (m *Model) evaluate(now time.Time) {
	windows, err := m.db.ListWindows()
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.windows = windows

	before := make([]windowFingerprint, len(windows))
	for i, w := range windows {
		before[i] = fingerprint(w)
	}

	events := engine.Evaluate(now, windows, m.db)

	for i, w := range windows {
		if before[i] == fingerprint(w) {
			continue
		}

		if err := m.db.UpdateWindowState(w); err != nil {
			slog.Error("failed to persist fired state",
				slog.String("window_id", w.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	for _, event := range events {
		m.handleFire(now, event)
	}

	if err := m.writeStatusFile(now); err != nil {
		slog.Warn("failed to write status file", slog.Any("error", err))
	}
}

// handleFire renders one fire event. Playback is fire-and-forget; a failure
// on any output path never stops the loop.
func (m *Model) handleFire(now time.Time, event models.FireEvent) {
	slog.Info("chime fired",
		slog.String("window_id", event.WindowID.String()),
		slog.String("label", event.Label),
		slog.String("instant", event.Instant),
		slog.String("sound", event.Sound.Name),
		slog.Int("play_seconds", event.PlaySeconds),
	)

	if err := m.driver.Play(event); err != nil {
		slog.Warn("unable to play chime",
			slog.String("label", event.Label),
			slog.Any("error", err),
		)
	}

	if m.opts.Notifications.Enabled {
		err := beeep.Notify("Chimes", event.Label+" • "+event.Instant, "")
		if err != nil {
			slog.Warn("unable to display notification",
				slog.Any("error", err),
			)
		}
	}

	if m.opts.Settings.FireCmd != "" {
		go m.runFireCmd(event)
	}

	m.fireLog = append([]fireLogLine{{
		firedAt: now,
		instant: event.Instant,
		label:   event.Label,
	}}, m.fireLog...)

	if len(m.fireLog) > fireLogSize {
		m.fireLog = m.fireLog[:fireLogSize]
	}
}

// runFireCmd executes the configured hook command for a fire event.
func (m *Model) runFireCmd(event models.FireEvent) {
	cmdSlice, err := shellquote.Split(m.opts.Settings.FireCmd)
	if err != nil {
		slog.Warn("unable to parse fire_cmd option", slog.Any("error", err))
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)
	cmd.Env = append(cmd.Environ(),
		"CHIMES_LABEL="+event.Label,
		"CHIMES_INSTANT="+event.Instant,
	)

	if err := cmd.Run(); err != nil {
		slog.Warn("fire_cmd failed", slog.Any("error", err))
	}
}
