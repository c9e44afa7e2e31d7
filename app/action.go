package app

import (
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/vinayakagude/chimes/config"
	"github.com/vinayakagude/chimes/internal/ui"
	"github.com/vinayakagude/chimes/store"
	"github.com/vinayakagude/chimes/synth"
	"github.com/vinayakagude/chimes/watch"
)

const (
	envNoColor       = "NO_COLOR"
	envChimesNoColor = "CHIMES_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the program configuration from the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// openDB connects to the schedule store.
func openDB() (*store.Client, error) {
	return store.NewClient(config.DBFilePath())
}

// ensureLibrary populates the sound library with the built-in and procedural
// sets. Entries already present, including user overrides, are untouched.
func ensureLibrary(db store.DB, cfg *config.Config) error {
	builtins, err := synth.Builtins()
	if err != nil {
		return err
	}

	if err := db.SeedSounds(builtins); err != nil {
		return err
	}

	procedural, err := synth.Library(cfg.Library.Seed, cfg.Library.Count)
	if err != nil {
		return err
	}

	return db.SeedSounds(procedural)
}

// beforeAction runs before any command action.
func beforeAction(ctx *cli.Context) error {
	if _, ok := os.LookupEnv(envNoColor); ok {
		disableStyling()
	}

	if _, ok := os.LookupEnv(envChimesNoColor); ok {
		disableStyling()
	}

	config.InitializePaths()

	return config.InitLogger()
}

// defaultAction runs the watch loop: every tick evaluates the schedule and
// fires any due chimes.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	if err := ensureLibrary(db, cfg); err != nil {
		return err
	}

	slog.InfoContext(ctx.Context, "starting watch loop",
		slog.String("timezone", cfg.Timezone),
		slog.String("tick_rate", cfg.TickRate.String()),
	)

	_, err = tea.NewProgram(watch.New(db, cfg)).Run()

	_ = os.Remove(config.StatusFilePath())

	slog.InfoContext(ctx.Context, "exiting chimes")

	return err
}

// editConfigAction handles the edit-config command which opens the chimes
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}
