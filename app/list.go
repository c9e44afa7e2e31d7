package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/vinayakagude/chimes/internal/models"
	"github.com/vinayakagude/chimes/internal/ui"
)

const noWindowsMsg = "No chime windows yet. Create one with 'chimes add'"

// printWindowsTable prints a window table to the command-line.
func printWindowsTable(w io.Writer, windows []*models.ChimeWindow) {
	tableBody := make([][]string, len(windows))

	for i := range windows {
		win := windows[i]

		repeat := ui.Green("daily")
		if !win.RepeatDaily {
			repeat = ui.Magenta("once")
			if win.Fired.EverFired {
				repeat = ui.Red("finished")
			}
		}

		row := []string{
			ui.Cyan(win.ID.String()[:8]),
			win.Label,
			fmt.Sprintf("%s → %s", win.Start, win.End),
			fmt.Sprintf("%d min", win.IntervalMins),
			fmt.Sprintf("%ds", win.PlaySeconds),
			win.SoundRef,
			repeat,
			fmt.Sprintf("%d", len(win.Fired.Instants)),
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"ID", "LABEL", "WINDOW", "EVERY", "PLAYS", "SOUND", "REPEAT", "FIRED TODAY"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listAction handles the list command and prints a table of all chime
// windows.
func listAction(ctx *cli.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	windows, err := db.ListWindows()
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(windows)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(windows) == 0 {
		pterm.Info.Println(noWindowsMsg)
		return nil
	}

	printWindowsTable(os.Stdout, windows)

	return nil
}

// removeAction handles the remove command which deletes a window by id.
func removeAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return errWindowIDRequired
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	w, err := db.FindWindow(ctx.Args().First())
	if err != nil {
		return err
	}

	if err := db.DeleteWindow(w.ID); err != nil {
		return err
	}

	pterm.Success.Printfln("Removed %q (%s)", w.Label, w.ID.String()[:8])

	return nil
}
