// Package app defines the chimes command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/vinayakagude/chimes/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the chimes app instance.
func Get() *cli.App {
	chimesApp := &cli.App{
		Name: "chimes",
		Usage: `
		Chimes is a personal reminder bell for the command-line. Define daily
		chime windows (start, end, repeat interval, sound, ring duration) and
		leave it running: it plays a tone at every matching minute, once per
		day per minute.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Create a chime window. Prompts interactively when flags are omitted",
				Action: addAction,
				Flags: []cli.Flag{
					labelFlag,
					startFlag,
					endFlag,
					everyFlag,
					soundFlag,
					playForFlag,
					onceFlag,
				},
			},
			{
				Name:   "list",
				Usage:  "List all chime windows",
				Action: listAction,
				Flags:  []cli.Flag{jsonFlag},
			},
			{
				Name:      "remove",
				Usage:     "Remove a chime window by id or unique id prefix",
				ArgsUsage: "<id>",
				Action:    removeAction,
			},
			{
				Name:  "sounds",
				Usage: "Manage the sound library",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List the sounds in the library",
						Action: soundsListAction,
					},
					{
						Name:      "preview",
						Usage:     "Play a sound from the library",
						ArgsUsage: "<name>",
						Action:    soundsPreviewAction,
						Flags:     []cli.Flag{playForFlag},
					},
					{
						Name:   "add",
						Usage:  "Add a sound from a local file or a remote URL",
						Action: soundsAddAction,
						Flags: []cli.Flag{
							soundFileFlag,
							soundURLFlag,
							soundNameFlag,
						},
					},
					{
						Name:      "remove",
						Usage:     "Remove a sound from the library",
						ArgsUsage: "<name>",
						Action:    soundsRemoveAction,
					},
				},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return chimesApp
}
