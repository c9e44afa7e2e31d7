package app

import "github.com/urfave/cli/v2"

var (
	labelFlag = &cli.StringFlag{
		Name:    "label",
		Aliases: []string{"l"},
		Usage:   "Display label for the window. Defaults to 'Meditation'",
	}

	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Start of the window as a time of day (e.g. '09:00' or '9am')",
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "End of the window as a time of day. Must be after the start time",
	}

	everyFlag = &cli.UintFlag{
		Name:  "every",
		Usage: "Repeat interval in minutes, measured from the start time",
		Value: 1,
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Name of the library sound to play. See 'chimes sounds list'",
		Value: "Soft Bell",
	}

	playForFlag = &cli.UintFlag{
		Name:    "for",
		Aliases: []string{"f"},
		Usage:   "How many seconds each chime plays, looping short clips",
		Value:   8,
	}

	onceFlag = &cli.BoolFlag{
		Name:  "once",
		Usage: "Fire a single time ever instead of repeating daily",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Output as JSON",
	}

	soundFileFlag = &cli.StringFlag{
		Name:  "file",
		Usage: "Path to a local wav, mp3, ogg, or flac file",
	}

	soundURLFlag = &cli.StringFlag{
		Name:  "url",
		Usage: "Remote sound URL. GitHub blob URLs are rewritten to raw URLs",
	}

	soundNameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "Library name for the sound. Defaults to the file name",
	}
)
