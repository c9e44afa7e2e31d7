package app

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/vinayakagude/chimes/internal/ui"
	"github.com/vinayakagude/chimes/playback"
)

var mimeByExtension = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
}

// toRawGitHubURL rewrites a github.com blob URL to its raw content URL.
func toRawGitHubURL(blobURL string) string {
	if strings.Contains(blobURL, "github.com/") &&
		strings.Contains(blobURL, "/blob/") {
		raw := strings.Replace(
			blobURL,
			"github.com/",
			"raw.githubusercontent.com/",
			1,
		)

		return strings.Replace(raw, "/blob/", "/", 1)
	}

	return blobURL
}

// fetchRemoteBytes downloads a sound file. Any failure is returned to the
// caller to be reported as a warning; nothing is retried.
func fetchRemoteBytes(url string) ([]byte, string, error) {
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get(url)
	if err != nil {
		return nil, "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", errFetchStatus.Fmt(resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	if len(data) == 0 {
		return nil, "", errFetchEmpty
	}

	mime := resp.Header.Get("Content-Type")
	if i := strings.Index(mime, ";"); i != -1 {
		mime = mime[:i]
	}

	if !strings.HasPrefix(mime, "audio/") {
		mime = mimeByExtension[filepath.Ext(url)]
	}

	return data, mime, nil
}

// soundsListAction prints the sound library.
func soundsListAction(ctx *cli.Context) error {
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

	sounds, err := db.ListSounds()
	if err != nil {
		return err
	}

	tableBody := make([][]string, len(sounds))

	for i, s := range sounds {
		tableBody[i] = []string{s.Name, s.MIME}
	}

	tableBody = append([][]string{{"NAME", "TYPE"}}, tableBody...)

	ui.PrintTable(tableBody, os.Stdout)

	return nil
}

// soundsPreviewAction plays a library sound for a few seconds.
func soundsPreviewAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return errSoundNameRequired
	}

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

	entry, err := db.GetSound(ctx.Args().First())
	if err != nil {
		return err
	}

	seconds := int(ctx.Uint("for"))

	driver := playback.NewDriver()

	if err := driver.Preview(entry, seconds); err != nil {
		return err
	}

	driver.Wait(seconds)

	return nil
}

// soundsAddAction adds a sound from a local file or a remote URL.
func soundsAddAction(ctx *cli.Context) error {
	file := ctx.String("file")
	url := strings.TrimSpace(ctx.String("url"))

	if file == "" && url == "" {
		return errSoundSourceRequired
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	var (
		data []byte
		mime string
		name = ctx.String("name")
	)

	if file != "" {
		data, err = os.ReadFile(file)
		if err != nil {
			return err
		}

		mime = mimeByExtension[strings.ToLower(filepath.Ext(file))]
		if mime == "" {
			return playback.ErrUnsupportedFormat.Fmt(filepath.Ext(file))
		}

		if name == "" {
			name = strings.TrimSuffix(
				filepath.Base(file),
				filepath.Ext(file),
			)
		}
	} else {
		raw := toRawGitHubURL(url)

		data, mime, err = fetchRemoteBytes(raw)
		if err != nil {
			pterm.Warning.Printfln(
				"Could not fetch %s: %v. No sound added.",
				raw,
				err,
			)

			return nil
		}

		if name == "" {
			name = "Remote: " + filepath.Base(raw)
		}
	}

	if err := db.AddSound(name, data, mime); err != nil {
		return err
	}

	pterm.Success.Printfln("Added sound %q (%s)", name, mime)

	return nil
}

// soundsRemoveAction deletes a sound from the library. Windows referencing
// it stop firing audibly but remain scheduled.
func soundsRemoveAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return errSoundNameRequired
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	name := ctx.Args().First()

	if err := db.DeleteSound(name); err != nil {
		return err
	}

	pterm.Success.Printfln("Removed sound %q", name)

	return nil
}
