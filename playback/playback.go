// Package playback renders fire events as audible sound through the system
// speaker
package playback

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/vinayakagude/chimes/internal/models"
)

const sampleRate = beep.SampleRate(44100)

const resampleQuality = 4

// Driver plays fire events. Playback is fire-and-forget: the caller never
// waits for a chime to finish. If the audio device cannot be opened, events
// are queued and retried on the next play attempt instead of being dropped.
type Driver struct {
	mu          sync.Mutex
	pending     []models.FireEvent
	speakerUp   bool
	speakerErr  error
	lastAttempt time.Time
}

func NewDriver() *Driver {
	return &Driver{}
}

// Play sounds the event's clip, looping it as needed so that audible output
// lasts for the event's play duration before stopping.
func (d *Driver) Play(event models.FireEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ensureSpeaker(); err != nil {
		d.pending = append(d.pending, event)

		slog.Warn("audio device unavailable, queueing chime",
			slog.String("label", event.Label),
			slog.String("instant", event.Instant),
			slog.Any("error", err),
		)

		return nil
	}

	d.flushPending()

	return d.play(event)
}

// Preview plays a library entry directly for the given number of seconds.
func (d *Driver) Preview(entry *models.SoundEntry, seconds int) error {
	return d.Play(models.FireEvent{
		Label:       entry.Name,
		Sound:       *entry,
		PlaySeconds: seconds,
	})
}

// Wait blocks until the speaker has drained, for one-off commands that exit
// right after playing.
func (d *Driver) Wait(seconds int) {
	time.Sleep(time.Duration(seconds)*time.Second + 100*time.Millisecond)
}

// ensureSpeaker opens the audio device on first use. A failed attempt is
// retried on the next call rather than cached forever, since the device may
// only be busy temporarily.
func (d *Driver) ensureSpeaker() error {
	if d.speakerUp {
		return nil
	}

	if d.speakerErr != nil && time.Since(d.lastAttempt) < time.Second {
		return d.speakerErr
	}

	d.lastAttempt = time.Now()

	err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	if err != nil {
		d.speakerErr = errSpeakerInit.Wrap(err)
		return d.speakerErr
	}

	d.speakerUp = true
	d.speakerErr = nil

	return nil
}

func (d *Driver) flushPending() {
	queued := d.pending
	d.pending = nil

	for _, event := range queued {
		if err := d.play(event); err != nil {
			slog.Warn("failed to play queued chime",
				slog.String("label", event.Label),
				slog.Any("error", err),
			)
		}
	}
}

func (d *Driver) play(event models.FireEvent) error {
	stream, format, err := decode(event.Sound)
	if err != nil {
		return err
	}

	var clip beep.Streamer = beep.Loop(-1, stream)

	if format.SampleRate != sampleRate {
		clip = beep.Resample(
			resampleQuality,
			format.SampleRate,
			sampleRate,
			clip,
		)
	}

	playFor := time.Duration(event.PlaySeconds) * time.Second

	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(playFor), clip),
		beep.Callback(func() {
			_ = stream.Close()
		}),
	))

	return nil
}

// decode picks a decoder from the entry's declared MIME type.
func decode(
	entry models.SoundEntry,
) (beep.StreamSeekCloser, beep.Format, error) {
	r := io.NopCloser(bytes.NewReader(entry.Data))

	switch entry.MIME {
	case "audio/wav", "audio/x-wav", "audio/wave":
		return wav.Decode(r)
	case "audio/mpeg", "audio/mp3":
		return mp3.Decode(r)
	case "audio/flac":
		return flac.Decode(r)
	case "audio/ogg", "application/ogg":
		return vorbis.Decode(r)
	default:
		return nil, beep.Format{}, ErrUnsupportedFormat.Fmt(entry.MIME)
	}
}
