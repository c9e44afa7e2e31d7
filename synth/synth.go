// Package synth generates percussive chime tones as 16-bit mono WAV clips
package synth

import (
	"math"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// SampleRate is the fixed sample rate for all generated audio.
const SampleRate = 44100

// MIMEWav is the MIME type of every generated clip.
const MIMEWav = "audio/wav"

// Partial is one sine component of a tone.
type Partial struct {
	Frequency float64
	Amplitude float64
}

// Synthesize renders the sum of the given partials over duration seconds,
// shaped by an exponential decay envelope and normalized so the peak
// absolute amplitude is 1.
func Synthesize(partials []Partial, duration, decay float64) []float64 {
	n := int(SampleRate * duration)
	samples := make([]float64, n)

	for i := range samples {
		t := float64(i) / SampleRate

		var v float64
		for _, p := range partials {
			v += p.Amplitude * math.Sin(2*math.Pi*p.Frequency*t)
		}

		samples[i] = v * math.Exp(-decay*t)
	}

	var peak float64
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	// Guard against silent input blowing up the normalization.
	peak = math.Max(peak, 1e-9)

	for i := range samples {
		samples[i] /= peak
	}

	return samples
}

// EncodeWAV packages mono samples as a 16-bit PCM WAV byte stream.
func EncodeWAV(samples []float64) ([]byte, error) {
	format := beep.Format{
		SampleRate:  beep.SampleRate(SampleRate),
		NumChannels: 1,
		Precision:   2,
	}

	buf := &writeSeeker{}

	err := wav.Encode(buf, &sampleStreamer{samples: samples}, format)
	if err != nil {
		return nil, err
	}

	return buf.data, nil
}

// Tone is a convenience that synthesizes and encodes in one step.
func Tone(partials []Partial, duration, decay float64) ([]byte, error) {
	return EncodeWAV(Synthesize(partials, duration, decay))
}

// sampleStreamer adapts a mono sample slice to a beep.Streamer.
type sampleStreamer struct {
	samples []float64
	pos     int
}

func (s *sampleStreamer) Stream(out [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}

	for n = 0; n < len(out) && s.pos < len(s.samples); n++ {
		v := s.samples[s.pos]
		out[n][0] = v
		out[n][1] = v
		s.pos++
	}

	return n, true
}

func (s *sampleStreamer) Err() error {
	return nil
}
