package synth

import (
	"fmt"
	"math/rand"

	"github.com/vinayakagude/chimes/internal/models"
)

// category seeds one family of procedural tones.
type category struct {
	namePrefix string
	baseFreq   float64
	decay      float64
}

var categories = []category{
	{namePrefix: "Bell", baseFreq: 880, decay: 3.5},
	{namePrefix: "Bowl", baseFreq: 196, decay: 1.2},
	{namePrefix: "Block", baseFreq: 1175, decay: 7.5},
	{namePrefix: "Gong", baseFreq: 98, decay: 0.9},
	{namePrefix: "Glass", baseFreq: 1568, decay: 2.8},
}

// Builtins returns the fixed built-in chime set.
func Builtins() ([]models.SoundEntry, error) {
	builtins := []struct {
		name     string
		partials []Partial
		duration float64
		decay    float64
	}{
		{
			name: "Soft Bell",
			partials: []Partial{
				{Frequency: 660, Amplitude: 0.6},
				{Frequency: 990, Amplitude: 0.4},
				{Frequency: 1320, Amplitude: 0.2},
			},
			duration: 2.2,
			decay:    2.0,
		},
		{
			name: "Singing Bowl",
			partials: []Partial{
				{Frequency: 196, Amplitude: 0.8},
				{Frequency: 392, Amplitude: 0.35},
				{Frequency: 294, Amplitude: 0.25},
			},
			duration: 3.0,
			decay:    1.1,
		},
		{
			name: "Wood Block",
			partials: []Partial{
				{Frequency: 880, Amplitude: 1.0},
			},
			duration: 0.35,
			decay:    6.5,
		},
		{
			name: "School Bell (synthetic)",
			partials: []Partial{
				{Frequency: 880, Amplitude: 0.9},
				{Frequency: 1760, Amplitude: 0.5},
				{Frequency: 2637, Amplitude: 0.25},
			},
			duration: 0.6,
			decay:    6.0,
		},
	}

	entries := make([]models.SoundEntry, 0, len(builtins))

	for _, b := range builtins {
		data, err := Tone(b.partials, b.duration, b.decay)
		if err != nil {
			return nil, err
		}

		entries = append(entries, models.SoundEntry{
			Name: b.name,
			MIME: MIMEWav,
			Data: data,
		})
	}

	return entries, nil
}

// Library generates n procedural tones. Categories are assigned round-robin
// and each instance draws 3-5 harmonics of the category's base frequency
// with a small random detune and roughly 1/k amplitude falloff. The output
// is fully determined by the seed.
func Library(seed int64, n int) ([]models.SoundEntry, error) {
	rng := rand.New(rand.NewSource(seed))

	entries := make([]models.SoundEntry, 0, n)

	for i := 0; i < n; i++ {
		cat := categories[i%len(categories)]

		numPartials := 3 + rng.Intn(3)

		partials := make([]Partial, 0, numPartials)

		for k := 1; k <= numPartials; k++ {
			detune := 1 + (rng.Float64()*2-1)*0.015

			partials = append(partials, Partial{
				Frequency: cat.baseFreq * float64(k) * detune,
				Amplitude: (0.85 + 0.3*rng.Float64()) / float64(k),
			})
		}

		duration := 1.5 + rng.Float64()*1.5

		data, err := Tone(partials, duration, cat.decay)
		if err != nil {
			return nil, err
		}

		entries = append(entries, models.SoundEntry{
			Name: fmt.Sprintf("%s %02d", cat.namePrefix, i/len(categories)+1),
			MIME: MIMEWav,
			Data: data,
		})
	}

	return entries, nil
}
