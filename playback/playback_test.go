package playback

import (
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinayakagude/chimes/internal/models"
	"github.com/vinayakagude/chimes/synth"
)

func TestDecodeSynthesizedWAV(t *testing.T) {
	data, err := synth.Tone(
		[]synth.Partial{{Frequency: 880, Amplitude: 1}},
		0.1,
		6.5,
	)
	require.NoError(t, err)

	entry := models.SoundEntry{
		Name: "bell",
		MIME: "audio/wav",
		Data: data,
	}

	stream, format, err := decode(entry)
	require.NoError(t, err)

	defer stream.Close()

	assert.Equal(t, beep.SampleRate(synth.SampleRate), format.SampleRate)
	assert.Equal(t, synth.SampleRate/10, stream.Len())
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	entry := models.SoundEntry{
		Name: "clip",
		MIME: "audio/midi",
		Data: []byte{1, 2, 3},
	}

	_, _, err := decode(entry)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
