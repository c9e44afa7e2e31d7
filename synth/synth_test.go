package synth_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinayakagude/chimes/synth"
)

func TestSynthesizeLengthAndNormalization(t *testing.T) {
	partials := []synth.Partial{
		{Frequency: 660, Amplitude: 0.6},
		{Frequency: 990, Amplitude: 0.4},
	}

	samples := synth.Synthesize(partials, 0.5, 2.0)

	assert.Len(t, samples, synth.SampleRate/2)

	var peak float64
	for _, v := range samples {
		require.False(t, math.IsNaN(v), "no NaN samples")
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	assert.InDelta(t, 1.0, peak, 1e-9, "peak amplitude must be normalized")
}

func TestSynthesizeSilentInput(t *testing.T) {
	samples := synth.Synthesize(nil, 0.1, 1.0)

	for _, v := range samples {
		require.False(t, math.IsNaN(v))
		require.Zero(t, v)
	}
}

func TestEncodeWAVHeader(t *testing.T) {
	samples := synth.Synthesize(
		[]synth.Partial{{Frequency: 880, Amplitude: 1}},
		0.1,
		6.5,
	)

	data, err := synth.EncodeWAV(samples)
	require.NoError(t, err)

	require.Greater(t, len(data), 44, "header plus PCM payload")
	assert.Equal(t, []byte("RIFF"), data[0:4])
	assert.Equal(t, []byte("WAVE"), data[8:12])
}

func TestBuiltins(t *testing.T) {
	entries, err := synth.Builtins()
	require.NoError(t, err)

	want := []string{
		"Soft Bell",
		"Singing Bowl",
		"Wood Block",
		"School Bell (synthetic)",
	}

	require.Len(t, entries, len(want))

	for i, entry := range entries {
		assert.Equal(t, want[i], entry.Name)
		assert.Equal(t, synth.MIMEWav, entry.MIME)
		assert.NotEmpty(t, entry.Data)
	}
}

func TestLibraryDeterminism(t *testing.T) {
	first, err := synth.Library(7, 20)
	require.NoError(t, err)

	second, err := synth.Library(7, 20)
	require.NoError(t, err)

	require.Len(t, first, 20)
	require.Len(t, second, 20)

	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.True(
			t,
			bytes.Equal(first[i].Data, second[i].Data),
			"waveform %q must be byte-identical for equal seeds",
			first[i].Name,
		)
	}
}

func TestLibrarySeedChangesOutput(t *testing.T) {
	first, err := synth.Library(7, 1)
	require.NoError(t, err)

	second, err := synth.Library(8, 1)
	require.NoError(t, err)

	assert.False(
		t,
		bytes.Equal(first[0].Data, second[0].Data),
		"different seeds must produce different waveforms",
	)
}

func TestLibraryNaming(t *testing.T) {
	entries, err := synth.Library(7, 7)
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name)
	}

	want := []string{
		"Bell 01",
		"Bowl 01",
		"Block 01",
		"Gong 01",
		"Glass 01",
		"Bell 02",
		"Bowl 02",
	}

	if !assert.ObjectsAreEqual(want, names) {
		t.Fatalf("unexpected library names: %s", spew.Sdump(names))
	}
}
