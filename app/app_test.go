package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinayakagude/chimes/internal/timeutil"
)

func TestToRawGitHubURL(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "blob url rewritten",
			input: "https://github.com/vinayakagude/Alarm/blob/main/bell.mp3",
			want:  "https://raw.githubusercontent.com/vinayakagude/Alarm/main/bell.mp3",
		},
		{
			name:  "direct url untouched",
			input: "https://example.com/sounds/bell.mp3",
			want:  "https://example.com/sounds/bell.mp3",
		},
		{
			name:  "github url without blob untouched",
			input: "https://github.com/vinayakagude/Alarm/releases",
			want:  "https://github.com/vinayakagude/Alarm/releases",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, toRawGitHubURL(tc.input))
		})
	}
}

func TestParseTimeOfDayLenient(t *testing.T) {
	cases := []struct {
		input string
		want  timeutil.TimeOfDay
	}{
		{input: "09:00", want: timeutil.TimeOfDay{Hour: 9}},
		{input: "9am", want: timeutil.TimeOfDay{Hour: 9}},
		{input: "5:30 pm", want: timeutil.TimeOfDay{Hour: 17, Minute: 30}},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parseTimeOfDay(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTimeOfDayRejectsGarbage(t *testing.T) {
	_, err := parseTimeOfDay("not a time at all zzz")
	assert.ErrorIs(t, err, errInvalidTimeInput)
}
