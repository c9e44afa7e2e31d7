package timeutil_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinayakagude/chimes/internal/timeutil"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input   string
		want    timeutil.TimeOfDay
		wantErr bool
	}{
		{input: "09:00", want: timeutil.TimeOfDay{Hour: 9}},
		{input: "23:59", want: timeutil.TimeOfDay{Hour: 23, Minute: 59}},
		{input: "00:00", want: timeutil.TimeOfDay{}},
		{input: " 17:30 ", want: timeutil.TimeOfDay{Hour: 17, Minute: 30}},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "-1:00", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "12", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := timeutil.ParseTimeOfDay(tc.input)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTimeOfDayOn(t *testing.T) {
	day := time.Date(2024, time.March, 14, 22, 45, 12, 0, time.UTC)

	tod := timeutil.TimeOfDay{Hour: 9, Minute: 30}

	got := tod.On(day)

	assert.Equal(t, time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC), got)
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	tod := timeutil.TimeOfDay{Hour: 7, Minute: 5}

	b, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"07:05"`, string(b))

	var got timeutil.TimeOfDay

	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, tod, got)
}

func TestDayAndBucketKeys(t *testing.T) {
	now := time.Date(2024, time.March, 14, 9, 5, 59, 0, time.UTC)

	assert.Equal(t, "2024-03-14", timeutil.DayKey(now))
	assert.Equal(t, "09:05", timeutil.BucketKey(now))
}
