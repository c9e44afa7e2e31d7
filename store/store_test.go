package store_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinayakagude/chimes/internal/models"
	"github.com/vinayakagude/chimes/internal/timeutil"
	"github.com/vinayakagude/chimes/store"
)

func testClient(t *testing.T) *store.Client {
	t.Helper()

	db, err := store.NewClient(filepath.Join(t.TempDir(), "chimes.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func testDefinition(t *testing.T, start, end string) store.Definition {
	t.Helper()

	s, err := timeutil.ParseTimeOfDay(start)
	require.NoError(t, err)

	e, err := timeutil.ParseTimeOfDay(end)
	require.NoError(t, err)

	return store.Definition{
		Label:        "Morning sit",
		Start:        s,
		End:          e,
		IntervalMins: 30,
		SoundRef:     "Soft Bell",
		PlaySeconds:  8,
		RepeatDaily:  true,
	}
}

func TestAddWindow(t *testing.T) {
	db := testClient(t)

	w, err := db.AddWindow(testDefinition(t, "09:00", "17:00"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, w.ID)
	assert.Equal(t, "Morning sit", w.Label)
	assert.Empty(t, w.Fired.Instants)
	assert.Empty(t, w.Fired.LastDay)

	windows, err := db.ListWindows()
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, w.ID, windows[0].ID)
}

func TestAddWindowDefaultsLabel(t *testing.T) {
	db := testClient(t)

	def := testDefinition(t, "09:00", "17:00")
	def.Label = "  "

	w, err := db.AddWindow(def)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultLabel, w.Label)
}

func TestAddWindowValidation(t *testing.T) {
	cases := []struct {
		mutate  func(*store.Definition)
		wantErr error
		name    string
	}{
		{
			name: "end before start",
			mutate: func(d *store.Definition) {
				d.Start, _ = timeutil.ParseTimeOfDay("17:00")
				d.End, _ = timeutil.ParseTimeOfDay("09:00")
			},
			wantErr: store.ErrEndNotAfterStart,
		},
		{
			name: "end equals start",
			mutate: func(d *store.Definition) {
				d.End = d.Start
			},
			wantErr: store.ErrEndNotAfterStart,
		},
		{
			name: "zero interval",
			mutate: func(d *store.Definition) {
				d.IntervalMins = 0
			},
			wantErr: store.ErrInvalidInterval,
		},
		{
			name: "zero play duration",
			mutate: func(d *store.Definition) {
				d.PlaySeconds = 0
			},
			wantErr: store.ErrInvalidPlayTime,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := testClient(t)

			def := testDefinition(t, "09:00", "17:00")
			tc.mutate(&def)

			_, err := db.AddWindow(def)
			require.ErrorIs(t, err, tc.wantErr)

			windows, err := db.ListWindows()
			require.NoError(t, err)
			assert.Empty(t, windows, "an invalid window must not be stored")
		})
	}
}

func TestListWindowsInsertionOrder(t *testing.T) {
	db := testClient(t)

	labels := []string{"one", "two", "three", "four"}

	for _, label := range labels {
		def := testDefinition(t, "09:00", "17:00")
		def.Label = label

		_, err := db.AddWindow(def)
		require.NoError(t, err)
	}

	windows, err := db.ListWindows()
	require.NoError(t, err)
	require.Len(t, windows, len(labels))

	for i, w := range windows {
		assert.Equal(t, labels[i], w.Label)
	}
}

func TestDeleteWindow(t *testing.T) {
	db := testClient(t)

	w, err := db.AddWindow(testDefinition(t, "09:00", "17:00"))
	require.NoError(t, err)

	require.NoError(t, db.DeleteWindow(w.ID))

	windows, err := db.ListWindows()
	require.NoError(t, err)
	assert.Empty(t, windows)

	// Deleting an absent id is a no-op.
	assert.NoError(t, db.DeleteWindow(uuid.New()))
}

func TestFindWindowByPrefix(t *testing.T) {
	db := testClient(t)

	w, err := db.AddWindow(testDefinition(t, "09:00", "17:00"))
	require.NoError(t, err)

	found, err := db.FindWindow(w.ID.String()[:8])
	require.NoError(t, err)
	assert.Equal(t, w.ID, found.ID)

	_, err = db.FindWindow("ffffffff-none")
	assert.ErrorIs(t, err, store.ErrWindowNotFound)
}

func TestUpdateWindowState(t *testing.T) {
	db := testClient(t)

	w, err := db.AddWindow(testDefinition(t, "09:00", "17:00"))
	require.NoError(t, err)

	w.Fired.LastDay = "2024-03-14"
	w.Fired.Instants["09:00"] = struct{}{}
	w.Fired.EverFired = true

	require.NoError(t, db.UpdateWindowState(w))

	windows, err := db.ListWindows()
	require.NoError(t, err)
	require.Len(t, windows, 1)

	got := windows[0]
	assert.Equal(t, "2024-03-14", got.Fired.LastDay)
	assert.Contains(t, got.Fired.Instants, "09:00")
	assert.True(t, got.Fired.EverFired)
}

func TestSoundLastWriteWins(t *testing.T) {
	db := testClient(t)

	require.NoError(t, db.AddSound("bell", []byte{1}, "audio/wav"))
	require.NoError(t, db.AddSound("bell", []byte{2, 3}, "audio/mpeg"))

	entry, err := db.GetSound("bell")
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, entry.Data)
	assert.Equal(t, "audio/mpeg", entry.MIME)
}

func TestGetSoundMissing(t *testing.T) {
	db := testClient(t)

	_, err := db.GetSound("nope")
	assert.ErrorIs(t, err, store.ErrSoundNotFound)
}

func TestSeedSoundsPreservesExisting(t *testing.T) {
	db := testClient(t)

	require.NoError(t, db.AddSound("bell", []byte{9}, "audio/wav"))

	err := db.SeedSounds([]models.SoundEntry{
		{Name: "bell", MIME: "audio/wav", Data: []byte{1}},
		{Name: "bowl", MIME: "audio/wav", Data: []byte{2}},
	})
	require.NoError(t, err)

	bell, err := db.GetSound("bell")
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, bell.Data, "seeding must not clobber entries")

	bowl, err := db.GetSound("bowl")
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, bowl.Data)
}

func TestListSoundsNaturalOrder(t *testing.T) {
	db := testClient(t)

	for _, name := range []string{"Bell 10", "Bell 2", "Bell 1"} {
		require.NoError(t, db.AddSound(name, []byte{1}, "audio/wav"))
	}

	sounds, err := db.ListSounds()
	require.NoError(t, err)
	require.Len(t, sounds, 3)

	var names []string
	for _, s := range sounds {
		names = append(names, s.Name)
	}

	assert.Equal(t, []string{"Bell 1", "Bell 2", "Bell 10"}, names)
}
