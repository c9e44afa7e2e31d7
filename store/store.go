// Package store connects to the data store and manages chime windows and the
// sound library
package store

import (
	"cmp"
	"encoding/json"
	"io/fs"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	bolt "go.etcd.io/bbolt"

	"github.com/vinayakagude/chimes/internal/models"
	"github.com/vinayakagude/chimes/internal/timeutil"
)

const (
	windowBucket = "windows"
	soundBucket  = "sounds"
)

// Definition is the user-supplied input for a new chime window.
type Definition struct {
	Label        string
	SoundRef     string
	Start        timeutil.TimeOfDay
	End          timeutil.TimeOfDay
	IntervalMins int
	PlaySeconds  int
	RepeatDaily  bool
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// NewClient returns a client connected to the database at pathToDB, creating
// the file and buckets as needed.
func NewClient(pathToDB string) (*Client, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		return nil, errDatabaseOpen.Wrap(err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{windowBucket, soundBucket} {
			_, err := tx.CreateBucketIfNotExists([]byte(name))
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Client{db}, nil
}

// windowKey orders windows by creation time, with the id as a tiebreak so
// that two windows created in the same nanosecond never collide.
func windowKey(w *models.ChimeWindow) []byte {
	key := string(timeutil.ToKey(w.CreatedAt)) + "-" + w.ID.String()

	return []byte(key)
}

// AddWindow validates the definition, assigns an id, and persists the new
// window. The fired state starts empty.
func (c *Client) AddWindow(def Definition) (*models.ChimeWindow, error) {
	if !def.Start.Before(def.End) {
		return nil, ErrEndNotAfterStart.Fmt(def.End, def.Start)
	}

	if def.IntervalMins < 1 {
		return nil, ErrInvalidInterval.Fmt(def.IntervalMins)
	}

	if def.PlaySeconds < 1 {
		return nil, ErrInvalidPlayTime.Fmt(def.PlaySeconds)
	}

	label := strings.TrimSpace(def.Label)
	if label == "" {
		label = models.DefaultLabel
	}

	w := &models.ChimeWindow{
		ID:           uuid.New(),
		Label:        label,
		Start:        def.Start,
		End:          def.End,
		IntervalMins: def.IntervalMins,
		SoundRef:     def.SoundRef,
		PlaySeconds:  def.PlaySeconds,
		RepeatDaily:  def.RepeatDaily,
		CreatedAt:    time.Now(),
		Fired: models.FiredState{
			Instants: make(map[string]struct{}),
		},
	}

	err := c.putWindow(w)
	if err != nil {
		return nil, err
	}

	return w, nil
}

func (c *Client) putWindow(w *models.ChimeWindow) error {
	value, err := json.Marshal(w)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(windowBucket)).Put(windowKey(w), value)
	})
}

// UpdateWindowState persists the fired state mutated by the engine.
func (c *Client) UpdateWindowState(w *models.ChimeWindow) error {
	return c.putWindow(w)
}

// ListWindows returns all windows in insertion order.
func (c *Client) ListWindows() ([]*models.ChimeWindow, error) {
	var windows []*models.ChimeWindow

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(windowBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var w models.ChimeWindow

			err := json.Unmarshal(v, &w)
			if err != nil {
				return err
			}

			if w.Fired.Instants == nil {
				w.Fired.Instants = make(map[string]struct{})
			}

			windows = append(windows, &w)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// RFC3339Nano trims trailing zeros, so key order is not strictly
	// chronological.
	slices.SortStableFunc(windows, func(a, b *models.ChimeWindow) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return windows, nil
}

// FindWindow resolves a window from a full id or a unique id prefix.
func (c *Client) FindWindow(idPrefix string) (*models.ChimeWindow, error) {
	windows, err := c.ListWindows()
	if err != nil {
		return nil, err
	}

	var match *models.ChimeWindow

	for _, w := range windows {
		if strings.HasPrefix(w.ID.String(), strings.ToLower(idPrefix)) {
			if match != nil {
				return nil, ErrAmbiguousWindowID.Fmt(idPrefix)
			}

			match = w
		}
	}

	if match == nil {
		return nil, ErrWindowNotFound.Fmt(idPrefix)
	}

	return match, nil
}

// DeleteWindow removes a window. Deleting an absent window is a no-op.
func (c *Client) DeleteWindow(id uuid.UUID) error {
	return c.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(windowBucket))

		cur := bucket.Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var w models.ChimeWindow

			err := json.Unmarshal(v, &w)
			if err != nil {
				return err
			}

			if w.ID == id {
				return cur.Delete()
			}
		}

		return nil
	})
}

// AddSound inserts a sound into the library. A name collision replaces the
// existing entry (last write wins).
func (c *Client) AddSound(name string, data []byte, mime string) error {
	entry := models.SoundEntry{
		Name: name,
		MIME: mime,
		Data: data,
	}

	value, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(soundBucket)).Put([]byte(name), value)
	})
}

// GetSound retrieves a sound by name.
func (c *Client) GetSound(name string) (*models.SoundEntry, error) {
	var entry models.SoundEntry

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(soundBucket)).Get([]byte(name))
		if v == nil {
			return ErrSoundNotFound.Fmt(name)
		}

		return json.Unmarshal(v, &entry)
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// DeleteSound removes a sound from the library. Windows referencing it are
// left untouched and simply stop firing audibly.
func (c *Client) DeleteSound(name string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(soundBucket)).Delete([]byte(name))
	})
}

// ListSounds returns all sounds in natural name order, without waveform data.
func (c *Client) ListSounds() ([]models.SoundEntry, error) {
	var sounds []models.SoundEntry

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(soundBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var entry models.SoundEntry

			err := json.Unmarshal(v, &entry)
			if err != nil {
				return err
			}

			entry.Data = nil

			sounds = append(sounds, entry)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(sounds, func(i, j int) bool {
		return natural.Less(sounds[i].Name, sounds[j].Name)
	})

	return sounds, nil
}

// SeedSounds inserts library entries that are not present yet. Existing
// entries, including user overrides, are preserved.
func (c *Client) SeedSounds(entries []models.SoundEntry) error {
	return c.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(soundBucket))

		for _, entry := range entries {
			if bucket.Get([]byte(entry.Name)) != nil {
				continue
			}

			value, err := json.Marshal(entry)
			if err != nil {
				return err
			}

			err = bucket.Put([]byte(entry.Name), value)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Close ends the database connection.
func (c *Client) Close() error {
	return c.DB.Close()
}
