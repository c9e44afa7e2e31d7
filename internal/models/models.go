// Package models defines the data types held in the schedule store
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/vinayakagude/chimes/internal/timeutil"
)

// DefaultLabel is used for windows created without a label.
const DefaultLabel = "Meditation"

// FiredState records which minute buckets have already fired for a window on
// the current calendar day. It is mutated exclusively by the engine.
type FiredState struct {
	Instants map[string]struct{} `json:"instants"`
	// LastDay is the calendar date ("YYYY-MM-DD") the window was last
	// evaluated on. State resets when it no longer matches today.
	LastDay string `json:"last_day"`
	// EverFired is set on the first fire and never cleared. It disables
	// windows created with repeat_daily=false.
	EverFired bool `json:"ever_fired"`
}

// ChimeWindow is a recurring daily chime rule.
type ChimeWindow struct {
	CreatedAt    time.Time          `json:"created_at"`
	Fired        FiredState         `json:"fired"`
	Label        string             `json:"label"`
	SoundRef     string             `json:"sound"`
	Start        timeutil.TimeOfDay `json:"start"`
	End          timeutil.TimeOfDay `json:"end"`
	IntervalMins int                `json:"interval_mins"`
	PlaySeconds  int                `json:"play_seconds"`
	ID           uuid.UUID          `json:"id"`
	RepeatDaily  bool               `json:"repeat_daily"`
}

// SoundEntry is a named, playable audio clip.
type SoundEntry struct {
	Name string `json:"name"`
	MIME string `json:"mime"`
	Data []byte `json:"data"`
}

// FireEvent instructs the playback layer to sound a chime. It is produced by
// one engine evaluation and consumed immediately, never persisted.
type FireEvent struct {
	Instant     string
	Label       string
	Sound       SoundEntry
	PlaySeconds int
	WindowID    uuid.UUID
}
