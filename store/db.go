package store

import (
	"github.com/google/uuid"

	"github.com/vinayakagude/chimes/internal/models"
)

// DB is the schedule store interface.
type DB interface {
	// AddWindow validates a window definition and persists it with a fresh
	// id and an empty fired state
	AddWindow(def Definition) (*models.ChimeWindow, error)
	// UpdateWindowState persists a window whose fired state was mutated by
	// the engine
	UpdateWindowState(w *models.ChimeWindow) error
	// ListWindows returns all windows in insertion order
	ListWindows() ([]*models.ChimeWindow, error)
	// FindWindow resolves a window from a full id or unique id prefix
	FindWindow(idPrefix string) (*models.ChimeWindow, error)
	// DeleteWindow removes a window; absent ids are a no-op
	DeleteWindow(id uuid.UUID) error
	// AddSound inserts or replaces a library entry (last write wins)
	AddSound(name string, data []byte, mime string) error
	// GetSound retrieves a sound by name
	GetSound(name string) (*models.SoundEntry, error)
	// DeleteSound removes a sound from the library
	DeleteSound(name string) error
	// ListSounds returns all sounds in natural name order, data omitted
	ListSounds() ([]models.SoundEntry, error)
	// SeedSounds inserts library entries that are not present yet
	SeedSounds(entries []models.SoundEntry) error
	// Close ends the database connection
	Close() error
}
