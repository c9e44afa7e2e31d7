package store

import "github.com/vinayakagude/chimes/internal/apperr"

var (
	ErrEndNotAfterStart = &apperr.Error{
		Message: "end time (%s) must be after start time (%s)",
	}

	ErrInvalidInterval = &apperr.Error{
		Message: "repeat interval must be at least 1 minute, got %d",
	}

	ErrInvalidPlayTime = &apperr.Error{
		Message: "play duration must be at least 1 second, got %d",
	}

	ErrWindowNotFound = &apperr.Error{
		Message: "no window matches id %q",
	}

	ErrAmbiguousWindowID = &apperr.Error{
		Message: "id prefix %q matches more than one window",
	}

	ErrSoundNotFound = &apperr.Error{
		Message: "no sound named %q in the library",
	}

	errDatabaseOpen = &apperr.Error{
		Message: "is chimes already running? Only one instance can be active at a time",
	}
)
