package app

import "github.com/vinayakagude/chimes/internal/apperr"

var (
	errInvalidTimeInput = &apperr.Error{
		Message: "unable to parse %q as a time of day (try HH:MM)",
	}

	errExpectedPositiveInt = &apperr.Error{
		Message: "expected an integer greater than zero",
	}

	errWindowIDRequired = &apperr.Error{
		Message: "a window id (or unique id prefix) is required. See 'chimes list'",
	}

	errSoundNameRequired = &apperr.Error{
		Message: "a sound name is required. See 'chimes sounds list'",
	}

	errSoundSourceRequired = &apperr.Error{
		Message: "either --file or --url is required",
	}

	errFetchStatus = &apperr.Error{
		Message: "unexpected response status: %s",
	}

	errFetchEmpty = &apperr.Error{
		Message: "the response body was empty",
	}
)
