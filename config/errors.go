package config

import "github.com/vinayakagude/chimes/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidTimezone = &apperr.Error{
		Message: "invalid timezone: %s (must be an IANA name like America/New_York)",
	}

	errInvalidTickRate = &apperr.Error{
		Message: "invalid tick rate: %v (must be a positive duration)",
	}
)
