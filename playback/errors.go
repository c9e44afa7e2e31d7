package playback

import "github.com/vinayakagude/chimes/internal/apperr"

var (
	ErrUnsupportedFormat = &apperr.Error{
		Message: "unsupported sound format: %q (must be wav, mp3, ogg, or flac)",
	}

	errSpeakerInit = &apperr.Error{
		Message: "unable to open the audio device",
	}
)
