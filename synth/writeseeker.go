package synth

import (
	"fmt"
	"io"
)

// writeSeeker is an in-memory io.WriteSeeker. wav.Encode needs to seek back
// and patch the RIFF header once the data length is known, which rules out a
// plain bytes.Buffer.
type writeSeeker struct {
	data []byte
	pos  int64
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	if end := ws.pos + int64(len(p)); end > int64(len(ws.data)) {
		grown := make([]byte, end)
		copy(grown, ws.data)
		ws.data = grown
	}

	copy(ws.data[ws.pos:], p)
	ws.pos += int64(len(p))

	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64

	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = ws.pos + offset
	case io.SeekEnd:
		pos = int64(len(ws.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if pos < 0 {
		return 0, fmt.Errorf("negative seek position: %d", pos)
	}

	ws.pos = pos

	return pos, nil
}
