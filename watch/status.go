package watch

import (
	"bufio"
	"encoding/json"
	"os"
	"time"

	"github.com/vinayakagude/chimes/config"
	"github.com/vinayakagude/chimes/engine"
)

// Status summarises the running loop for external inspection.
type Status struct {
	UpdatedAt time.Time   `json:"updated_at"`
	Windows   int         `json:"windows"`
	Upcoming  []NextChime `json:"upcoming"`
}

// NextChime is the next scheduled instant for one window.
type NextChime struct {
	Label string    `json:"label"`
	At    time.Time `json:"at"`
}

// writeStatusFile records the loop status in the data directory.
func (m *Model) writeStatusFile(now time.Time) error {
	s := Status{
		UpdatedAt: now,
		Windows:   len(m.windows),
	}

	for _, w := range m.windows {
		if !w.RepeatDaily && w.Fired.EverFired {
			continue
		}

		if instant, ok := engine.NextInstant(now, w); ok {
			s.Upcoming = append(s.Upcoming, NextChime{
				Label: w.Label,
				At:    instant,
			})
		}
	}

	statusFile, err := os.Create(config.StatusFilePath())
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}
