// Package engine decides which chime windows fire at a given instant. It is
// the only code that mutates per-window fired state.
package engine

import (
	"log/slog"
	"time"

	"github.com/vinayakagude/chimes/internal/models"
	"github.com/vinayakagude/chimes/internal/timeutil"
)

// SoundSource resolves sound references at fire time. A dangling reference
// is tolerated: the bucket is marked fired, but no event is emitted.
type SoundSource interface {
	GetSound(name string) (*models.SoundEntry, error)
}

// Evaluate runs one scheduling pass over all windows and returns the fire
// events due at now, in window order. Fired state is mutated in place; the
// caller is responsible for persisting it. Ticking any number of times
// within the same minute produces each event at most once.
func Evaluate(
	now time.Time,
	windows []*models.ChimeWindow,
	sounds SoundSource,
) []models.FireEvent {
	today := timeutil.DayKey(now)

	var events []models.FireEvent

	for _, w := range windows {
		event, ok := evaluateWindow(now, today, w, sounds)
		if ok {
			events = append(events, event)
		}
	}

	return events
}

func evaluateWindow(
	now time.Time,
	today string,
	w *models.ChimeWindow,
	sounds SoundSource,
) (models.FireEvent, bool) {
	// Day-boundary reset. Idempotent, so it is safe on every tick.
	if w.Fired.LastDay != today {
		w.Fired.LastDay = today
		w.Fired.Instants = make(map[string]struct{})
	}

	// A one-shot window never fires again after its first chime, even on a
	// later day.
	if !w.RepeatDaily && w.Fired.EverFired {
		return models.FireEvent{}, false
	}

	windowStart := w.Start.On(now)
	windowEnd := w.End.On(now)

	// Both boundaries are inclusive at their exact instants.
	if now.Before(windowStart) || now.After(windowEnd) {
		return models.FireEvent{}, false
	}

	elapsedMinutes := int(now.Sub(windowStart).Minutes())
	if elapsedMinutes%w.IntervalMins != 0 {
		return models.FireEvent{}, false
	}

	bucket := timeutil.BucketKey(now)
	if _, fired := w.Fired.Instants[bucket]; fired {
		return models.FireEvent{}, false
	}

	// The bucket is consumed even when the sound reference is dangling, so
	// a repaired library does not cause a late duplicate chime.
	w.Fired.Instants[bucket] = struct{}{}

	entry, err := sounds.GetSound(w.SoundRef)
	if err != nil {
		slog.Warn("skipping fire: sound not in library",
			slog.String("window_id", w.ID.String()),
			slog.String("label", w.Label),
			slog.String("sound", w.SoundRef),
			slog.String("instant", bucket),
		)

		return models.FireEvent{}, false
	}

	w.Fired.EverFired = true

	return models.FireEvent{
		WindowID:    w.ID,
		Instant:     bucket,
		Label:       w.Label,
		Sound:       *entry,
		PlaySeconds: w.PlaySeconds,
	}, true
}

// NextInstant returns the next minute bucket at or after now on which the
// window is scheduled to fire today, ignoring fired state. The second return
// value is false when no bucket remains today.
func NextInstant(now time.Time, w *models.ChimeWindow) (time.Time, bool) {
	windowStart := w.Start.On(now)
	windowEnd := w.End.On(now)

	if now.After(windowEnd) {
		return time.Time{}, false
	}

	if now.Before(windowStart) || now.Equal(windowStart) {
		return windowStart, true
	}

	elapsed := int(now.Sub(windowStart).Minutes())

	next := elapsed
	if rem := elapsed % w.IntervalMins; rem != 0 || now.Sub(windowStart)%time.Minute != 0 {
		next = elapsed - rem + w.IntervalMins
	}

	instant := windowStart.Add(time.Duration(next) * time.Minute)
	if instant.After(windowEnd) {
		return time.Time{}, false
	}

	return instant, true
}
