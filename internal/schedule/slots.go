package schedule

import "fmt"

// Slots expands a window into the ordered slot start times for the given
// granularity, formatted as zero-padded "HH:MM". A slot is only emitted
// when the full slot fits inside the window, so a trailing partial slot
// is dropped. The sequence is recomputed on every call.
func Slots(w TimeWindow, granularityMinutes int) ([]string, error) {
	if granularityMinutes <= 0 {
		return nil, fmt.Errorf("slot granularity must be positive, got %d", granularityMinutes)
	}

	var slots []string
	for t := w.Start; t+granularityMinutes <= w.End; t += granularityMinutes {
		slots = append(slots, FormatMinutes(t))
	}
	return slots, nil
}

// FormatMinutes renders minutes since midnight as "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
