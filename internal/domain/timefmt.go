package domain

import "time"

const (
	NoData          = "no data / データなし"
	shortTimeLayout = "02/01/2006 15:04:05 UTC"
)

// FormatShortTS formatea un unix timestamp (segundos) como DD/MM/YYYY HH:MM:SS UTC.
// nil significa que no hay registro.
func FormatShortTS(ts *int64) string {
	if ts == nil {
		return NoData
	}
	return time.Unix(*ts, 0).UTC().Format(shortTimeLayout)
}
