// Package dateutil provides timestamp helpers for report file naming.
package dateutil

import "time"

// StampLayout is the filename timestamp layout (second precision).
// Produces e.g. "20260115_143207" for Jan 15 2026, 14:32:07.
const StampLayout = "20060102_150405"

// Stamp formats t for embedding in a generated report filename.
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}
