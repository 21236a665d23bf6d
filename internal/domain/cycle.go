package domain

import "time"

// CycleStats holds statistics about one full poll cycle.
type CycleStats struct {
	Connections int
	Playlists   int
	Updated     int
	NewItems    int
	Notified    int
	Skipped     int
	Errors      int
	Duration    time.Duration
}
