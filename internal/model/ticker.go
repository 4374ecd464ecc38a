package model

import "github.com/dm/actdash/internal/format"

// UptimeTicker is a seconds counter that is rebased from a server measurement
// and advanced locally once per second in between.
//
// Every SetBase starts a new generation. The caller schedules its 1 Hz
// increments tagged with the generation it got back; Advance ignores any
// increment scheduled for an older base, so a rebase never double-counts.
type UptimeTicker struct {
	seconds int64
	gen     uint64
}

// SetBase replaces the counter value and returns the new cadence generation.
// Negative values are stored as zero.
func (u *UptimeTicker) SetBase(seconds int64) uint64 {
	if seconds < 0 {
		seconds = 0
	}
	u.seconds = seconds
	u.gen++
	return u.gen
}

// Advance adds one second if gen is the current generation and reports
// whether it did.
func (u *UptimeTicker) Advance(gen uint64) bool {
	if gen == 0 || gen != u.gen {
		return false
	}
	u.seconds++
	return true
}

// Gen returns the current generation; zero until the first SetBase.
func (u *UptimeTicker) Gen() uint64 {
	return u.gen
}

// Running reports whether a base has ever been set.
func (u *UptimeTicker) Running() bool {
	return u.gen > 0
}

// Seconds returns the current counter value.
func (u *UptimeTicker) Seconds() int64 {
	return u.seconds
}

// String formats the counter as HHhMMmSSs.
func (u *UptimeTicker) String() string {
	return format.FormatUptime(u.seconds)
}
