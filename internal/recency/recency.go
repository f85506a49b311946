// File: internal/recency/recency.go

// Package recency classifies timestamps into day-based windows relative to
// now, for bucketing chats into groups like "today", "last week" and
// "older". Callers must hand it real time.Time values; timestamps arriving
// as ISO-8601 strings are parsed at the serialization boundary, never here.
package recency

import "time"

// IsWithinLastDays reports whether t falls within the last days relative to
// the current time.
//
// A timestamp in the future never matches. For days == 0 the comparison is
// by calendar day: t must share now's year, month and day. For days > 0 the
// comparison is a rolling wall-clock window of days*24h, so a timestamp 28
// hours old still satisfies days=1 even though it is on an earlier calendar
// day. The asymmetry at the days=0 boundary is deliberate.
func IsWithinLastDays(t time.Time, days int) bool {
	return isWithinLastDaysAt(t, time.Now(), days)
}

// IsBetweenDaysAgo reports whether t falls between minDaysAgo and maxDaysAgo,
// both bounds inclusive. minDaysAgo is the bound closer to today.
func IsBetweenDaysAgo(t time.Time, minDaysAgo, maxDaysAgo int) bool {
	return isBetweenDaysAgoAt(t, time.Now(), minDaysAgo, maxDaysAgo)
}

// IsOlderThanDays reports whether t is older than minDaysAgo, i.e. outside
// the window IsWithinLastDays(t, minDaysAgo) covers. It is the open-ended
// form of IsBetweenDaysAgo with no far bound.
func IsOlderThanDays(t time.Time, minDaysAgo int) bool {
	return !isWithinLastDaysAt(t, time.Now(), minDaysAgo)
}

func isWithinLastDaysAt(t, now time.Time, days int) bool {
	if t.After(now) {
		return false // silent exclusion, future timestamps never match
	}

	if days == 0 {
		ty, tm, td := t.Date()
		ny, nm, nd := now.Date()
		return ty == ny && tm == nm && td == nd
	}

	return now.Sub(t) <= time.Duration(days)*24*time.Hour
}

func isBetweenDaysAgoAt(t, now time.Time, minDaysAgo, maxDaysAgo int) bool {
	if minDaysAgo == maxDaysAgo && minDaysAgo == 0 {
		return isWithinLastDaysAt(t, now, 0)
	}

	return isWithinLastDaysAt(t, now, maxDaysAgo) &&
		!isWithinLastDaysAt(t, now, minDaysAgo-1)
}
