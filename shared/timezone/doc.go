// Package timezone keeps every timestamp the service produces in a single
// configured location. Bookings carry a calendar date plus a wall-clock
// time-of-day string, so combining them must happen in a known zone or the
// derived visit schedule drifts around DST boundaries.
package timezone
