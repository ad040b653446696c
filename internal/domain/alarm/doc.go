// Package alarm contains core domain types for the alarm scheduler.
//
// It defines Request (a pending countdown with its absolute expiry instant)
// and Class (the parity-based routing category that decides which countdown
// worker handles a request).
package alarm
