// Package utils holds the date formatting helpers shared by the session
// views: localized display strings and remaining-time-until-expiry.
package utils

import (
	"fmt"
	"time"
)

// FormatDateLocal renders an ISO timestamp as dd/mm/yyyy in local time.
// Returns "" for blank or unparseable input.
func FormatDateLocal(isoString string) string {
	t, ok := parseISO(isoString)
	if !ok {
		return ""
	}
	return t.Local().Format("02/01/2006")
}

// FormatTimeLocal renders an ISO timestamp as a 24h clock time, e.g. "14:30".
func FormatTimeLocal(isoString string) string {
	t, ok := parseISO(isoString)
	if !ok {
		return ""
	}
	return t.Local().Format("15:04")
}

// FormatDateTimeLocal renders the full date and time with the zone
// abbreviation, e.g. "02/09/2026 14:30 CEST".
func FormatDateTimeLocal(isoString string) string {
	t, ok := parseISO(isoString)
	if !ok {
		return ""
	}
	return t.Local().Format("02/01/2006 15:04 MST")
}

// TimeRemaining describes how long until expiry relative to now, as
// "<h>h <m>m remaining", or "Expired" once the instant has passed.
func TimeRemaining(expiresAt time.Time, now time.Time) string {
	diff := expiresAt.Sub(now)
	if diff <= 0 {
		return "Expired"
	}

	hours := int(diff / time.Hour)
	minutes := int((diff % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm remaining", hours, minutes)
}

func parseISO(isoString string) (time.Time, bool) {
	if isoString == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, isoString)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
