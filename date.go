package fxbmp

import (
	"time"
)

// ParseDate decodes a FAT date word relative to the MS-DOS epoch:
//  Bits 0–4: Day of month, 1–31.
//  Bits 5–8: Month of year, 1–12.
//  Bits 9–15: Count of years from 1980, 0–127.
// The result has a time of 00:00:00 UTC.
//
// A day or month of 0 is invalid, time.Time{} is returned then so that
// time.Time.IsZero() can be used.
// A month above 12 rolls over into the next year.
func ParseDate(input uint16) time.Time {
	dayOfMonth := input & 0x1F
	monthOfYear := input & 0x1E0 >> 5
	yearSince1980 := input & 0xFE00 >> 9

	if dayOfMonth == 0 || monthOfYear == 0 {
		return time.Time{}
	}

	return time.Date(1980+int(yearSince1980), time.Month(monthOfYear), int(dayOfMonth), 0, 0, 0, 0, time.UTC)
}

// ParseTime decodes a FAT time word with a granularity of 2 seconds:
//  Bits 0–4: 2-second count, 0–29.
//  Bits 5–10: Minutes, 0–59.
//  Bits 11–15: Hours, 0–23.
// The result is on January 1, year 1. Out of range fields are clamped to
// 23:59:59.
func ParseTime(input uint16) time.Time {
	seconds := int(input&0x1F) * 2
	minutes := input & 0x7E0 >> 5
	hours := input & 0xF800 >> 11

	result := time.Date(1, 1, 1, int(hours), int(minutes), seconds, 0, time.UTC)

	if result.Day() > 1 {
		return time.Date(1, 1, 1, 23, 59, 59, 0, time.UTC)
	}

	return result
}

// ModTime combines a date and a time word. It returns time.Time{} if the
// date is invalid.
func ModTime(date, clock uint16) time.Time {
	d := ParseDate(date)
	if d.IsZero() {
		return time.Time{}
	}

	t := ParseTime(clock)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
