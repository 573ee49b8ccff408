package view

import (
	"fmt"
	"time"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders size in the smallest unit where the value is
// at least one, with two decimal places.
func FormatFileSize(size int64) string {
	value := float64(size)
	unit := 0
	for unit < len(sizeUnits)-1 && value >= 1024 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}

// FormatUploadAge renders how long ago a file was uploaded. Within 24
// hours the age is relative; beyond that the absolute date is shown.
func FormatUploadAge(uploadedAt, now time.Time) string {
	age := now.Sub(uploadedAt)

	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%d min ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return uploadedAt.Format("Jan 2, 2006")
	}
}
