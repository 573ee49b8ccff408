package view

import (
	"testing"
	"time"
)

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0.00 Bytes"},
		{512, "512.00 Bytes"},
		{1023, "1023.00 Bytes"},
		{1024, "1.00 KB"},
		{512 * 1024, "512.00 KB"},
		{16 * 1024 * 1024, "16.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
		{5 * 1024 * 1024 * 1024 * 1024, "5120.00 GB"},
	}

	for _, tc := range cases {
		if got := FormatFileSize(tc.size); got != tc.want {
			t.Fatalf("FormatFileSize(%d) = %q, want %q", tc.size, got, tc.want)
		}
	}
}

func TestFormatUploadAge(t *testing.T) {
	now := time.Date(2025, time.March, 14, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		age  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{59 * time.Second, "just now"},
		{time.Minute, "1 min ago"},
		{45 * time.Minute, "45 min ago"},
		{time.Hour, "1h ago"},
		{23*time.Hour + 30*time.Minute, "23h ago"},
		{25 * time.Hour, "Mar 13, 2025"},
		{30 * 24 * time.Hour, "Feb 12, 2025"},
	}

	for _, tc := range cases {
		if got := FormatUploadAge(now.Add(-tc.age), now); got != tc.want {
			t.Fatalf("FormatUploadAge(-%v) = %q, want %q", tc.age, got, tc.want)
		}
	}
}
