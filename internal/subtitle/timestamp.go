package subtitle

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrFormat = errors.New("invalid timestamp format")
	ErrRange  = errors.New("timestamp component out of range")
)

// HH:MM:SS,mmm or HH:MM:SS,mm
var timestampRegex = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{2,3})$`)

// FormatError reports a timestamp that does not match the SRT grammar.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	if e.Input == "" {
		return "empty timestamp"
	}
	return fmt.Sprintf("malformed timestamp %q (expected HH:MM:SS,mmm)", e.Input)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// RangeError reports a well formed timestamp with an impossible component.
type RangeError struct {
	Input     string
	Component string
	Value     int
	Max       int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf(
		"timestamp %q: %s %d exceeds %d",
		e.Input,
		e.Component,
		e.Value,
		e.Max,
	)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// ParseTimestamp converts an SRT clock value into milliseconds since
// 00:00:00,000. A two digit fraction is read as hundredths and scaled by 10.
func ParseTimestamp(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &FormatError{}
	}

	matches := timestampRegex.FindStringSubmatch(s)
	if len(matches) != 5 {
		return 0, &FormatError{Input: s}
	}

	// the regex guarantees digits, Atoi cannot fail here
	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])
	sec, _ := strconv.Atoi(matches[3])
	ms, _ := strconv.Atoi(matches[4])
	if len(matches[4]) == 2 {
		ms *= 10
	}

	limits := []struct {
		name  string
		value int
		max   int
	}{
		{"hours", h, 23},
		{"minutes", m, 59},
		{"seconds", sec, 59},
		{"milliseconds", ms, 999},
	}
	for _, l := range limits {
		if l.value > l.max {
			return 0, &RangeError{
				Input:     s,
				Component: l.name,
				Value:     l.value,
				Max:       l.max,
			}
		}
	}

	return int64((h*3600+m*60+sec)*1000 + ms), nil
}

// renders milliseconds back into HH:MM:SS,mmm
func FormatTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / 3_600_000
	minutes := (ms / 60_000) % 60
	seconds := (ms / 1000) % 60
	millis := ms % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
