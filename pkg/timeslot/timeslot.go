package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// All stored times are canonical HH:MM:SS; slot labels shown to clients
// are HH:MM. Both forms are accepted on input.

var ErrInvalidTime = errors.New("invalid time, use HH:MM or HH:MM:SS")

// Canonical normalizes a time string to HH:MM:SS.
func Canonical(s string) (string, error) {
	h, m, err := parse(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d:00", h, m), nil
}

// Label normalizes a time string to the HH:MM form used for slot labels.
func Label(s string) (string, error) {
	h, m, err := parse(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// MinuteOfDay converts a time string to minutes since midnight.
func MinuteOfDay(s string) (int, error) {
	h, m, err := parse(s)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// Generate walks from start to end in slotMinutes increments and returns
// the HH:MM labels that do not appear in the excluded set. Keys of
// excluded may be HH:MM or HH:MM:SS. Identical inputs always produce an
// identical ordered sequence.
func Generate(start, end string, slotMinutes int, excluded map[string]bool) ([]string, error) {
	if slotMinutes <= 0 {
		return nil, errors.New("slot duration must be positive")
	}

	startMin, err := MinuteOfDay(start)
	if err != nil {
		return nil, err
	}
	endMin, err := MinuteOfDay(end)
	if err != nil {
		return nil, err
	}

	skip := make(map[string]bool, len(excluded))
	for k := range excluded {
		label, err := Label(k)
		if err != nil {
			continue
		}
		skip[label] = true
	}

	slots := []string{}
	for cur := startMin; cur < endMin; cur += slotMinutes {
		label := fmt.Sprintf("%02d:%02d", cur/60, cur%60)
		if !skip[label] {
			slots = append(slots, label)
		}
	}
	return slots, nil
}

// FilterPast removes slots whose minute-of-day is not strictly greater
// than now's minute-of-day. Call it only when the selected day is today.
func FilterPast(slots []string, now time.Time) []string {
	nowMin := now.Hour()*60 + now.Minute()

	kept := []string{}
	for _, s := range slots {
		min, err := MinuteOfDay(s)
		if err != nil {
			continue
		}
		if min > nowMin {
			kept = append(kept, s)
		}
	}
	return kept
}

func parse(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, ErrInvalidTime
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, ErrInvalidTime
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidTime
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, 0, ErrInvalidTime
		}
	}
	return hour, minute, nil
}
