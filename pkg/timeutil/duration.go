// Package timeutil parses and renders the short durations used for reveal
// pacing.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap        = map[string]time.Duration{
		"ms":      time.Millisecond,
		"msec":    time.Millisecond,
		"msecs":   time.Millisecond,
		"s":       time.Second,
		"sec":     time.Second,
		"secs":    time.Second,
		"second":  time.Second,
		"seconds": time.Second,
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
	}
)

// ParseInterval accepts Go duration syntax ("1.5s", "500ms") as well as
// spelled-out forms such as "3 seconds" or "1 min 30 sec". The result must be
// positive.
func ParseInterval(input string) (time.Duration, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return 0, fmt.Errorf("empty interval")
	}

	total, err := time.ParseDuration(trimmed)
	if err != nil {
		total, err = parseSegments(trimmed)
		if err != nil {
			return 0, err
		}
	}
	if total <= 0 {
		return 0, fmt.Errorf("interval must be greater than zero, got %s", total)
	}
	return total, nil
}

func parseSegments(remaining string) (time.Duration, error) {
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid interval segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid interval value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported interval unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = strings.TrimLeft(remaining[len(matches[0]):], " ,")
	}
	return total, nil
}

// Humanize renders d for people, e.g. "every 3 seconds" or "every 1m30s".
func Humanize(d time.Duration) string {
	switch {
	case d <= 0:
		return "never"
	case d%time.Second != 0:
		return "every " + d.String()
	case d == time.Second:
		return "every second"
	case d < time.Minute:
		return fmt.Sprintf("every %d seconds", d/time.Second)
	case d == time.Minute:
		return "every minute"
	case d%time.Minute == 0 && d < time.Hour:
		return fmt.Sprintf("every %d minutes", d/time.Minute)
	default:
		return "every " + Compact(d)
	}
}

// Compact renders a duration using hour/minute/second tokens, e.g. "1h2m3s".
func Compact(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return d.String()
	}
	return strings.Join(parts, "")
}
