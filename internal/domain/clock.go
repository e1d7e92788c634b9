package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day expressed in seconds since midnight, 0 <= c < 86400.
type Clock int32

const secondsPerDay = 24 * 60 * 60

// ParseClock parses "HH:MM" or "HH:MM:SS" (as Postgres renders TIME columns).
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("time of day %q: want HH:MM or HH:MM:SS", s)
	}
	limits := [3]int{23, 59, 59}
	var v [3]int
	for i, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("time of day %q: malformed component %q", s, p)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("time of day %q: component %q out of range", s, p)
		}
		v[i] = n
	}
	return Clock(v[0]*3600 + v[1]*60 + v[2]), nil
}

// MustClock is ParseClock for literals; it panics on malformed input.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockOf returns the time of day of t in t's location.
func ClockOf(t time.Time) Clock {
	h, m, s := t.Clock()
	return Clock(h*3600 + m*60 + s)
}

// Valid reports whether c is inside one day.
func (c Clock) Valid() bool { return c >= 0 && c < secondsPerDay }

// String renders HH:MM, or HH:MM:SS when seconds are set.
func (c Clock) String() string {
	h, m, s := int(c)/3600, int(c)%3600/60, int(c)%60
	if s == 0 {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
