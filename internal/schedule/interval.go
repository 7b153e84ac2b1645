package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/salonops/salon-scheduler/internal/httperr"
)

// Interval is a half-open [Start, End) time-of-day range in minutes since
// midnight. Callers guarantee End > Start; wraparound past midnight is not
// supported.
type Interval struct {
	Start int
	End   int
}

// ParseClock converts an "HH:MM" string to minutes since midnight.
func ParseClock(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	return h*60 + m, nil
}

// ParseInterval builds an Interval from "HH:MM" bounds, requiring end > start.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}

	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}

	if e <= s {
		return Interval{}, httperr.ErrBusiness("end_before_start")
	}

	return Interval{Start: s, End: e}, nil
}

// Overlaps reports whether two half-open intervals share any instant.
// A single predicate covers containment in either direction and partial
// crossings; touching endpoints do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

func formatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func (i Interval) String() string {
	return formatClock(i.Start) + "-" + formatClock(i.End)
}
