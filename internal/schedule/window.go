package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// TimeWindow is a working-hours range in minutes since midnight,
// half-open in the sense that End is the last admissible slot boundary.
type TimeWindow struct {
	Start int
	End   int
}

var clockRe = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(AM|PM)$`)

// ParseWindow parses a provider hours string like "6 PM - 9 PM" or
// "10:30 AM - 2 PM" into a TimeWindow. A malformed string or a range
// with start >= end is not an error: providers with unusable hours
// simply have no bookable window, so the second return is false.
func ParseWindow(text string) (TimeWindow, bool) {
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return TimeWindow{}, false
	}

	start, ok := clockToMinutes(strings.TrimSpace(parts[0]))
	if !ok {
		return TimeWindow{}, false
	}
	end, ok := clockToMinutes(strings.TrimSpace(parts[1]))
	if !ok {
		return TimeWindow{}, false
	}
	if start >= end {
		return TimeWindow{}, false
	}

	return TimeWindow{Start: start, End: end}, true
}

func clockToMinutes(clock string) (int, bool) {
	m := clockRe.FindStringSubmatch(clock)
	if m == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, false
	}

	switch strings.ToUpper(m[3]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}
	return hour*60 + minute, true
}
