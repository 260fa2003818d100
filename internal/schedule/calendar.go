package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a zone-naive calendar day. Booking dates are plain
// "YYYY-MM-DD" strings throughout the system and are never shifted
// through a time zone.
type Date struct {
	Year  int
	Month int
	Day   int
}

var dayCodes = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ParseDate parses an ISO calendar-day string.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	if month < 1 || month > 12 || day < 1 || day > daysInMonth(year, month) {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DayCode returns the three-letter weekday code ("Sun".."Sat") using the
// proleptic Gregorian calendar (Sakamoto's method). No clock or time zone
// is involved.
func (d Date) DayCode() string {
	t := [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	y := d.Year
	if d.Month < 3 {
		y--
	}
	w := (y + y/4 - y/100 + y/400 + t[d.Month-1] + d.Day) % 7
	return dayCodes[w]
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if isLeap(year) {
			return 29
		}
		return 28
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
