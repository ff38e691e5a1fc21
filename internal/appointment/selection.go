package appointment

import (
	"fmt"
	"time"
)

// CommonMinutes are the quarter-hour shortcuts offered next to the minute grid.
var CommonMinutes = []int{0, 15, 30, 45}

// Selection is the current state of the date/time picker.
type Selection struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-DaysInMonth
	Hour   int // 0-23
	Minute int // 0-59
}

// NewSelection starts on today's date at 12:00.
func NewSelection(now time.Time) Selection {
	return Selection{
		Year:   now.Year(),
		Month:  int(now.Month()),
		Day:    now.Day(),
		Hour:   12,
		Minute: 0,
	}
}

// DaysInMonth returns the number of days in month (1-12) of year.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Normalize clamps every field into range; the day is clamped to the last
// day of the selected month.
func (s Selection) Normalize() Selection {
	s.Month = clamp(s.Month, 1, 12)
	s.Hour = clamp(s.Hour, 0, 23)
	s.Minute = clamp(s.Minute, 0, 59)
	s.Day = clamp(s.Day, 1, DaysInMonth(s.Year, s.Month))
	return s
}

// Days lists the selectable days of the current month.
func (s Selection) Days() []int {
	n := DaysInMonth(s.Year, s.Month)
	days := make([]int, n)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// StepYear moves the year by delta.
func (s Selection) StepYear(delta int) Selection {
	s.Year += delta
	return s.Normalize()
}

// StepMonth moves the month by delta, wrapping within the year.
func (s Selection) StepMonth(delta int) Selection {
	s.Month = wrap(s.Month-1+delta, 12) + 1
	return s.Normalize()
}

// StepDay moves the day by delta, wrapping within the month.
func (s Selection) StepDay(delta int) Selection {
	s.Day = wrap(s.Day-1+delta, DaysInMonth(s.Year, s.Month)) + 1
	return s
}

// StepHour moves the hour by delta, wrapping within the day.
func (s Selection) StepHour(delta int) Selection {
	s.Hour = wrap(s.Hour+delta, 24)
	return s
}

// StepMinute moves the minute by delta, wrapping within the hour.
func (s Selection) StepMinute(delta int) Selection {
	s.Minute = wrap(s.Minute+delta, 60)
	return s
}

// NextCommonMinute jumps to the next quarter-hour shortcut after the current minute.
func (s Selection) NextCommonMinute() Selection {
	for _, m := range CommonMinutes {
		if m > s.Minute {
			s.Minute = m
			return s
		}
	}
	s.Minute = CommonMinutes[0]
	return s
}

// Time returns the selection as a time in loc.
func (s Selection) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	n := s.Normalize()
	return time.Date(n.Year, time.Month(n.Month), n.Day, n.Hour, n.Minute, 0, 0, loc)
}

// DateString renders the canonical DD/MM/YYYY form.
func (s Selection) DateString() string {
	return fmt.Sprintf("%02d/%02d/%04d", s.Day, s.Month, s.Year)
}

// TimeString renders the canonical HH:MM form.
func (s Selection) TimeString() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
