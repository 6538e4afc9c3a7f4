package dataset

import (
	"strings"
	"time"
)

// Sentinels for "no filter". Sunday is a valid weekday, so the day filter
// needs an out-of-range value rather than the zero value.
const (
	AnyMonth = time.Month(0)
	AnyDay   = time.Weekday(-1)
)

// Filter restricts trips by start-time month and/or weekday.
type Filter struct {
	Month time.Month
	Day   time.Weekday
}

// NewFilter returns a filter that matches every trip.
func NewFilter() Filter {
	return Filter{Month: AnyMonth, Day: AnyDay}
}

// Matches reports whether the trip passes both predicates.
func (f Filter) Matches(t Trip) bool {
	if f.Month != AnyMonth && t.StartTime.Month() != f.Month {
		return false
	}
	if f.Day != AnyDay && t.StartTime.Weekday() != f.Day {
		return false
	}
	return true
}

// Apply returns a derived dataset containing the matching trips in their
// original order. The input dataset is left untouched; an unset filter is an
// identity pass-through over a fresh view.
func (f Filter) Apply(ds *Dataset) *Dataset {
	out := &Dataset{
		City:         ds.City,
		HasGender:    ds.HasGender,
		HasBirthYear: ds.HasBirthYear,
		Skipped:      ds.Skipped,
	}
	out.Trips = make([]Trip, 0, len(ds.Trips))
	for _, t := range ds.Trips {
		if f.Matches(t) {
			out.Trips = append(out.Trips, t)
		}
	}
	return out
}

// WeekdaysMondayFirst lists the selectable days in Monday-first order.
func WeekdaysMondayFirst() []time.Weekday {
	return []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
}

// ParseMonth resolves a month name ("march", "March") to its time.Month.
func ParseMonth(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(name, m.String()) {
			return m, true
		}
	}
	return AnyMonth, false
}

// ParseWeekday resolves a day name ("tuesday", "Tuesday") to its time.Weekday.
func ParseWeekday(name string) (time.Weekday, bool) {
	for _, d := range WeekdaysMondayFirst() {
		if strings.EqualFold(name, d.String()) {
			return d, true
		}
	}
	return AnyDay, false
}
