// Package stats computes descriptive statistics over a trip dataset: modal
// travel times, station popularity, duration aggregates and user demographics.
//
// Every modal statistic breaks ties by first-encountered maximum: a value
// only displaces the current mode when its count becomes strictly greater,
// so the result is deterministic for a given record order.
package stats

import (
	"sort"
	"time"

	"github.com/KaramelBytes/ridestat-cli/internal/dataset"
)

// TravelTimes holds the modal month, weekday and hour of day over start times.
type TravelTimes struct {
	Month time.Month
	Day   time.Weekday
	Hour  int
}

// Stations holds the modal start station, end station and (start, end) pair.
type Stations struct {
	Start     string
	End       string
	TripStart string
	TripEnd   string
}

// Durations aggregates trip durations derived from the timestamp pair.
type Durations struct {
	Total time.Duration
	Mean  time.Duration
}

// ValueCount is a categorical value with its occurrence count.
type ValueCount struct {
	Value string
	Count int
}

// Users holds demographic aggregates. GenderCounts is nil and BirthYears
// false when the dataset lacks those columns or has no usable values.
type Users struct {
	TypeCounts   []ValueCount
	GenderCounts []ValueCount
	BirthYears   bool
	Earliest     int
	Latest       int
	Common       int
}

// Summary is the full set of statistics for one (possibly filtered) dataset.
// Section pointers are nil when the dataset is empty, so the presenter can
// report them as unavailable instead of printing garbage.
type Summary struct {
	Records   int
	Times     *TravelTimes
	Stations  *Stations
	Durations *Durations
	Users     *Users
}

// Compute runs all aggregates over ds in a single pass per concern.
func Compute(ds *dataset.Dataset) *Summary {
	s := &Summary{Records: len(ds.Trips)}
	if s.Records == 0 {
		return s
	}
	s.Times = popularTimes(ds.Trips)
	s.Stations = popularStations(ds.Trips)
	s.Durations = tripDurations(ds.Trips)
	s.Users = userInfo(ds)
	return s
}

// counter tallies comparable keys while remembering first-encounter order.
type counter[K comparable] struct {
	counts map[K]int
	order  []K
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{counts: make(map[K]int)}
}

func (c *counter[K]) add(k K) {
	if _, seen := c.counts[k]; !seen {
		c.order = append(c.order, k)
	}
	c.counts[k]++
}

// mode returns the key with the strictly highest count; on ties the one
// first encountered wins.
func (c *counter[K]) mode() (K, bool) {
	var best K
	if len(c.order) == 0 {
		return best, false
	}
	bestN := 0
	for _, k := range c.order {
		if c.counts[k] > bestN {
			best, bestN = k, c.counts[k]
		}
	}
	return best, true
}

func popularTimes(trips []dataset.Trip) *TravelTimes {
	months := newCounter[time.Month]()
	days := newCounter[time.Weekday]()
	hours := newCounter[int]()
	for _, t := range trips {
		months.add(t.StartTime.Month())
		days.add(t.StartTime.Weekday())
		hours.add(t.StartTime.Hour())
	}
	month, _ := months.mode()
	day, _ := days.mode()
	hour, _ := hours.mode()
	return &TravelTimes{Month: month, Day: day, Hour: hour}
}

type stationPair struct {
	start, end string
}

func popularStations(trips []dataset.Trip) *Stations {
	starts := newCounter[string]()
	ends := newCounter[string]()
	pairs := newCounter[stationPair]()
	for _, t := range trips {
		starts.add(t.StartStation)
		ends.add(t.EndStation)
		pairs.add(stationPair{t.StartStation, t.EndStation})
	}
	start, _ := starts.mode()
	end, _ := ends.mode()
	pair, _ := pairs.mode()
	return &Stations{Start: start, End: end, TripStart: pair.start, TripEnd: pair.end}
}

func tripDurations(trips []dataset.Trip) *Durations {
	var total time.Duration
	for _, t := range trips {
		total += t.Duration
	}
	return &Durations{Total: total, Mean: total / time.Duration(len(trips))}
}

func userInfo(ds *dataset.Dataset) *Users {
	u := &Users{}

	types := newCounter[string]()
	for _, t := range ds.Trips {
		types.add(t.UserType)
	}
	u.TypeCounts = byCountDesc(types)

	if ds.HasGender {
		genders := newCounter[string]()
		for _, t := range ds.Trips {
			if t.Gender != "" {
				genders.add(t.Gender)
			}
		}
		u.GenderCounts = byCountDesc(genders)
	}

	if ds.HasBirthYear {
		years := newCounter[int]()
		for _, t := range ds.Trips {
			if t.BirthYear > 0 {
				years.add(t.BirthYear)
			}
		}
		if common, ok := years.mode(); ok {
			u.BirthYears = true
			u.Common = common
			u.Earliest, u.Latest = minMaxYears(years)
		}
	}
	return u
}

// byCountDesc lists keys by descending count; first-encountered order breaks
// equal counts, keeping the listing stable.
func byCountDesc(c *counter[string]) []ValueCount {
	out := make([]ValueCount, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, ValueCount{Value: k, Count: c.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func minMaxYears(c *counter[int]) (min, max int) {
	for i, y := range c.order {
		if i == 0 {
			min, max = y, y
			continue
		}
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	return min, max
}
