package dataset

import (
	"testing"
	"time"
)

func TestFilterByMonth(t *testing.T) {
	ds := loadChicago(t)
	f := NewFilter()
	f.Month = time.May
	got := f.Apply(ds)
	if len(got.Trips) != 6 {
		t.Fatalf("filtered trips: got %d, want 6", len(got.Trips))
	}
	for _, trip := range got.Trips {
		if trip.StartTime.Month() != time.May {
			t.Errorf("trip outside May: %v", trip.StartTime)
		}
	}
	// Original dataset must survive filtering untouched.
	if len(ds.Trips) != 10 {
		t.Errorf("source trips mutated: got %d, want 10", len(ds.Trips))
	}
}

func TestFilterByDay(t *testing.T) {
	ds := loadChicago(t)
	f := NewFilter()
	f.Day = time.Monday
	got := f.Apply(ds)
	// 2017-05-01 x2, 2017-05-08, 2017-06-05
	if len(got.Trips) != 4 {
		t.Fatalf("filtered trips: got %d, want 4", len(got.Trips))
	}
	for _, trip := range got.Trips {
		if trip.StartTime.Weekday() != time.Monday {
			t.Errorf("trip outside Monday: %v", trip.StartTime)
		}
	}
}

func TestFilterByMonthAndDay(t *testing.T) {
	ds := loadChicago(t)
	f := NewFilter()
	f.Month = time.May
	f.Day = time.Monday
	got := f.Apply(ds)
	if len(got.Trips) != 3 {
		t.Fatalf("filtered trips: got %d, want 3", len(got.Trips))
	}
}

func TestFilterIdentity(t *testing.T) {
	ds := loadChicago(t)
	got := NewFilter().Apply(ds)
	if len(got.Trips) != len(ds.Trips) {
		t.Fatalf("identity filter changed size: got %d, want %d", len(got.Trips), len(ds.Trips))
	}
	if !got.HasGender || !got.HasBirthYear {
		t.Error("derived view lost column flags")
	}
}

func TestFilterIdempotent(t *testing.T) {
	ds := loadChicago(t)
	f := NewFilter()
	f.Month = time.May
	f.Day = time.Monday
	once := f.Apply(ds)
	twice := f.Apply(once)
	if len(once.Trips) != len(twice.Trips) {
		t.Fatalf("idempotence broken: %d vs %d", len(once.Trips), len(twice.Trips))
	}
	for i := range once.Trips {
		if once.Trips[i] != twice.Trips[i] {
			t.Fatalf("row %d changed on refilter", i)
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	ds := loadChicago(t)
	f := NewFilter()
	f.Month = time.June
	got := f.Apply(ds)
	for i := 1; i < len(got.Trips); i++ {
		if got.Trips[i].StartTime.Before(got.Trips[i-1].StartTime) {
			t.Errorf("order not preserved at %d", i)
		}
	}
}

func TestParseMonth(t *testing.T) {
	if m, ok := ParseMonth("march"); !ok || m != time.March {
		t.Errorf("ParseMonth(march) = %v, %v", m, ok)
	}
	if _, ok := ParseMonth("smarch"); ok {
		t.Error("ParseMonth accepted invalid month")
	}
}

func TestParseWeekday(t *testing.T) {
	if d, ok := ParseWeekday("Tuesday"); !ok || d != time.Tuesday {
		t.Errorf("ParseWeekday(Tuesday) = %v, %v", d, ok)
	}
	if _, ok := ParseWeekday("someday"); ok {
		t.Error("ParseWeekday accepted invalid day")
	}
}

func TestWeekdaysMondayFirst(t *testing.T) {
	days := WeekdaysMondayFirst()
	if len(days) != 7 || days[0] != time.Monday || days[6] != time.Sunday {
		t.Errorf("unexpected day order: %v", days)
	}
}
