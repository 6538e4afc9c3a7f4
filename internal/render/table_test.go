package render

import (
	"strings"
	"testing"
	"time"

	"github.com/KaramelBytes/ridestat-cli/internal/dataset"
)

func testDataset(n int) *dataset.Dataset {
	ds := &dataset.Dataset{City: "Chicago", HasGender: true, HasBirthYear: true}
	base := time.Date(2017, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		ds.Trips = append(ds.Trips, dataset.Trip{
			StartTime:    start,
			EndTime:      start.Add(10 * time.Minute),
			Duration:     10 * time.Minute,
			StartStation: "Canal St",
			EndStation:   "Clark St",
			UserType:     "Subscriber",
			Gender:       "Male",
			BirthYear:    1989,
		})
	}
	return ds
}

func TestRawRowsHeader(t *testing.T) {
	got := RawRows(testDataset(3), 0, 3)
	for _, want := range []string{"Start Time", "End Time", "Start Station", "User Type", "Gender", "Birth Year"} {
		if !strings.Contains(got, want) {
			t.Errorf("header missing %q", want)
		}
	}
	// Header, rule, three rows.
	if lines := strings.Count(strings.TrimRight(got, "\n"), "\n") + 1; lines != 5 {
		t.Errorf("lines: got %d, want 5\n%s", lines, got)
	}
}

func TestRawRowsOmitsMissingColumns(t *testing.T) {
	ds := testDataset(2)
	ds.HasGender = false
	ds.HasBirthYear = false
	got := RawRows(ds, 0, 2)
	if strings.Contains(got, "Gender") || strings.Contains(got, "Birth Year") {
		t.Errorf("optional columns rendered for dataset without them:\n%s", got)
	}
}

func TestRawRowsEmptyRange(t *testing.T) {
	got := RawRows(testDataset(2), 2, 2)
	if !strings.Contains(got, "No rows to display.") {
		t.Errorf("empty range: got %q", got)
	}
}

// Twelve rows at page size five must produce pages of 5, 5 and 2 rows,
// covering each row exactly once.
func TestPageBounds(t *testing.T) {
	total := 12
	size := 5
	var pages [][2]int
	for offset := 0; offset < total; offset += size {
		from, to := PageBounds(total, offset, size)
		pages = append(pages, [2]int{from, to})
	}
	want := [][2]int{{0, 5}, {5, 10}, {10, 12}}
	if len(pages) != len(want) {
		t.Fatalf("pages: got %d, want %d", len(pages), len(want))
	}
	covered := make([]bool, total)
	for i, p := range pages {
		if p != want[i] {
			t.Errorf("page %d: got %v, want %v", i, p, want[i])
		}
		for r := p[0]; r < p[1]; r++ {
			if covered[r] {
				t.Errorf("row %d repeated", r)
			}
			covered[r] = true
		}
	}
	for r, ok := range covered {
		if !ok {
			t.Errorf("row %d skipped", r)
		}
	}
}
