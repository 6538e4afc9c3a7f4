// Package dataset loads bike-share trip CSVs into in-memory datasets and
// provides month/day-of-week filtering over them.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Column headers expected in trip CSVs. Gender and birth year are present
// only for some cities.
const (
	colStartTime    = "Start Time"
	colEndTime      = "End Time"
	colDuration     = "Trip Duration"
	colStartStation = "Start Station"
	colEndStation   = "End Station"
	colUserType     = "User Type"
	colGender       = "Gender"
	colBirthYear    = "Birth Year"
)

// Trip is one bike-share trip record.
type Trip struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	StartStation string
	EndStation   string
	UserType     string
	Gender       string // empty when the dataset has no gender column
	BirthYear    int    // 0 when missing
}

// Dataset is an ordered collection of trips for one city. Filtering produces
// derived datasets; the loaded one is never mutated.
type Dataset struct {
	City         string
	Trips        []Trip
	HasGender    bool
	HasBirthYear bool
	// Skipped counts rows dropped at load because their timestamps could
	// not be parsed.
	Skipped int
}

// City is a discovered dataset file.
type City struct {
	Name string
	Path string
}

// Discover globs dir for CSV files and returns them with humanized city
// names (underscores to spaces, title-cased), sorted by name.
func Discover(dir string) ([]City, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("glob data dir: %w", err)
	}
	cities := make([]City, 0, len(paths))
	for _, p := range paths {
		cities = append(cities, City{Name: humanizeName(p), Path: p})
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i].Name < cities[j].Name })
	return cities, nil
}

func humanizeName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	words := strings.Fields(strings.ReplaceAll(base, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// Load reads a trip CSV into a Dataset. Rows whose timestamps cannot be
// parsed are skipped and counted rather than failing the load.
func Load(path, city string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()
	return Read(f, city)
}

// Read parses trip CSV data from r. Split from Load so tests can feed
// in-memory fixtures.
func Read(r io.Reader, city string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty data file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{colStartTime, colEndTime, colStartStation, colEndStation, colUserType} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	ds := &Dataset{City: city}
	_, ds.HasGender = idx[colGender]
	_, ds.HasBirthYear = idx[colBirthYear]

	row := 1
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}
		row++

		start, okStart := parseTimestamp(field(rec, idx[colStartTime]))
		end, okEnd := parseTimestamp(field(rec, idx[colEndTime]))
		if !okStart || !okEnd {
			ds.Skipped++
			continue
		}
		t := Trip{
			StartTime:    start,
			EndTime:      end,
			Duration:     end.Sub(start),
			StartStation: field(rec, idx[colStartStation]),
			EndStation:   field(rec, idx[colEndStation]),
			UserType:     field(rec, idx[colUserType]),
		}
		if ds.HasGender {
			t.Gender = field(rec, idx[colGender])
		}
		if ds.HasBirthYear {
			t.BirthYear = parseBirthYear(field(rec, idx[colBirthYear]))
		}
		ds.Trips = append(ds.Trips, t)
	}
	return ds, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseTimestamp(s string) (time.Time, bool) {
	layouts := []string{
		"2006-01-02 15:04:05", "2006-01-02 15:04", time.RFC3339,
		"2006-01-02", "1/2/2006 15:04:05", "1/2/2006 15:04",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseBirthYear tolerates the float-formatted years ("1992.0") that appear
// in the source exports. Returns 0 for missing or unparseable values.
func parseBirthYear(s string) int {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0
	}
	return int(f)
}

// Months returns the distinct months spanned by the dataset, ascending.
// Both start and end timestamps contribute, so a trip ending in the next
// month makes that month selectable.
func Months(ds *Dataset) []time.Month {
	seen := make(map[time.Month]bool)
	for _, t := range ds.Trips {
		seen[t.StartTime.Month()] = true
		seen[t.EndTime.Month()] = true
	}
	months := make([]time.Month, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}
