// Package render formats computed statistics and raw trip rows for the
// terminal.
package render

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/KaramelBytes/ridestat-cli/internal/stats"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiCyan  = "\033[36m"
)

// ColorEnabled reports whether ANSI codes should be emitted: stdout is a TTY
// and NO_COLOR is unset.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func header(s string) string {
	if ColorEnabled() {
		return ansiBold + ansiCyan + s + ansiReset
	}
	return s
}

// Report renders the full statistics summary in the fixed session layout.
// Sections whose inputs are missing come out as "not available" lines rather
// than being dropped silently.
func Report(s *stats.Summary) string {
	var b strings.Builder

	b.WriteString("\n" + header("Most popular times of travel:") + "\n")
	if s.Times == nil {
		b.WriteString("\tNo data for the selected filters.\n")
	} else {
		fmt.Fprintf(&b, "\tMonth: %s\n", s.Times.Month)
		fmt.Fprintf(&b, "\tDay of week: %s\n", s.Times.Day)
		fmt.Fprintf(&b, "\tHour of day: %s\n", FormatHour(s.Times.Hour))
	}

	b.WriteString("\n" + header("Most popular stations for travel:") + "\n")
	if s.Stations == nil {
		b.WriteString("\tNo data for the selected filters.\n")
	} else {
		fmt.Fprintf(&b, "\tStarting station: %s\n", s.Stations.Start)
		fmt.Fprintf(&b, "\tEnding station: %s\n", s.Stations.End)
		fmt.Fprintf(&b, "\tTrip: %s to %s\n", s.Stations.TripStart, s.Stations.TripEnd)
	}

	b.WriteString("\n" + header("Trip durations:") + "\n")
	if s.Durations == nil {
		b.WriteString("\tNo data for the selected filters.\n")
	} else {
		fmt.Fprintf(&b, "\tTotal travel time: %s\n", FormatDuration(s.Durations.Total))
		fmt.Fprintf(&b, "\tAverage travel time: %s\n", FormatDuration(s.Durations.Mean))
	}

	b.WriteString("\n" + header("User information:") + "\n")
	if s.Users == nil {
		b.WriteString("\tNo data for the selected filters.\n")
		return b.String()
	}
	b.WriteString("\tCounts by user type:\n")
	for _, vc := range s.Users.TypeCounts {
		fmt.Fprintf(&b, "\t\t%s: %s\n", vc.Value, FormatCount(vc.Count))
	}
	if s.Users.GenderCounts != nil {
		b.WriteString("\tCounts by gender:\n")
		for _, vc := range s.Users.GenderCounts {
			fmt.Fprintf(&b, "\t\t%s: %s\n", vc.Value, FormatCount(vc.Count))
		}
	} else {
		b.WriteString("\tGender data not available for this dataset.\n")
	}
	if s.Users.BirthYears {
		fmt.Fprintf(&b, "\tEarliest birth year: %d\n", s.Users.Earliest)
		fmt.Fprintf(&b, "\tMost recent birth year: %d\n", s.Users.Latest)
		fmt.Fprintf(&b, "\tMost common birth year: %d\n", s.Users.Common)
	} else {
		b.WriteString("\tBirth year data not available for this dataset.\n")
	}
	return b.String()
}

// FormatHour renders an hour of day on the 12-hour clock, e.g. "05 PM".
func FormatHour(hour int) string {
	return time.Date(2000, 1, 1, hour, 0, 0, 0, time.UTC).Format("03 PM")
}

// FormatDuration renders a duration as days/hours/minutes/seconds, omitting
// leading zero units: "2 hours 5 minutes 10 seconds".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	parts := make([]string, 0, 4)
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 || len(parts) > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 || len(parts) > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	parts = append(parts, plural(seconds, "second"))
	return strings.Join(parts, " ")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatCount groups digits with commas: 9238 -> "9,238".
func FormatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
