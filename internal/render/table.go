package render

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/ridestat-cli/internal/dataset"
)

const timeLayout = "2006-01-02 15:04:05"

// RawRows renders trips[from:to] as a fixed-width table with a header and
// rule. Gender and birth year columns appear only when the dataset has them.
func RawRows(ds *dataset.Dataset, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(ds.Trips) {
		to = len(ds.Trips)
	}
	if from >= to {
		return "No rows to display.\n"
	}

	var sb strings.Builder
	width := 98
	sb.WriteString(fmt.Sprintf("%-20s %-20s %-24s %-24s %-10s",
		"Start Time", "End Time", "Start Station", "End Station", "User Type"))
	if ds.HasGender {
		sb.WriteString(fmt.Sprintf(" %-7s", "Gender"))
		width += 8
	}
	if ds.HasBirthYear {
		sb.WriteString(fmt.Sprintf(" %-10s", "Birth Year"))
		width += 11
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", width))
	sb.WriteString("\n")

	for _, t := range ds.Trips[from:to] {
		sb.WriteString(fmt.Sprintf("%-20s %-20s %-24s %-24s %-10s",
			t.StartTime.Format(timeLayout),
			t.EndTime.Format(timeLayout),
			truncate(t.StartStation, 24),
			truncate(t.EndStation, 24),
			truncate(t.UserType, 10)))
		if ds.HasGender {
			sb.WriteString(fmt.Sprintf(" %-7s", truncate(t.Gender, 7)))
		}
		if ds.HasBirthYear {
			if t.BirthYear > 0 {
				sb.WriteString(fmt.Sprintf(" %-10d", t.BirthYear))
			} else {
				sb.WriteString(fmt.Sprintf(" %-10s", "-"))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

// PageBounds returns the half-open row range for page starting at offset.
func PageBounds(total, offset, size int) (from, to int) {
	from = offset
	to = offset + size
	if to > total {
		to = total
	}
	return from, to
}
