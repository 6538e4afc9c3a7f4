package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/KaramelBytes/ridestat-cli/internal/dataset"
	"github.com/KaramelBytes/ridestat-cli/internal/render"
	"github.com/KaramelBytes/ridestat-cli/internal/stats"
	"github.com/KaramelBytes/ridestat-cli/internal/utils"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	statsMonth  string
	statsDay    string
	statsOutput string
)

var statsCmd = &cobra.Command{
	Use:   "stats <city>",
	Short: "Compute statistics for a city without the interactive session",
	Long: `Stats runs the load-filter-aggregate pipeline once for the named city
and prints the report. The city is matched against the datasets discovered in
the data directory; a path to a CSV file also works.`,
	Example: `  # Full report for Chicago
  ridestat stats chicago

  # Only trips starting on Tuesdays in March
  ridestat stats chicago --month March --day Tuesday

  # Write the report to a file
  ridestat stats new_york_city --output nyc-report.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsMonth, "month", "", "filter by start month (name, e.g. March)")
	statsCmd.Flags().StringVar(&statsDay, "day", "", "filter by start day of week (name, e.g. Tuesday)")
	statsCmd.Flags().StringVarP(&statsOutput, "output", "o", "", "optional path to write the report")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	f := dataset.NewFilter()
	if statsMonth != "" {
		m, ok := dataset.ParseMonth(statsMonth)
		if !ok {
			return fmt.Errorf("invalid --month: %s", statsMonth)
		}
		f.Month = m
	}
	if statsDay != "" {
		d, ok := dataset.ParseWeekday(statsDay)
		if !ok {
			return fmt.Errorf("invalid --day: %s", statsDay)
		}
		f.Day = d
	}

	city, err := resolveCity(args[0])
	if err != nil {
		return err
	}
	ds, err := dataset.Load(city.Path, city.Name)
	if err != nil {
		return err
	}
	view := f.Apply(ds)

	report := render.Report(stats.Compute(view))
	if statsOutput == "" {
		fmt.Print(report)
		fmt.Printf("\nThere are %d rows in the raw data\n", len(view.Trips))
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Report %s\n", uuid.NewString())
	fmt.Fprintf(&b, "City: %s\n", city.Name)
	if f.Month != dataset.AnyMonth {
		fmt.Fprintf(&b, "Month filter: %s\n", f.Month)
	}
	if f.Day != dataset.AnyDay {
		fmt.Fprintf(&b, "Day filter: %s\n", f.Day)
	}
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "Rows: %d\n", len(view.Trips))
	b.WriteString(report)
	if err := utils.SafeWriteFile(statsOutput, []byte(b.String())); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote report to %s\n", statsOutput)
	return nil
}

// resolveCity matches the argument against discovered datasets by humanized
// name (case-insensitive, underscores and spaces interchangeable); a literal
// CSV path is accepted as-is.
func resolveCity(arg string) (dataset.City, error) {
	if strings.HasSuffix(strings.ToLower(arg), ".csv") {
		return dataset.City{Name: arg, Path: arg}, nil
	}
	cities, err := dataset.Discover(cfg.DataDir)
	if err != nil {
		return dataset.City{}, err
	}
	want := strings.ToLower(strings.ReplaceAll(arg, "_", " "))
	for _, c := range cities {
		if strings.ToLower(c.Name) == want {
			return c, nil
		}
	}
	return dataset.City{}, fmt.Errorf("unknown city %q (try 'ridestat cities')", arg)
}
