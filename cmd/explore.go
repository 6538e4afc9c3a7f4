package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/KaramelBytes/ridestat-cli/internal/dataset"
	"github.com/KaramelBytes/ridestat-cli/internal/prompt"
	"github.com/KaramelBytes/ridestat-cli/internal/render"
	"github.com/KaramelBytes/ridestat-cli/internal/stats"
	"github.com/spf13/cobra"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Start the interactive analysis session",
	Long: `Explore runs the interactive session: pick a city dataset, optionally
filter by month and day of week, view computed statistics, page through the
raw rows, and start over or exit.`,
	Args: cobra.NoArgs,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	p := prompt.New(os.Stdin, os.Stdout)
	err := runSession(p, os.Stdout)
	if errors.Is(err, io.EOF) {
		// Input closed mid-session; treat like declining to continue.
		return nil
	}
	return err
}

// runSession drives the session state machine: select city, optional month
// and day filters, aggregate and display, optional raw-data paging, restart
// or exit. Split from runExplore so tests can script it.
func runSession(p *prompt.Prompter, out io.Writer) error {
	for {
		fmt.Fprintln(out, "Welcome to the bike share analysis tool!")

		view, err := loadAndFilter(p, out)
		if err != nil {
			return err
		}

		fmt.Fprint(out, render.Report(stats.Compute(view)))
		if view.Skipped > 0 {
			fmt.Fprintf(out, "\nNote: %d malformed rows were excluded at load.\n", view.Skipped)
		}

		fmt.Fprintf(out, "\nThere are %d rows in the raw data\n", len(view.Trips))
		if len(view.Trips) > 0 {
			show, err := p.Confirm("Would you like to see the paginated raw data?")
			if err != nil {
				return err
			}
			if show {
				if err := pageRawData(p, out, view, cfg.PageSize); err != nil {
					return err
				}
			}
		}

		again, err := p.Confirm("Would you like to start over?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// loadAndFilter walks the SELECT_CITY and optional filter states, returning
// the (possibly filtered) dataset view for this pass.
func loadAndFilter(p *prompt.Prompter, out io.Writer) (*dataset.Dataset, error) {
	fmt.Fprintln(out, "Searching for raw data files...")
	cities, err := dataset.Discover(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return nil, fmt.Errorf("no CSV data files found in %s", cfg.DataDir)
	}
	fmt.Fprintf(out, "Found %d files...\n", len(cities))

	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = c.Name
	}
	idx, err := p.Select("Please choose from the following:", names)
	if err != nil {
		return nil, err
	}
	city := cities[idx]

	fmt.Fprintf(out, "Loading data file for %s...\n", city.Name)
	ds, err := dataset.Load(city.Path, city.Name)
	if err != nil {
		return nil, err
	}

	wantFilter, err := p.Confirm("Would you like to filter the raw data before processing?")
	if err != nil {
		return nil, err
	}
	f := dataset.NewFilter()
	if wantFilter {
		f, err = selectFilter(p, ds)
		if err != nil {
			return nil, err
		}
	}
	return f.Apply(ds), nil
}

func selectFilter(p *prompt.Prompter, ds *dataset.Dataset) (dataset.Filter, error) {
	f := dataset.NewFilter()

	byMonth, err := p.Confirm("Would you like to filter by month?")
	if err != nil {
		return f, err
	}
	if byMonth {
		// Only months actually present in the data are selectable.
		months := dataset.Months(ds)
		names := make([]string, len(months))
		for i, m := range months {
			names[i] = m.String()
		}
		idx, err := p.Select("Please choose from the following:", names)
		if err != nil {
			return f, err
		}
		f.Month = months[idx]
	}

	byDay, err := p.Confirm("Would you like to filter by day of the week?")
	if err != nil {
		return f, err
	}
	if byDay {
		days := dataset.WeekdaysMondayFirst()
		names := make([]string, len(days))
		for i, d := range days {
			names[i] = d.String()
		}
		idx, err := p.Select("Please choose from the following:", names)
		if err != nil {
			return f, err
		}
		f.Day = days[idx]
	}
	return f, nil
}

// pageRawData shows the raw rows in fixed-size pages, stopping when the user
// declines or the data runs out.
func pageRawData(p *prompt.Prompter, out io.Writer, ds *dataset.Dataset, size int) error {
	total := len(ds.Trips)
	for offset := 0; offset < total; offset += size {
		from, to := render.PageBounds(total, offset, size)
		fmt.Fprintf(out, "\nDisplaying rows %d through %d...\n\n", from+1, to)
		fmt.Fprint(out, render.RawRows(ds, from, to))
		if to >= total {
			fmt.Fprintln(out, "\nEnd of data.")
			return nil
		}
		more, err := p.Confirm("Would you like to see more raw data?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return nil
}
