package cmd

import (
	"fmt"

	"github.com/KaramelBytes/ridestat-cli/internal/dataset"
	"github.com/spf13/cobra"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List city datasets found in the data directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cities, err := dataset.Discover(cfg.DataDir)
		if err != nil {
			return err
		}
		if len(cities) == 0 {
			fmt.Println("(no datasets)")
			return nil
		}
		for _, c := range cities {
			fmt.Printf("- %s (%s)\n", c.Name, c.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}
