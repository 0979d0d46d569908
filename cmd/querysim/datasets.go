package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showSamples bool

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the datasets queries run against",
	RunE: func(cmd *cobra.Command, args []string) error {
		datasets := app.Datasets()
		if err := renderDatasets(os.Stdout, datasets, app.Selected().Name); err != nil {
			return err
		}
		if !showSamples {
			return nil
		}
		for _, ds := range datasets {
			fmt.Printf("\n%s:\n", ds.Name)
			for _, q := range ds.SampleQueries {
				fmt.Printf("  %s\n", q)
			}
		}
		return nil
	},
}

func init() {
	datasetsCmd.Flags().BoolVar(&showSamples, "samples", false, "also print sample queries")
	rootCmd.AddCommand(datasetsCmd)
}
