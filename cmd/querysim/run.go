package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zakazai/querysim/internal/lexer"
	"github.com/zakazai/querysim/internal/session"
)

var runJSON bool

// runCmd executes queries given as arguments and exits
var runCmd = &cobra.Command{
	Use:   "run <query>",
	Short: "Run one or more ';'-separated queries",
	Example: `  querysim run "SELECT * FROM employees WHERE department = 'Engineering'"
  querysim run --yes "DROP TABLE sales"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm := session.Confirmation{}
		if assumeYes {
			confirm = session.Confirmation{Confirmed: true, Text: session.ConfirmDumpText}
		}

		for _, query := range lexer.Split(strings.Join(args, " ")) {
			res, err := app.Run(query, confirm)
			if err != nil {
				return fmt.Errorf("%s: %w", query, err)
			}

			if runJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
				continue
			}
			if err := renderResult(os.Stdout, res); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print results as JSON")
	rootCmd.AddCommand(runCmd)
}
