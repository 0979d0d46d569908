package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zakazai/querysim/internal/export"
	"github.com/zakazai/querysim/internal/session"
)

var exportCmd = &cobra.Command{
	Use:   "export <format> <query>",
	Short: "Run a query and write its rows as csv, json, parquet or xlsx",
	Example: `  querysim export csv "SELECT * FROM sales WHERE amount > 500"
  querysim export parquet --out ./exports "SELECT * FROM products"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(args[0])
		if err != nil {
			return err
		}

		query := strings.Join(args[1:], " ")
		if _, err := app.Run(query, session.Confirmation{}); err != nil {
			return err
		}

		path, err := app.ExportFile(cfg.ExportDir, format)
		if err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", ".", "directory to write the export to")
	bindFlag(exportCmd, "export_dir", "out")
	rootCmd.AddCommand(exportCmd)
}
