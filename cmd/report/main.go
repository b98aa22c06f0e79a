package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"accident-analytics-api/config"
	"accident-analytics-api/dataset"
	"accident-analytics-api/report"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var (
		accidentsPath string
		bikersPath    string
		asJSON        bool
	)

	root := &cobra.Command{
		Use:   "report",
		Short: "Generate the bicycle accident analysis report",
		Long: "Loads the accidents and bikers CSV extracts, joins and derives the " +
			"canonical table, and prints the full exploratory report to stdout.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := dataset.Load(accidentsPath, bikersPath)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report.BuildChartData(table))
			}
			report.Render(cmd.OutOrStdout(), table)
			return nil
		},
	}

	root.Flags().StringVar(&accidentsPath, "accidents", cfg.Data.AccidentsPath, "path to the accidents CSV")
	root.Flags().StringVar(&bikersPath, "bikers", cfg.Data.BikersPath, "path to the bikers CSV")
	root.Flags().BoolVar(&asJSON, "json", false, "emit chart data as JSON instead of the text report")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
