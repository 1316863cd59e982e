package cmd

import (
	"fmt"

	"github.com/alexiusacademia/hydroflow/internal/hazard"
	"github.com/spf13/cobra"
)

var (
	hazardThreshold  float64
	hazardExportFile string
)

var hazardCmd = &cobra.Command{
	Use:   "hazard <readings.csv>",
	Short: "Flood hazard report with engineering advice",
	Long: `Generate a flood hazard report from station water levels.

The CSV file needs a header row with "station" and "level" columns.
Levels at or above the threshold are HIGH RISK, levels at or above 70%
of it are WARNING. Stations above the threshold get an engineering
recommendation.

Examples:
  hydroflow hazard data/readings/ulla_2024-01.csv --threshold 4.0
  hydroflow hazard data/readings/ulla_2024-01.csv -t 4.5 -o hazard.xlsx
  hydroflow hazard data/readings/ulla_2024-01.csv -o reports/hazard.pdf`,
	Args: cobra.ExactArgs(1),
	Run:  runHazard,
}

func init() {
	rootCmd.AddCommand(hazardCmd)

	hazardCmd.Flags().Float64VarP(&hazardThreshold, "threshold", "t", 4.0, "Hazard threshold in meters")
	hazardCmd.Flags().StringVarP(&hazardExportFile, "output", "o", "", "Export report to file (xlsx, pdf)")
}

func runHazard(cmd *cobra.Command, args []string) {
	readings, err := hazard.LoadReadings(args[0])
	if err != nil {
		fmt.Printf("Error loading readings: %v\n", err)
		return
	}

	report, err := hazard.BuildReport(readings, hazardThreshold)
	if err != nil {
		fmt.Printf("Report generation failed: %v\n", err)
		return
	}

	printBanner("FLOOD HAZARD ANALYSIS")

	printHeading("STATION LEVELS:")
	w := newTable()
	fmt.Fprintf(w, "  Station\tWater Level (m)\tStatus\t\n")
	fmt.Fprintf(w, "  ───────\t───────────────\t──────\t\n")
	for _, row := range report.Rows {
		fmt.Fprintf(w, "  %s\t%.2f\t%s\t\n", row.Station, row.Level, statusMark(row.Status))
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  Threshold %.2f m: %d high risk, %d warning, %d safe\n\n",
		report.Threshold,
		report.Count(hazard.StatusHighRisk),
		report.Count(hazard.StatusWarning),
		report.Count(hazard.StatusSafe))

	if breaches := report.Breaches(); len(breaches) > 0 {
		printHeading("ENGINEERING RECOMMENDATIONS:")
		for _, row := range breaches {
			fmt.Print(adviceBox(row))
			fmt.Println()
		}
	}

	if hazardExportFile != "" {
		path := settings.OutputPath(hazardExportFile)
		if err := hazard.Export(report, path); err != nil {
			fmt.Printf("Error exporting report: %v\n", err)
		} else {
			fmt.Printf("Report exported to: %s\n", path)
		}
	}
}

func statusMark(s hazard.Status) string {
	switch s {
	case hazard.StatusHighRisk:
		return "🚨 " + string(s)
	case hazard.StatusWarning:
		return "⚠ " + string(s)
	default:
		return "✓ " + string(s)
	}
}

func adviceBox(row hazard.Row) string {
	return fmt.Sprintf("  Station: %s\n  %s (+%.2f m)\n  %s\n",
		row.Station, row.Advice.Severity, row.Advice.Excess, row.Advice.Recommendation)
}
