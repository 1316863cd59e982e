package cmd

import (
	"fmt"
	"log"

	"github.com/alexiusacademia/hydroflow/internal/diagram"
	"github.com/alexiusacademia/hydroflow/internal/hydraulics"
	"github.com/spf13/cobra"
)

var (
	designProfile  string
	designTargetQ  float64
	designMaxDepth float64
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Find the minimum channel width for a target discharge",
	Long: `AUTO-DESIGNER: solve the inverse problem for the channel width.

Searches bottom widths between 0.5 m and 100 m for the smallest width
whose capacity at the maximum depth meets the target discharge,
minimizing excavation (flow area). Roughness, slope and side slope are
taken from the profile.

Examples:
  hydroflow design --target 150
  hydroflow design -q 80 --max-depth 3 -p data/profiles/ona.json`,
	Run: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().StringVarP(&designProfile, "profile", "p", "", "Path to basin profile (default from settings)")
	designCmd.Flags().Float64VarP(&designTargetQ, "target", "q", 0, "Target discharge (m³/s) [required]")
	designCmd.Flags().Float64Var(&designMaxDepth, "max-depth", 4.0, "Maximum allowable depth (m)")

	designCmd.MarkFlagRequired("target")
}

func runDesign(cmd *cobra.Command, args []string) {
	profile, err := loadProfile(designProfile)
	if err != nil {
		fmt.Printf("Error loading profile: %v\n", err)
		return
	}

	result, err := profile.DesignChannel(designTargetQ, designMaxDepth)
	if err != nil {
		fmt.Printf("Error designing channel: %v\n", err)
		return
	}
	log.Printf("design: %s after %d evaluations", result.Status, result.Evaluations)

	printBanner("CHANNEL AUTO-DESIGNER - INVERSE PROBLEM")

	printHeading("DESIGN REQUIREMENT:")
	w := newTable()
	fmt.Fprintf(w, "  Target discharge:\t%.2f m³/s\n", designTargetQ)
	fmt.Fprintf(w, "  Maximum depth:\t%.2f m\n", designMaxDepth)
	fmt.Fprintf(w, "  Manning's n:\t%.4f\n", profile.ManningN)
	fmt.Fprintf(w, "  Bed slope:\t%.5f\n", profile.Slope)
	fmt.Fprintf(w, "  Side slope:\t%.2f H:V\n", profile.SideSlope)
	fmt.Fprintf(w, "  Width search range:\t%.1f – %.1f m\n", hydraulics.MinDesignWidth, hydraulics.MaxDesignWidth)
	w.Flush()
	fmt.Println()

	printHeading("DESIGN RESULT:")
	if !result.Optimized() {
		fmt.Println("  ╔═════════════════════════════════════════════════╗")
		fmt.Println("  ║  NO FEASIBLE SOLUTION FOUND                     ║")
		fmt.Println("  ╚═════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Try increasing the maximum depth or the slope.")
		fmt.Println()
		return
	}

	shown := result.Rounded()
	fmt.Print(diagram.DrawSummaryBox("OPTIMAL DESIGN FOUND", []string{
		fmt.Sprintf("Recommended width b = %.2f m", shown.OptimalWidth),
		fmt.Sprintf("Excavation area = %.2f m²/unit length", shown.ExcavationArea),
	}))
	fmt.Println()
	fmt.Printf("  Capacity Q = %.2f m³/s ≥ target %.2f m³/s ✓\n", shown.Capacity, designTargetQ)
	fmt.Printf("  Status: %s\n", result.Status)
	fmt.Println()

	fmt.Println(diagram.DrawASCIICrossSection(diagram.CrossSectionData{
		BasinName:   profile.BasinName + " (designed)",
		BottomWidth: result.OptimalWidth,
		SideSlope:   profile.SideSlope,
		Depth:       designMaxDepth,
	}))
}
