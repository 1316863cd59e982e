package cmd

import (
	"fmt"

	"github.com/alexiusacademia/hydroflow/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	visualizeProfile    string
	visualizeDepth      float64
	visualizeExportFile string
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Export a cross-section image of the channel",
	Long: `Generate an engineering cross-section of the river channel showing
the banks, the flow area at the given depth and the high threshold.

Relative file names are written under the configured output directory.

Examples:
  hydroflow visualize --depth 3.0
  hydroflow visualize -d 2.5 -o plots/ona.svg`,
	Run: runVisualize,
}

func init() {
	rootCmd.AddCommand(visualizeCmd)

	visualizeCmd.Flags().StringVarP(&visualizeProfile, "profile", "p", "", "Path to basin profile (default from settings)")
	visualizeCmd.Flags().Float64VarP(&visualizeDepth, "depth", "d", 3.0, "Current water depth (m)")
	visualizeCmd.Flags().StringVarP(&visualizeExportFile, "output", "o", "cross_section.png", "Image file (png, svg, pdf)")
}

func runVisualize(cmd *cobra.Command, args []string) {
	profile, err := loadProfile(visualizeProfile)
	if err != nil {
		fmt.Printf("Error loading profile: %v\n", err)
		return
	}
	if _, err := profile.Geometry(visualizeDepth); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	data := diagram.CrossSectionData{
		BasinName:   profile.BasinName,
		BottomWidth: profile.ChannelWidth,
		SideSlope:   profile.SideSlope,
		Depth:       visualizeDepth,
		Threshold:   profile.ThresholdHigh,
	}
	if profile.ThresholdHigh > 1.5*visualizeDepth {
		data.BankHeight = profile.ThresholdHigh * 1.1
	}

	path := settings.OutputPath(visualizeExportFile)
	if err := diagram.ExportCrossSection(data, path); err != nil {
		fmt.Printf("Error exporting diagram: %v\n", err)
		return
	}

	fmt.Println(diagram.DrawASCIICrossSection(data))
	fmt.Printf("Image saved: %s\n", path)
	fmt.Println("Open this file to see the hydraulic cross-section.")
}
