package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/hydroflow/internal/hydraulics"
)

const rule = "───────────────────────────────────────────────────────────────"

// loadProfile loads the profile named by a --profile flag, falling back to
// the configured default when the flag is empty.
func loadProfile(flagPath string) (hydraulics.Profile, error) {
	path := flagPath
	if path == "" {
		path = settings.Profile
	}
	log.Printf("loading profile %s", path)
	return hydraulics.LoadProfile(path)
}

func printBanner(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printHeading(title string) {
	fmt.Println(title)
	fmt.Println(rule)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func printProfile(p hydraulics.Profile) {
	printHeading("CHANNEL PROFILE:")
	w := newTable()
	fmt.Fprintf(w, "  Basin:\t%s\n", p.BasinName)
	fmt.Fprintf(w, "  Bottom width (b):\t%.2f m\n", p.ChannelWidth)
	fmt.Fprintf(w, "  Side slope (z):\t%.2f H:V\n", p.SideSlope)
	fmt.Fprintf(w, "  Manning's n:\t%.4f\n", p.ManningN)
	fmt.Fprintf(w, "  Bed slope (s):\t%.5f\n", p.Slope)
	if p.ThresholdHigh > 0 {
		fmt.Fprintf(w, "  High threshold:\t%.2f m\n", p.ThresholdHigh)
	}
	w.Flush()
	fmt.Println()
}
