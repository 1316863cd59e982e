package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexiusacademia/hydroflow/internal/config"
	"github.com/alexiusacademia/hydroflow/internal/version"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	settings = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "hydroflow",
	Short: "Open-Channel Hydraulics Tool",
	Long: `hydroflow - The Hydrologist's Terminal Assistant

A CLI tool for open-channel hydraulic calculations on trapezoidal
channels defined by basin profiles (JSON or YAML).

This tool helps hydraulic engineers perform:
  - Normal-flow discharge with Manning's equation
  - Inverse design of the minimum channel width for a target flow
  - Bridge afflux (backwater) checks at constrictions
  - Monte Carlo flood-risk simulation
  - Flood hazard reporting from station water levels

Defaults may be set in hydroflow.yaml, a .env file, or HYDROFLOW_*
environment variables.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetPrefix("hydroflow: ")
		log.SetFlags(0)
		log.SetOutput(io.Discard)
		if verbose {
			log.SetOutput(os.Stderr)
		}

		s, err := config.Load(".")
		if err != nil {
			return err
		}
		settings = s
		log.Printf("settings: profile=%s iterations=%d workers=%d output=%s",
			s.Profile, s.Iterations, s.Workers, s.OutputDir)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   hydroflow v%-45s║\n", version.Version)
		fmt.Println("  ║   Open-Channel Hydraulics & Flood Risk                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Manning discharge for trapezoidal channels")
		fmt.Println("    • Auto-design of the minimum channel width")
		fmt.Println("    • Bridge afflux (energy equation)")
		fmt.Println("    • Monte Carlo failure probability")
		fmt.Println("    • Flood hazard reports (xlsx, pdf)")
		fmt.Println()
		fmt.Println("  Use 'hydroflow --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostic output to stderr")
}
