package cmd

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexiusacademia/hydroflow/internal/hydraulics"
	"github.com/spf13/cobra"
)

var (
	wizardDir    string
	wizardFormat string
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactively create a basin profile",
	Long: `Prompt for the channel properties of a basin and save them as a
profile file that other commands can use.

Examples:
  hydroflow wizard
  hydroflow wizard --dir profiles --format yaml`,
	Run: runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)

	wizardCmd.Flags().StringVar(&wizardDir, "dir", filepath.Join("data", "profiles"), "Directory for the new profile")
	wizardCmd.Flags().StringVar(&wizardFormat, "format", "json", "Profile format (json, yaml)")
}

func runWizard(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("  ╔═══════════════════════════════════════╗")
	fmt.Println("  ║   HYDROFLOW PROFILE WIZARD            ║")
	fmt.Println("  ╚═══════════════════════════════════════╝")
	fmt.Println()

	profile, err := promptProfile(bufio.NewReader(cmd.InOrStdin()))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	name := hydraulics.ProfileFileName(profile.BasinName)
	if wizardFormat == "yaml" {
		name = strings.TrimSuffix(name, ".json") + ".yaml"
	}
	path := filepath.Join(wizardDir, name)
	if err := hydraulics.SaveProfile(path, profile); err != nil {
		fmt.Printf("Error saving profile: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("  ✓ Profile saved! You can now run:")
	fmt.Printf("    hydroflow simulate --profile %s\n", path)
	fmt.Println()
}

func promptProfile(in *bufio.Reader) (hydraulics.Profile, error) {
	var p hydraulics.Profile
	var err error

	if p.BasinName, err = promptString(in, "What is the Basin Name?"); err != nil {
		return p, err
	}
	fields := []struct {
		label string
		def   string
		dst   *float64
	}{
		{"Channel Bottom Width (m)", "", &p.ChannelWidth},
		{"Channel Slope (e.g., 0.001)", "", &p.Slope},
		{"Manning's Roughness (n)", "0.035", &p.ManningN},
		{"Side Slope (z) [Horizontal/Vertical]", "2.0", &p.SideSlope},
		{"High Threshold Depth (m)", "4.5", &p.ThresholdHigh},
	}
	for _, f := range fields {
		if *f.dst, err = promptFloat(in, f.label, f.def); err != nil {
			return p, err
		}
	}
	return p, p.Validate()
}

func promptString(in *bufio.Reader, label string) (string, error) {
	for {
		fmt.Printf("  %s: ", label)
		line, err := in.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("%s: no input", label)
		}
		if err != nil {
			return "", err
		}
	}
}

func promptFloat(in *bufio.Reader, label, def string) (float64, error) {
	prompt := label
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", label, def)
	}
	for {
		fmt.Printf("  %s: ", prompt)
		line, err := in.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" && def != "" {
			line = def
		}
		if line != "" {
			v, perr := strconv.ParseFloat(line, 64)
			if perr == nil {
				return v, nil
			}
			fmt.Printf("  %q is not a number\n", line)
		}
		if err == io.EOF {
			return 0, fmt.Errorf("%s: no input", label)
		}
		if err != nil {
			return 0, err
		}
	}
}
