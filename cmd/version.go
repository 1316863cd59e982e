package cmd

import (
	"fmt"

	"github.com/alexiusacademia/hydroflow/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hydroflow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hydroflow v%s\n", version.Version)
		fmt.Println("Open-Channel Hydraulics Tool")
		fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
