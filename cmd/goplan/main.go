package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goplan/version"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "goplan",
	Short: "A CLI tool for inspecting and editing room plan files",
	Long: `goplan works with room plan files (.goplan.json): rectangular rooms with
furniture, doors, windows and interior walls laid out in centimeters.
It reports measurements, finds free positions for new items and validates
plan files. The interactive editor lives in goplan-gui.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .goplan.yaml)")
}
