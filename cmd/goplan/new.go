package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goplan/internal/config"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/spf13/cobra"
)

var (
	newWidth  float64
	newHeight float64
	newType   string
)

var newCmd = &cobra.Command{
	Use:   "new [file]",
	Short: "Create an empty plan file",
	Long: `Create a new plan file with an empty room. Dimensions default to the
configured values (.goplan.yaml or GOPLAN_* environment variables) and can
be overridden with flags.`,
	Args: cobra.ExactArgs(1),
	Run:  runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().Float64Var(&newWidth, "width", 0, "room width in cm")
	newCmd.Flags().Float64Var(&newHeight, "height", 0, "room height in cm")
	newCmd.Flags().StringVar(&newType, "type", "", "room type (living, bedroom, kitchen, bath, office)")
}

func runNew(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	room := plan.RoomConfig{
		Width:    cfg.RoomWidth,
		Height:   cfg.RoomHeight,
		RoomType: plan.RoomType(cfg.RoomType),
	}
	if newWidth > 0 {
		room.Width = newWidth
	}
	if newHeight > 0 {
		room.Height = newHeight
	}
	if newType != "" {
		room.RoomType = plan.RoomType(newType)
	}

	path := args[0]
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		os.Exit(1)
	}

	if err := plan.Save(plan.New(room), path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s with a %.0fx%.0f cm room\n", path, room.Width, room.Height)
}
