package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goplan/pkg/placement"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show a summary of a plan file",
	Long: `Display the room configuration, the items it contains grouped by kind,
and the zones blocked by interior walls.`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	p, err := plan.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Room Plan Information")
	fmt.Println("=====================")
	fmt.Printf("\nRoom: %.0f x %.0f cm", p.Room.Width, p.Room.Height)
	if p.Room.RoomType != "" {
		fmt.Printf(" (%s)", p.Room.RoomType)
	}
	fmt.Printf("\nFloor area: %.2f m²\n", p.Room.Area()/10000)

	counts := map[plan.Kind]int{}
	var furnitureArea float64
	for _, it := range p.Items {
		counts[it.Kind]++
		if it.Kind == plan.KindFurniture {
			furnitureArea += it.VisualBounds().Area()
		}
	}

	fmt.Printf("\nItems: %d\n", len(p.Items))
	for _, kind := range []plan.Kind{plan.KindFurniture, plan.KindDoor, plan.KindWindow, plan.KindInnerWall} {
		if counts[kind] > 0 {
			fmt.Printf("  %-10s %d\n", kind, counts[kind])
		}
	}

	if len(p.Items) > 0 {
		fmt.Println("\n  ID                                    Kind       Label            Position        Size")
		for _, it := range p.Items {
			fmt.Printf("  %-36s  %-9s  %-15s  (%6.0f,%6.0f)  %.0fx%.0f\n",
				it.ID, it.Kind, it.Label, it.X, it.Y, it.Width, it.Height)
		}
	}

	if furnitureArea > 0 {
		fmt.Printf("\nFurniture coverage: %.1f%%\n", furnitureArea/p.Room.Area()*100)
	}

	zones := placement.BlockedZones(p.Room, p.Items)
	if len(zones) > 0 {
		fmt.Printf("\nBlocked zones: %d\n", len(zones))
		for _, z := range zones {
			fmt.Printf("  (%.0f, %.0f) %.0fx%.0f cm\n", z.X, z.Y, z.Width, z.Height)
		}
	}

	if len(p.Measurements) > 0 {
		fmt.Printf("\nManual measurements: %d\n", len(p.Measurements))
		for _, m := range p.Measurements {
			fmt.Printf("  (%.0f, %.0f) -> (%.0f, %.0f): %.1f cm\n",
				m.Start.X, m.Start.Y, m.End.X, m.End.Y, m.Length())
		}
	}
}
