package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goplan/pkg/placement"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/philipparndt/goplan/pkg/units"
	"github.com/spf13/cobra"
)

var (
	placeWidth  float64
	placeHeight float64
	placeKind   string
	placeWall   string
	placeLabel  string
	placeAdd    bool
)

var placeCmd = &cobra.Command{
	Use:   "place [file]",
	Short: "Find a free position for a new item",
	Long: `Search the plan for a collision-free position for an item of the given
size. Doors and windows are placed along the walls; use --wall to restrict
the search to one wall. By default the result is only printed; --add writes
the item into the plan file.`,
	Args: cobra.ExactArgs(1),
	Run:  runPlace,
}

func init() {
	rootCmd.AddCommand(placeCmd)

	placeCmd.Flags().Float64Var(&placeWidth, "width", 0, "item width in cm (for doors/windows: length along the wall)")
	placeCmd.Flags().Float64Var(&placeHeight, "height", 0, "item height in cm (ignored for doors/windows)")
	placeCmd.Flags().StringVar(&placeKind, "kind", string(plan.KindFurniture), "item kind: furniture, door, window or wall")
	placeCmd.Flags().StringVar(&placeWall, "wall", "", "preferred wall for doors/windows: top, bottom, left or right")
	placeCmd.Flags().StringVar(&placeLabel, "label", "", "item label")
	placeCmd.Flags().BoolVar(&placeAdd, "add", false, "write the placed item into the plan file")

	placeCmd.MarkFlagRequired("width")
}

func runPlace(cmd *cobra.Command, args []string) {
	kind := plan.Kind(placeKind)
	if !kind.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown kind %q\n", placeKind)
		os.Exit(1)
	}

	width, height := placeWidth, placeHeight
	if kind == plan.KindDoor || kind == plan.KindWindow || kind == plan.KindInnerWall {
		height = units.WallThicknessCm
	}
	if width <= 0 || height <= 0 {
		fmt.Fprintf(os.Stderr, "Error: item size must be positive, got %gx%g\n", width, height)
		os.Exit(1)
	}

	var wall *plan.Wall
	if placeWall != "" {
		w, ok := plan.ParseWall(placeWall)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown wall %q\n", placeWall)
			os.Exit(1)
		}
		wall = &w
	}

	p, err := plan.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	item := plan.NewItem(kind, placeLabel, width, height)
	placed, ok := placement.PlaceItem(item, p.Room, p.Items, wall)
	if !ok {
		// No free space is a normal outcome, not an error.
		fmt.Println("No free position available for this item.")
		return
	}

	fmt.Printf("Free position: (%g, %g), rotation %d\n", placed.X, placed.Y, placed.Rotation)

	if placeAdd {
		p.AddItem(placed)
		if err := plan.Save(p, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added item %s to %s\n", placed.ID, args[0])
	}
}
