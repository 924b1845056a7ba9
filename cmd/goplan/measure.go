package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goplan/pkg/analysis"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/spf13/cobra"
)

var measureItem string

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure the distances from an item to its nearest obstacles",
	Long: `For the given item, report the distance to the nearest obstacle (another
item or the room wall) in each of the four cardinal directions. The item is
selected by ID or, when unambiguous, by label.`,
	Args: cobra.ExactArgs(1),
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().StringVar(&measureItem, "item", "", "item ID or label")
	measureCmd.MarkFlagRequired("item")
}

func runMeasure(cmd *cobra.Command, args []string) {
	p, err := plan.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	focal, err := findItem(p, measureItem)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Obstacle Distances")
	fmt.Println("==================")
	fmt.Printf("\nItem: %s", focal.ID)
	if focal.Label != "" {
		fmt.Printf(" (%s)", focal.Label)
	}
	bounds := focal.VisualBounds()
	fmt.Printf("\nVisual bounds: (%.0f, %.0f) %.0fx%.0f cm\n\n", bounds.X, bounds.Y, bounds.Width, bounds.Height)

	for _, m := range analysis.Distances(focal, p.OtherItems(focal.ID), p.Room) {
		fmt.Println(m.Format())
	}
}

// findItem resolves an item by ID first, then by unique label
func findItem(p *plan.Plan, key string) (plan.Item, error) {
	if it, ok := p.ItemByID(key); ok {
		return it, nil
	}

	var matches []plan.Item
	for _, it := range p.Items {
		if it.Label == key {
			matches = append(matches, it)
		}
	}

	switch len(matches) {
	case 0:
		return plan.Item{}, fmt.Errorf("no item with ID or label %q", key)
	case 1:
		return matches[0], nil
	default:
		return plan.Item{}, fmt.Errorf("label %q matches %d items, use the ID", key, len(matches))
	}
}
