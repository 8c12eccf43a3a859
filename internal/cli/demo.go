package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figtree/pkg/scene"
)

// newDemoCmd creates the demo command, a small built-in scenario that walks
// through the core tree operations: add, draw, remove by handle, and move.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a built-in scene through draw, remove, and move",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context())
		},
	}
}

// runDemo builds a two-level scene, draws it, removes one child by handle,
// draws again, then moves the whole tree and shows the propagated positions.
func runDemo(ctx context.Context) error {
	logger := loggerFromContext(ctx)

	root := scene.NewGroup()
	defer root.Dispose()

	hDot, err := root.Add(scene.NewDot(10, 20))
	if err != nil {
		return err
	}
	if _, err := root.Add(scene.NewCircle(5, 5, 3)); err != nil {
		return err
	}

	inner := scene.NewGroup()
	if _, err := inner.Add(scene.NewDot(1, 2)); err != nil {
		return err
	}
	if _, err := root.Add(inner); err != nil {
		return err
	}
	logger.Debugf("Assembled scene: %d direct children", root.Len())

	printInfo("Initial scene")
	for _, line := range root.Draw() {
		printDetail("%s", line)
	}
	printNewline()

	printInfo("After removing the dot by handle")
	root.Remove(hDot)
	root.Remove(hDot) // second removal is a no-op
	for _, line := range root.Draw() {
		printDetail("%s", line)
	}
	printNewline()

	printInfo("After moving the whole scene by (+1, +1)")
	root.Move(1, 1)
	for _, line := range root.Draw() {
		printDetail("%s", line)
	}

	printNewline()
	printSuccess("One call on the root reached every shape, however deeply nested")
	return nil
}
