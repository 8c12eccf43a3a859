package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	sceneio "github.com/matzehuels/figtree/pkg/io"
	"github.com/matzehuels/figtree/pkg/render"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	tree bool // print the indented outline instead of flat draw lines
}

// newInspectCmd creates the inspect command for examining scene documents.
func newInspectCmd() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show statistics and contents of a scene document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.tree, "tree", false, "print the scene as an indented tree")

	return cmd
}

// runInspect loads the scene and prints its statistics, then either the flat
// draw lines or the indented outline.
func runInspect(ctx context.Context, input string, opts *inspectOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Inspecting %s", input)

	g, err := sceneio.ImportJSON(input)
	if err != nil {
		return err
	}
	stats := render.Summarize(g)

	fmt.Println(StyleTitle.Render(input))
	printKeyValue("nodes", fmt.Sprintf("%d", stats.Nodes))
	printKeyValue("leaves", fmt.Sprintf("%d", stats.Leaves))
	printKeyValue("groups", fmt.Sprintf("%d", stats.Groups))
	printKeyValue("depth", fmt.Sprintf("%d", stats.Depth))
	printNewline()

	if opts.tree {
		fmt.Print(render.Outline(g))
		return nil
	}
	for _, line := range render.Lines(g) {
		printDetail("%s", line)
	}
	return nil
}
