package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	sceneio "github.com/matzehuels/figtree/pkg/io"
	"github.com/matzehuels/figtree/pkg/manifest"
	"github.com/matzehuels/figtree/pkg/render"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output string // output file path; derived from input when empty
}

// newBuildCmd creates the build command for compiling TOML scene manifests
// into JSON scene documents.
func newBuildCmd() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build [manifest]",
		Short: "Build a scene tree from a TOML manifest",
		Long:  `Build reads a TOML scene manifest, assembles the part-whole tree it describes, and writes the result as a JSON scene document.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: manifest name with .json)")

	return cmd
}

// runBuild loads the manifest, builds the scene, and writes it as JSON.
func runBuild(ctx context.Context, input string, opts *buildOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Building %s", input)

	sc, err := manifest.Load(input)
	if err != nil {
		return err
	}

	stats := render.Summarize(sc.Root)
	logger.Debugf("Assembled tree: %d nodes, depth %d", stats.Nodes, stats.Depth)

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := sceneio.WriteJSON(sc.Root, out); err != nil {
		return err
	}

	name := sc.Name
	if name == "" {
		name = filepath.Base(input)
	}

	prog.done("Built " + output)
	printSuccess("Built %s", name)
	printStats(stats.Nodes, stats.Leaves, stats.Groups, stats.Depth)
	printFile(output)
	return nil
}
