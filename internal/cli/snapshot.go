package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	sceneio "github.com/matzehuels/figtree/pkg/io"
	"github.com/matzehuels/figtree/pkg/render"
	"github.com/matzehuels/figtree/pkg/store"
)

// Snapshot backends selectable via --backend.
const (
	backendMemory = "memory"
	backendFile   = "file"
	backendRedis  = "redis"
	backendMongo  = "mongo"
)

// storeOpts holds the backend selection flags shared by all snapshot
// subcommands.
type storeOpts struct {
	backend   string // backend name: memory, file, redis, mongo
	dir       string // file backend: snapshot directory
	redisAddr string // redis backend: host:port
	mongoURI  string // mongo backend: connection URI
}

// registerStoreFlags attaches the backend selection flags to cmd.
func (o *storeOpts) registerStoreFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.backend, "backend", backendFile, "snapshot backend: file (default), memory, redis, mongo")
	cmd.PersistentFlags().StringVar(&o.dir, "dir", "", "snapshot directory for the file backend (default: ~/.config/figtree/snapshots)")
	cmd.PersistentFlags().StringVar(&o.redisAddr, "redis-addr", "localhost:6379", "redis address for the redis backend")
	cmd.PersistentFlags().StringVar(&o.mongoURI, "mongo-uri", "mongodb://localhost:27017", "connection URI for the mongo backend")
}

// newStore constructs the snapshot store selected by the backend flags.
// The memory backend only lives for a single invocation; it exists for
// scripting tests against the same command surface.
func (o *storeOpts) newStore(ctx context.Context) (store.Store, error) {
	switch o.backend {
	case backendMemory:
		return store.NewMemoryStore(), nil
	case backendFile:
		return store.NewFileStore(o.dir)
	case backendRedis:
		return store.NewRedisStore(ctx, store.RedisConfig{Addr: o.redisAddr})
	case backendMongo:
		return store.NewMongoStore(ctx, store.MongoConfig{URI: o.mongoURI})
	default:
		return nil, fmt.Errorf("unknown backend: %s (must be 'memory', 'file', 'redis', or 'mongo')", o.backend)
	}
}

// newSnapshotCmd creates the snapshot command group for saving, listing,
// showing, and deleting stored scenes.
func newSnapshotCmd() *cobra.Command {
	var opts storeOpts

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage stored scene snapshots",
		Long:  `Snapshot freezes scene documents into a snapshot store and manages them by id. Backends: file (default), memory, redis, mongo.`,
	}
	opts.registerStoreFlags(cmd)

	cmd.AddCommand(newSnapshotSaveCmd(&opts))
	cmd.AddCommand(newSnapshotListCmd(&opts))
	cmd.AddCommand(newSnapshotShowCmd(&opts))
	cmd.AddCommand(newSnapshotDeleteCmd(&opts))
	cmd.AddCommand(newSnapshotCleanupCmd(&opts))

	return cmd
}

// newSnapshotSaveCmd creates the "snapshot save" subcommand.
func newSnapshotSaveCmd(opts *storeOpts) *cobra.Command {
	var name string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "save [file]",
		Short: "Freeze a scene document into the snapshot store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshotSave(cmd.Context(), args[0], name, ttl, opts)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "snapshot name (default: input file name)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "snapshot lifetime (0 = never expires)")

	return cmd
}

func runSnapshotSave(ctx context.Context, input, name string, ttl time.Duration, opts *storeOpts) error {
	logger := loggerFromContext(ctx)

	g, err := sceneio.ImportJSON(input)
	if err != nil {
		return err
	}
	if name == "" {
		name = input
	}

	snap, err := store.New(name, g, ttl)
	if err != nil {
		return err
	}

	st, err := opts.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Set(ctx, snap); err != nil {
		return err
	}
	logger.Debugf("Stored snapshot %s (%d bytes)", snap.ID, len(snap.Doc))

	printSuccess("Saved %s", name)
	printKeyValue("id", snap.ID)
	if ttl > 0 {
		printKeyValue("expires", snap.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

// newSnapshotListCmd creates the "snapshot list" subcommand.
func newSnapshotListCmd(opts *storeOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshotList(cmd.Context(), opts)
		},
	}
}

func runSnapshotList(ctx context.Context, opts *storeOpts) error {
	st, err := opts.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	snaps, err := st.List(ctx)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		printInfo("No snapshots stored")
		return nil
	}

	for _, snap := range snaps {
		age := time.Since(snap.CreatedAt).Round(time.Second)
		line := fmt.Sprintf("%s  %s", snap.ID, StyleValue.Render(snap.Name))
		fmt.Println(line + "  " + StyleDim.Render(fmt.Sprintf("%s ago", age)))
	}
	return nil
}

// newSnapshotShowCmd creates the "snapshot show" subcommand.
func newSnapshotShowCmd(opts *storeOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a stored snapshot's scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshotShow(cmd.Context(), args[0], opts)
		},
	}
}

func runSnapshotShow(ctx context.Context, id string, opts *storeOpts) error {
	st, err := opts.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := st.Get(ctx, id)
	if err != nil {
		return err
	}
	g, err := snap.Scene()
	if err != nil {
		return err
	}
	stats := render.Summarize(g)

	fmt.Println(StyleTitle.Render(snap.Name))
	printKeyValue("id", snap.ID)
	printKeyValue("created", snap.CreatedAt.Format(time.RFC3339))
	if !snap.ExpiresAt.IsZero() {
		printKeyValue("expires", snap.ExpiresAt.Format(time.RFC3339))
	}
	printStats(stats.Nodes, stats.Leaves, stats.Groups, stats.Depth)
	printNewline()
	fmt.Print(render.Outline(g))
	return nil
}

// newSnapshotDeleteCmd creates the "snapshot delete" subcommand.
func newSnapshotDeleteCmd(opts *storeOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}

// newSnapshotCleanupCmd creates the "snapshot cleanup" subcommand.
func newSnapshotCleanupCmd(opts *storeOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove expired snapshots from the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Cleanup(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Cleaned up expired snapshots")
			return nil
		},
	}
}
