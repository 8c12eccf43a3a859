package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	sceneio "github.com/matzehuels/figtree/pkg/io"
	"github.com/matzehuels/figtree/pkg/render"
	"github.com/matzehuels/figtree/pkg/scene"
)

const (
	defaultServeAddr  = "localhost:8080"
	serverIdleTimeout = 60 * time.Second
	serverReadTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr string // listen address (host:port)
}

// newServeCmd creates the serve command for exposing a scene over HTTP.
//
// Routes:
//   - GET /           HTML page embedding the rendered scene
//   - GET /scene.svg  rendered SVG
//   - GET /scene.json the raw scene document
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a scene document over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", defaultServeAddr, "listen address")

	return cmd
}

// runServe loads the scene, renders it once, and serves it until ctx is
// canceled. The scene is immutable for the lifetime of the server, so the
// SVG is computed up front rather than per request.
func runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	g, err := sceneio.ImportJSON(input)
	if err != nil {
		return err
	}
	stats := render.Summarize(g)
	logger.Infof("Loaded scene: %d nodes, depth %d", stats.Nodes, stats.Depth)

	svg, err := render.RenderSVG(render.ToDOT(g, render.Options{Detailed: true}))
	if err != nil {
		return fmt.Errorf("render scene: %w", err)
	}

	srv := &http.Server{
		Addr:        opts.addr,
		Handler:     newSceneHandler(g, svg, input),
		ReadTimeout: serverReadTimeout,
		IdleTimeout: serverIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Serving on http://%s", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// newSceneHandler builds the HTTP routes for a loaded scene.
func newSceneHandler(g scene.Graphic, svg []byte, title string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, indexPage, title, title)
	})

	r.Get("/scene.svg", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
	})

	r.Get("/scene.json", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := sceneio.WriteJSON(g, w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	return r
}

// indexPage is the HTML shell around the rendered scene. The two verbs are
// the page title and the heading.
const indexPage = `<!DOCTYPE html>
<html>
<head><title>figtree — %s</title></head>
<body style="font-family: sans-serif; margin: 2rem;">
<h1>%s</h1>
<p><a href="/scene.json">scene.json</a></p>
<img src="/scene.svg" alt="scene tree">
</body>
</html>
`
