package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	httpserver "github.com/fredcamaral/decksite/internal/adapters/primary/http"
	"github.com/fredcamaral/decksite/internal/adapters/secondary/watcher"
	"github.com/fredcamaral/decksite/internal/domain/entities"
	"github.com/fredcamaral/decksite/internal/domain/ports"
)

var (
	// Serve command flags
	servePort int
	serveHost string
	noWatch   bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Build the site and preview it with live reload",
	Long: `Build the presentation site, serve it over HTTP, and rebuild whenever
a source markdown file changes. Connected browsers reload automatically.

Example:
  decksite serve
  decksite serve ./talks --port 3000 --no-watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to serve on (overrides config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (overrides config)")
	serveCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Serve once without rebuilding on changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}
	applyServeFlags(cmd, cfg)

	ctx := cmd.Context()

	result, err := buildSite(ctx, root, cfg)
	if err != nil {
		return fmt.Errorf("initial build: %w", err)
	}
	log.Printf("[INFO] [serve] built %d presentation(s)", len(result.Presentations))

	siteDir := resolveOutputDir(root, cfg)
	server := httpserver.NewServer(siteDir, &cfg.Server, &cfg.Logging)
	if err := server.Start(ctx, cfg.Server.Port, cfg.Server.Host); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	fmt.Printf("Serving %s on http://%s:%d\n", siteDir, cfg.Server.Host, cfg.Server.Port)

	var fw ports.FileWatcher
	if !noWatch {
		fw = watcher.NewPollingWatcher(cfg.Watcher.GetInterval(), cfg.Watcher.GetDebounce())
		events, err := fw.Watch(ctx, root)
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		go rebuildLoop(ctx, root, cfg, server, events)
	}

	<-ctx.Done()

	if fw != nil {
		if err := fw.Stop(); err != nil {
			log.Printf("[WARN] [serve] stopping watcher: %v", err)
		}
	}
	// Fresh context: the command context is already cancelled.
	return server.Stop(context.Background())
}

// applyServeFlags folds serve command flags into the resolved config.
func applyServeFlags(cmd *cobra.Command, cfg *entities.Config) {
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serveHost
	}
}

// rebuildLoop rebuilds the site on every change event and notifies
// connected browsers. A failing rebuild keeps the previous output.
func rebuildLoop(ctx context.Context, root string, cfg *entities.Config, server *httpserver.Server, events <-chan ports.FileChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			log.Printf("[INFO] [serve] %s %s, rebuilding", event.Path, event.Type)
			server.BroadcastFileChange(event.Path)

			if _, err := buildSite(ctx, root, cfg); err != nil {
				log.Printf("[ERROR] [serve] rebuild failed: %v", err)
				continue
			}
			server.BroadcastReload()
		}
	}
}
