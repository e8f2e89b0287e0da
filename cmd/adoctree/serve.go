package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rolfedh/adoctree"
	filecache "github.com/rolfedh/adoctree/internal/adapters/file"
	httpAdapter "github.com/rolfedh/adoctree/internal/adapters/http"
	"github.com/rolfedh/adoctree/internal/adapters/memory"
	rediscache "github.com/rolfedh/adoctree/internal/adapters/redis"
	"github.com/rolfedh/adoctree/internal/cli"
	"github.com/rolfedh/adoctree/internal/config"
	"github.com/rolfedh/adoctree/internal/logging"
	"github.com/rolfedh/adoctree/internal/presentation/tui"
	"github.com/rolfedh/adoctree/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Starts adoctree in server mode, exposing resolved include trees as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Local overrides (.env) are read before flags are inspected.
		_ = godotenv.Load()

		opts, err := listingOptions(cmd, args)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg := opts.Config

		addr := cfg.Serve.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}
		cacheMode := cfg.Serve.Cache
		if cmd.Flags().Changed("cache") {
			cacheMode, _ = cmd.Flags().GetString("cache")
		}
		redisAddr := cfg.Serve.RedisAddr
		if env := os.Getenv("ADOCTREE_REDIS_ADDR"); env != "" {
			redisAddr = env
		}
		if cmd.Flags().Changed("redis") {
			redisAddr, _ = cmd.Flags().GetString("redis")
		}

		level := slog.LevelInfo
		if opts.Debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		engine := &adoctree.Service{
			ShowCommented: opts.ShowCommented,
			Logger:        logger,
		}

		serverOpts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}

		cache, err := buildCache(cacheMode, redisAddr, cfg)
		if err != nil {
			fmt.Printf("Error creating cache: %v\n", err)
			os.Exit(1)
		}
		if cache != nil {
			serverOpts = append(serverOpts, httpAdapter.WithCache(cache))
		}

		// A guessable root document becomes the default for bare /api/tree
		// requests; without one, every request must name its root.
		if doc, err := cli.ResolveStartingDocument("", cfg); err == nil {
			serverOpts = append(serverOpts, httpAdapter.WithDefaultRoot(doc))
		}

		handler, err := httpAdapter.NewHandler(engine, serverOpts...)
		if err != nil {
			fmt.Printf("Error initializing server: %v\n", err)
			os.Exit(1)
		}

		tui.PrintBanner()

		srv := &http.Server{
			Addr:    addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting adoctree Server on %s\n", srv.Addr)
			fmt.Printf("Tree cache: %s\n", cacheMode)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("adoctree Server stopped gracefully")
		}
	},
}

// buildCache constructs the tree cache for the requested mode. A nil cache
// means every request resolves fresh.
func buildCache(mode, redisAddr string, cfg config.Config) (ports.TreeCache, error) {
	switch mode {
	case "memory":
		return memory.New(cfg.Serve.CacheSize)
	case "redis":
		return rediscache.New(redisAddr, "", 0, rediscache.WithTTL(cfg.Serve.TTL())), nil
	case "file":
		return filecache.NewCache(""), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache mode: %s (supported: memory, redis, file, none)", mode)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().String("cache", "memory", "Tree cache backend: memory, redis, file, or none")
	serveCmd.Flags().String("redis", "localhost:6379", "Redis address (cache=redis)")
}
