package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genealogydb/genealogy-mcp/internal/config"
	"github.com/genealogydb/genealogy-mcp/internal/server"
	"github.com/genealogydb/genealogy-mcp/internal/storage"
)

var (
	flagConfig    string
	flagTransport string
	flagPort      int
	flagDataDir   string
)

var rootCmd = &cobra.Command{
	Use:          "genealogy-mcp",
	Short:        "MCP server exposing a genealogy research database",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	rootCmd.Flags().StringVar(&flagTransport, "transport", "", "transport mode: stdio or http (default stdio)")
	rootCmd.Flags().IntVar(&flagPort, "port", 0, "HTTP port (only used with --transport http)")
	rootCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "directory for the SQLite database")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	// Flags win over config file and environment.
	if flagTransport != "" {
		cfg.Transport = flagTransport
	}
	if flagPort != 0 {
		cfg.Port = flagPort
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	store, err := storage.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	srv := server.New(store)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch cfg.Transport {
	case "stdio":
		logger.Info("genealogy MCP server starting",
			zap.String("transport", "stdio"),
			zap.String("db", cfg.DBPath()))
		return srv.Run(ctx, &mcp.StdioTransport{})

	case "http":
		addr := fmt.Sprintf(":%d", cfg.Port)
		handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
			return srv
		}, nil)
		httpSrv := &http.Server{Addr: addr, Handler: handler}

		go func() {
			<-ctx.Done()
			logger.Info("shutting down")
			httpSrv.Shutdown(context.Background())
		}()

		logger.Info("genealogy MCP server listening",
			zap.String("addr", addr),
			zap.String("db", cfg.DBPath()))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown transport %q (use stdio or http)", cfg.Transport)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
