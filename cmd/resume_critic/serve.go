package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-critic/internal/logger"
	"github.com/jonathan/resume-critic/internal/server"
)

var (
	servePort       int
	serveUseBrowser bool
	serveLogJSON    bool
	serveLogDebug   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the critique API. Without GEMINI_API_KEY set, every critique is produced by the deterministic heuristics.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for JavaScript-rendered job pages")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit JSON-encoded logs")
	serveCmd.Flags().BoolVar(&serveLogDebug, "log-debug", false, "Include debug-level logs")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	log, err := logger.New(serveLogJSON, serveLogDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // flushing on exit

	cfg := server.Config{
		Port:       servePort,
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:      os.Getenv("GEMINI_MODEL"),
		UseBrowser: serveUseBrowser,
	}

	srv, err := server.New(context.Background(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
