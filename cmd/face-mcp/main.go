package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ironsheep/face-gen-mcp/internal/config"
	"github.com/ironsheep/face-gen-mcp/internal/facegen"
	"github.com/ironsheep/face-gen-mcp/internal/server"
	"github.com/ironsheep/face-gen-mcp/internal/source"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("face-gen-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("face-gen-mcp - MCP server for synthetic face generation")
			fmt.Println()
			fmt.Println("Usage: face-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  FACE_MCP_SOURCE_URL      Face image source endpoint")
			fmt.Println("  FACE_MCP_HTTP_TIMEOUT    Fetch timeout (default 30s)")
			fmt.Println("  FACE_MCP_LOG_LEVEL       Log level (default info)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout carries the MCP protocol.
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	log.Debug().
		Str("version", Version).
		Str("source", cfg.SourceURL).
		Msg("starting face-gen-mcp")

	client := source.New(cfg.SourceURL, cfg.HTTPTimeout, log)
	gen := facegen.New(client, log)

	srv := server.New(gen, log)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
