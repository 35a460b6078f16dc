// Package mcp parses scene bridge command flags and starts the MCP service.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/scenebridge/scenebridge/internal/platform/config"
	"github.com/scenebridge/scenebridge/internal/platform/otel"
	"github.com/scenebridge/scenebridge/internal/platform/timeouts"
	"github.com/scenebridge/scenebridge/internal/services/mcp/service"
	"github.com/scenebridge/scenebridge/internal/services/mcp/storage/sqlite"
)

// Config holds scene bridge command configuration.
type Config struct {
	RemoteHost string `env:"SCENEBRIDGE_REMOTE_HOST" envDefault:"127.0.0.1"`
	RemotePort string `env:"SCENEBRIDGE_REMOTE_PORT" envDefault:"30010"`
	AuditDB    string `env:"SCENEBRIDGE_AUDIT_DB"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.RemoteHost, "remote-host", cfg.RemoteHost, "scene host address")
	fs.StringVar(&cfg.RemotePort, "remote-port", cfg.RemotePort, "scene host remote-control port")
	fs.StringVar(&cfg.AuditDB, "audit-db", cfg.AuditDB, "invocation log database path (empty disables)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the scene bridge MCP server and blocks until shutdown.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "scenebridge")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.OtelShutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	svcCfg := service.Config{
		RemoteAddr: net.JoinHostPort(cfg.RemoteHost, cfg.RemotePort),
	}

	if cfg.AuditDB != "" {
		store, err := sqlite.Open(cfg.AuditDB)
		if err != nil {
			return fmt.Errorf("open audit store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close audit store: %v", err)
			}
		}()
		svcCfg.Store = store
	}

	return service.Run(ctx, svcCfg)
}
