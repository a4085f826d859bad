// Package web wires configuration and lifecycle for the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/entrecherche/agent-web/internal/platform/config"
	"github.com/entrecherche/agent-web/internal/platform/otel"
	"github.com/entrecherche/agent-web/internal/web"
)

// serviceName identifies this process in telemetry.
const serviceName = "web"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"ENTRECHERCHE_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
}

// ParseConfig loads configuration from the environment, then applies flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{HTTPAddr: cfg.HTTPAddr})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
