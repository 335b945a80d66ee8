package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/kevinsebalee/eventos-cli/internal/client/cli"
	"github.com/kevinsebalee/eventos-cli/internal/client/config"
	"github.com/kevinsebalee/eventos-cli/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
