package main

import (
	"context"
	"log"
	"os"

	"github.com/printdvor/storefront-cli/internal/buildinfo"
	"github.com/printdvor/storefront-cli/internal/client/cli"
	"github.com/printdvor/storefront-cli/internal/client/config"
	"github.com/printdvor/storefront-cli/internal/logging"
	"github.com/printdvor/storefront-cli/internal/telemetry"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	shutdown := telemetry.Setup("storefront-cli")
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
