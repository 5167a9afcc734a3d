package main

// Generate product descriptions from the command line:
//   go run ./cmd/describe generate --name Aurora --category Books ...
//   go run ./cmd/describe generate --file product.yaml --json

import (
	"os"

	"product-describer/internal/shared/config"
	"product-describer/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(cfg.LogLevel, "console")
	defer telemetry.Sync()

	if err := newRootCmd(cfg.Categories).Execute(); err != nil {
		os.Exit(1)
	}
}
