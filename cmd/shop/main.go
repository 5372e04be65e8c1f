package main

import (
	"context"
	"log"

	"github.com/ekozlova/artshop/internal/client/cli"
	"github.com/ekozlova/artshop/internal/client/config"
	"github.com/ekozlova/artshop/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
