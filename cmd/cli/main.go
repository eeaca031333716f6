package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/qrattend/internal/client/cli"
	"github.com/dmitrijs2005/qrattend/internal/client/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
