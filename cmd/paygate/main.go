package main

import (
	"context"
	"log"
	"os"

	"github.com/STORMGAMER0/Paygate/internal/buildinfo"
	"github.com/STORMGAMER0/Paygate/internal/client/cli"
	"github.com/STORMGAMER0/Paygate/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
