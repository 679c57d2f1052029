package main

import (
	"context"
	"log"
	"os"

	"github.com/guptaRishi00/waflow/internal/buildinfo"
	"github.com/guptaRishi00/waflow/internal/client/cli"
	"github.com/guptaRishi00/waflow/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
