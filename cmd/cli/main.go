package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/loandesk/internal/buildinfo"
	"github.com/dmitrijs2005/loandesk/internal/client/cli"
	"github.com/dmitrijs2005/loandesk/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg, os.Stdin, os.Stdout, os.Stderr)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
