package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/haguru/credkeeper/config"
	"github.com/haguru/credkeeper/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// create and initialize the app
	application, err := app.NewApp(ctx, config.ResolveConfigPath())
	if err != nil {
		panic(err) // startup errors, including a failed hasher self-test, are fatal
	}

	// serve until SIGINT/SIGTERM
	if err := application.Run(ctx); err != nil {
		panic(err)
	}
}
