package main

import (
	"context"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/fx"
)

const lifecycleTimeout = 15 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	app := fx.New(newApp(loadConfig(), os.Stdout))
	if err := app.Err(); err != nil {
		return 1
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancelStart()
	startErr := app.Start(startCtx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil || startErr != nil {
		return 1
	}
	return 0
}
