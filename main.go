package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/campfire/cmd"
	"github.com/thenoetrevino/campfire/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.ExitCodeFor(cmd.Execute(ctx))
	cancel()
	os.Exit(code)
}
