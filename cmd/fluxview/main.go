package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/fluxview/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/fluxview/config.toml)")
	prefsPath := flag.String("prefs", "", "preferences file path (optional, overrides prefs_path)")
	replayPath := flag.String("replay", "", "replay an action journal and print the resulting state instead of starting the UI")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		ReplayPath: *replayPath,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "fluxview: %v\n", err)
		return 1
	}
	return 0
}
