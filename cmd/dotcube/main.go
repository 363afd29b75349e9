package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"dotcube/internal/engineconfig"
	"dotcube/internal/env"
	"dotcube/internal/logger"
	"dotcube/internal/tui"
	"dotcube/internal/viewer"
)

func main() {
	configFlag := flag.String("config", "", "preferences file (default $"+env.ConfigPathVar+" or "+engineconfig.DefaultPath+")")
	terminal := flag.Bool("tui", false, "render in the terminal instead of a window")
	fullscreen := flag.Bool("fullscreen", false, "open the window fullscreen")
	logPath := flag.String("log", logger.DefaultPath, "log file (empty to keep logs in memory only)")
	flag.Parse()

	if err := env.Load(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read .env: %v\n", err)
	}
	configPath := env.ConfigPath(*configFlag, engineconfig.DefaultPath)

	lines := logger.New(*logPath)
	log := slog.New(lines.Handler(slog.LevelInfo))
	slog.SetDefault(log)

	prefs, err := engineconfig.Load(configPath)
	if err != nil {
		log.Warn("using default preferences", "err", err)
	}
	v := viewer.New(prefs, configPath, log)
	log.Info("starting", "config", configPath, "tui", *terminal, "params", v.Params().String())

	if *terminal {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := tui.Run(ctx, v); err != nil {
			fmt.Fprintf(os.Stderr, "Terminal error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runWindow(v, lines, *fullscreen); err != nil {
		fmt.Fprintf(os.Stderr, "Graphics error: %v\n", err)
		os.Exit(1)
	}
}
