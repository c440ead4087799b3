package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/game"
	"github.com/wvoliveira/pong/sound"
	"github.com/wvoliveira/pong/termui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := configs.Load(*configPath)
	if err != nil {
		return err
	}

	// O log não pode ir para o terminal, que está ocupado pela tela.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := cfg.SessionLogger(out)
	slog.SetDefault(log)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	view := termui.NewView(screen, game.Surface{Width: cfg.ScreenWidth, Height: cfg.ScreenHeight})
	reporters := game.MultiReporter{view}

	if cfg.Sound {
		player, err := sound.Init(log)
		if err != nil {
			log.Warn("audio disabled", "error", err)
		} else {
			defer sound.Close()
			reporters = append(reporters, player)
		}
	}

	state := game.New(cfg,
		game.WithReporter(reporters),
		game.WithLogger(log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("session started", "width", cfg.ScreenWidth, "height", cfg.ScreenHeight)
	termui.Run(ctx, screen, state, view, cfg.TPS)
	log.Info("session ended", "player", state.Score.Player, "opponent", state.Score.Opponent)

	return nil
}
