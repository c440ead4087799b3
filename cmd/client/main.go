package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/game"
	"github.com/wvoliveira/pong/render"
	"github.com/wvoliveira/pong/sound"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := configs.Load(*configPath)
	if err != nil {
		slog.Error("error to load config", "error", err)
		os.Exit(1)
	}

	log := cfg.SessionLogger(os.Stderr)
	slog.SetDefault(log)

	board := render.NewScoreboard()
	reporters := game.MultiReporter{board}

	// Sem áudio o jogo segue mudo.
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

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	log.Info("session started", "width", cfg.ScreenWidth, "height", cfg.ScreenHeight)

	if err := ebiten.RunGame(render.NewGame(state, render.NewRenderer(board))); err != nil {
		log.Error("error to run game", "error", err)
		os.Exit(1)
	}

	log.Info("session ended", "player", state.Score.Player, "opponent", state.Score.Opponent)
}
