package game

import (
	"log/slog"

	"github.com/wvoliveira/pong/configs"
)

// Surface é a área de jogo. Define os limites de colisão e de pontuação.
type Surface struct {
	Width, Height float64
}

// Score só cresce, um ponto por vez.
type Score struct {
	Player   int
	Opponent int
}

// Estado do mundo. Criado uma vez por sessão e alterado apenas por Step e
// MovePlayer.
type State struct {
	Surface  Surface
	Ball     Ball
	Player   Paddle
	Opponent Paddle
	Score    Score

	BaseSpeed   float64
	Restitution float64
	Spin        float64
	Deadband    float64

	rand     RandomSource
	reporter ScoreReporter
	log      *slog.Logger
}

type Option func(*State)

func WithRandomSource(r RandomSource) Option {
	return func(s *State) { s.rand = r }
}

func WithReporter(r ScoreReporter) Option {
	return func(s *State) { s.reporter = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *State) { s.log = l }
}

// New monta a sessão a partir da config: raquetes centralizadas, bola no meio
// com saque para um lado sorteado, e o placar inicial já reportado.
func New(cfg configs.Config, opts ...Option) *State {
	s := &State{
		Surface: Surface{Width: cfg.ScreenWidth, Height: cfg.ScreenHeight},
		Player: Paddle{
			X:      cfg.PaddleMargin,
			Y:      cfg.ScreenHeight/2 - cfg.PaddleHeight/2,
			Width:  cfg.PaddleWidth,
			Height: cfg.PaddleHeight,
		},
		Opponent: Paddle{
			X:      cfg.ScreenWidth - cfg.PaddleMargin - cfg.PaddleWidth,
			Y:      cfg.ScreenHeight/2 - cfg.PaddleHeight/2,
			Width:  cfg.PaddleWidth,
			Height: cfg.PaddleHeight,
			Speed:  cfg.PaddleSpeed,
		},
		Ball: Ball{Size: cfg.BallSize},

		BaseSpeed:   cfg.BallSpeed,
		Restitution: cfg.Restitution,
		Spin:        cfg.Spin,
		Deadband:    cfg.Deadband,

		reporter: nopReporter{},
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = NewRandomSource(cfg.Seed)
	}

	direction := -1
	if s.rand.Next() < 0.5 {
		direction = 1
	}
	s.ResetBall(direction)

	s.reporter.ReportScore(s.Score.Player, s.Score.Opponent)
	return s
}

// ResetBall recoloca a bola no centro. direction é +1 (para a direita) ou -1.
func (s *State) ResetBall(direction int) {
	s.Ball.X = s.Surface.Width / 2
	s.Ball.Y = s.Surface.Height / 2
	s.Ball.VX = s.BaseSpeed * float64(direction)
	s.Ball.VY = s.BaseSpeed * (s.rand.Next()*2 - 1)

	s.log.Debug("ball reset", "direction", direction, "vx", s.Ball.VX, "vy", s.Ball.VY)
}
