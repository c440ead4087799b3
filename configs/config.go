package configs

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// Constantes do jogo. Todas podem ser sobrescritas por um arquivo TOML.
type Config struct {
	Title string `toml:"title"`

	ScreenWidth  float64 `toml:"screen_width"`
	ScreenHeight float64 `toml:"screen_height"`

	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	PaddleMargin float64 `toml:"paddle_margin"`
	PaddleSpeed  float64 `toml:"paddle_speed"`

	BallSize  float64 `toml:"ball_size"`
	BallSpeed float64 `toml:"ball_speed"`

	// Física da rebatida.
	Restitution float64 `toml:"restitution"`
	Spin        float64 `toml:"spin"`
	Deadband    float64 `toml:"deadband"`

	// Ticks por segundo do loop principal.
	TPS int `toml:"tps"`
	// Semente do sorteio da bola. Zero usa o relógio.
	Seed  int64 `toml:"seed"`
	Sound bool  `toml:"sound"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

func New() Config {
	return Config{
		Title: "Pong",

		ScreenWidth:  800,
		ScreenHeight: 400,

		PaddleWidth:  12,
		PaddleHeight: 80,
		PaddleMargin: 20,
		PaddleSpeed:  6,

		BallSize:  14,
		BallSpeed: 5,

		Restitution: 1.05,
		Spin:        2,
		Deadband:    10,

		TPS:   60,
		Sound: true,

		LogLevel: "info",
	}
}

// Load parte dos valores padrão e aplica por cima o arquivo em path.
// Caminho vazio devolve só os padrões.
func Load(path string) (Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate junta todas as violações num único erro.
func (c Config) Validate() error {
	var errs []error

	positive := []struct {
		name  string
		value float64
	}{
		{"screen_width", c.ScreenWidth},
		{"screen_height", c.ScreenHeight},
		{"paddle_width", c.PaddleWidth},
		{"paddle_height", c.PaddleHeight},
		{"ball_size", c.BallSize},
		{"ball_speed", c.BallSpeed},
	}
	for _, f := range positive {
		if f.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", f.name, f.value))
		}
	}

	if c.PaddleSpeed < 0 {
		errs = append(errs, fmt.Errorf("paddle_speed must not be negative, got %v", c.PaddleSpeed))
	}
	if c.PaddleMargin < 0 {
		errs = append(errs, fmt.Errorf("paddle_margin must not be negative, got %v", c.PaddleMargin))
	}
	if c.Deadband < 0 {
		errs = append(errs, fmt.Errorf("deadband must not be negative, got %v", c.Deadband))
	}
	if c.PaddleHeight > c.ScreenHeight {
		errs = append(errs, fmt.Errorf("paddle_height %v does not fit screen_height %v", c.PaddleHeight, c.ScreenHeight))
	}
	if 2*(c.PaddleMargin+c.PaddleWidth) > c.ScreenWidth {
		errs = append(errs, fmt.Errorf("paddles with margin %v do not fit screen_width %v", c.PaddleMargin, c.ScreenWidth))
	}
	if c.BallSize > c.ScreenHeight {
		errs = append(errs, fmt.Errorf("ball_size %v does not fit screen_height %v", c.BallSize, c.ScreenHeight))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Level converte LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// SessionLogger cria o logger da sessão, marcado com um id único.
func (c Config) SessionLogger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("session", uuid.NewString())
}
