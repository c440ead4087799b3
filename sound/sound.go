// Package sound toca os bipes de rebatida e de ponto.
package sound

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/wvoliveira/pong/game"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

var (
	paddleTone = tone{freq: 880, duration: 50 * time.Millisecond}
	wallTone   = tone{freq: 440, duration: 30 * time.Millisecond}
	scoreTone  = tone{freq: 220, duration: 200 * time.Millisecond}
)

// Player implementa game.ScoreReporter e game.BounceReporter.
type Player struct {
	play func(...beep.Streamer)
	log  *slog.Logger
	// Volume relativo em base 2; -2 dá um quarto da amplitude.
	volume float64
}

// Init abre o speaker. Deve ser chamada uma vez por processo.
func Init(log *slog.Logger) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return newPlayer(speaker.Play, log), nil
}

func Close() {
	speaker.Close()
}

func newPlayer(play func(...beep.Streamer), log *slog.Logger) *Player {
	return &Player{play: play, log: log, volume: -2}
}

func (p *Player) ReportBounce(b game.Bounce) {
	switch b {
	case game.BouncePaddle:
		p.blip(paddleTone)
	case game.BounceWall:
		p.blip(wallTone)
	}
}

// ReportScore ignora o placar inicial 0 x 0.
func (p *Player) ReportScore(player, opponent int) {
	if player+opponent == 0 {
		return
	}
	p.blip(scoreTone)
}

func (p *Player) blip(t tone) {
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		p.log.Warn("error to build tone", "freq", t.freq, "error", err)
		return
	}

	p.play(beep.Take(sampleRate.N(t.duration), &effects.Volume{
		Streamer: sine,
		Base:     2,
		Volume:   p.volume,
	}))
}
