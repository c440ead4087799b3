package sound

import (
	"log/slog"
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/wvoliveira/pong/game"
)

type queue struct {
	streamers []beep.Streamer
}

func (q *queue) play(s ...beep.Streamer) {
	q.streamers = append(q.streamers, s...)
}

// drain consome o streamer e devolve o número de amostras e o pico.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = math.Max(peak, math.Abs(sample[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func newTestPlayer() (*Player, *queue) {
	q := &queue{}
	return newPlayer(q.play, slog.New(slog.DiscardHandler)), q
}

func TestBounceTones(t *testing.T) {
	tests := []struct {
		name   string
		bounce game.Bounce
		want   tone
	}{
		{"paddle", game.BouncePaddle, paddleTone},
		{"wall", game.BounceWall, wallTone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, q := newTestPlayer()
			p.ReportBounce(tt.bounce)

			if len(q.streamers) != 1 {
				t.Fatalf("expected 1 streamer, got %d", len(q.streamers))
			}
			n, _ := drain(q.streamers[0])
			if want := sampleRate.N(tt.want.duration); n != want {
				t.Errorf("expected %d samples, got %d", want, n)
			}
		})
	}
}

func TestScoreTone(t *testing.T) {
	p, q := newTestPlayer()

	p.ReportScore(0, 0)
	if len(q.streamers) != 0 {
		t.Fatalf("initial score should be silent, got %d streamers", len(q.streamers))
	}

	p.ReportScore(1, 0)
	if len(q.streamers) != 1 {
		t.Fatalf("expected 1 streamer, got %d", len(q.streamers))
	}
	n, peak := drain(q.streamers[0])
	if want := sampleRate.N(scoreTone.duration); n != want {
		t.Errorf("expected %d samples, got %d", want, n)
	}
	// Volume -2 em base 2: amplitude máxima de 0.25.
	if peak <= 0 || peak > 0.25+1e-9 {
		t.Errorf("unexpected peak amplitude %v", peak)
	}
}

func TestPlayerAsGameReporter(t *testing.T) {
	p, q := newTestPlayer()
	var r game.ScoreReporter = game.MultiReporter{p}

	r.(game.BounceReporter).ReportBounce(game.BouncePaddle)
	r.ReportScore(0, 1)

	if len(q.streamers) != 2 {
		t.Errorf("expected 2 streamers, got %d", len(q.streamers))
	}
}
