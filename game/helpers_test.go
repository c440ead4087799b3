package game

import (
	"log/slog"
	"math"
	"testing"

	"github.com/wvoliveira/pong/configs"
)

const epsilon = 1e-9

type recorder struct {
	scores  []Score
	bounces []Bounce
}

func (r *recorder) ReportScore(player, opponent int) {
	r.scores = append(r.scores, Score{Player: player, Opponent: opponent})
}

func (r *recorder) ReportBounce(b Bounce) {
	r.bounces = append(r.bounces, b)
}

// newTestState cria um estado com a config padrão (800x400) e limpa o que o
// New já reportou.
func newTestState(t *testing.T, src RandomSource) (*State, *recorder) {
	t.Helper()
	rec := &recorder{}
	s := New(configs.New(),
		WithRandomSource(src),
		WithReporter(rec),
		WithLogger(slog.New(slog.DiscardHandler)),
	)
	rec.scores = nil
	rec.bounces = nil
	return s, rec
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
