package game

// ScoreReporter recebe o placar sempre que ele muda.
type ScoreReporter interface {
	ReportScore(player, opponent int)
}

type Bounce int

const (
	BounceWall Bounce = iota
	BouncePaddle
)

func (b Bounce) String() string {
	switch b {
	case BounceWall:
		return "wall"
	case BouncePaddle:
		return "paddle"
	}
	return "unknown"
}

// BounceReporter é opcional: se o reporter também implementa esta interface,
// recebe cada rebatida da bola.
type BounceReporter interface {
	ReportBounce(Bounce)
}

// MultiReporter repassa as notificações para vários reporters, na ordem.
type MultiReporter []ScoreReporter

func (m MultiReporter) ReportScore(player, opponent int) {
	for _, r := range m {
		r.ReportScore(player, opponent)
	}
}

func (m MultiReporter) ReportBounce(b Bounce) {
	for _, r := range m {
		if br, ok := r.(BounceReporter); ok {
			br.ReportBounce(b)
		}
	}
}

type nopReporter struct{}

func (nopReporter) ReportScore(int, int) {}
