package termui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/pong/game"
)

// Run é o loop de frames do terminal: a cada tick roda Step e redesenha; entre
// ticks processa mouse, teclado e redimensionamento. Termina com Esc, Ctrl-C,
// q ou quando ctx é cancelado.
func Run(ctx context.Context, screen tcell.Screen, state *game.State, view *View, tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	// PollEvent bloqueia; só este goroutine conversa com ele.
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			if !HandleEvent(screen, state, view, ev) {
				return
			}

		case <-ticker.C:
			state.Step()
			view.Draw(state)
			screen.Show()
		}
	}
}

// HandleEvent aplica um evento. Devolve false quando o jogo deve terminar.
func HandleEvent(screen tcell.Screen, state *game.State, view *View, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		if y, ok := view.PointerY(ev.Position()); ok {
			state.MovePlayer(y)
		}

	case *tcell.EventResize:
		view.Resize()
		screen.Sync()
	}

	return true
}
