package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wvoliveira/pong/game"
)

// Pointer filtra as leituras do cursor: só repassa quando ele se moveu e está
// sobre a superfície.
type Pointer struct {
	surface game.Surface
	lastX   int
	lastY   int
	seen    bool
}

func NewPointer(surface game.Surface) *Pointer {
	return &Pointer{surface: surface}
}

// Update recebe a posição atual do cursor e diz se a raquete deve seguir.
func (p *Pointer) Update(x, y int) (float64, bool) {
	moved := !p.seen || x != p.lastX || y != p.lastY
	p.lastX, p.lastY, p.seen = x, y, true
	if !moved {
		return 0, false
	}

	fx, fy := float64(x), float64(y)
	if fx < 0 || fx >= p.surface.Width || fy < 0 || fy >= p.surface.Height {
		return 0, false
	}
	return fy, true
}

// Game liga a simulação ao loop do ebiten: Update roda um Step por tick e Draw
// pinta o estado resultante.
type Game struct {
	state    *game.State
	renderer *Renderer
	pointer  *Pointer
}

func NewGame(state *game.State, renderer *Renderer) *Game {
	return &Game{
		state:    state,
		renderer: renderer,
		pointer:  NewPointer(state.Surface),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if y, ok := g.pointer.Update(ebiten.CursorPosition()); ok {
		g.state.MovePlayer(y)
	}

	g.state.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawFrame(screen, g.state)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.state.Surface.Width), int(g.state.Surface.Height)
}
