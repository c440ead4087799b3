// Package render desenha o jogo com ebiten.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wvoliveira/pong/game"
)

// Rede tracejada no meio da quadra.
const (
	NetDashEvery  = 30
	NetDashLength = 16
	NetWidth      = 4
)

type Renderer struct {
	Background    color.Color
	Net           color.Color
	PlayerColor   color.Color
	OpponentColor color.Color
	BallColor     color.Color

	Scoreboard *Scoreboard
}

func NewRenderer(board *Scoreboard) *Renderer {
	return &Renderer{
		Background:    color.Black,
		Net:           color.RGBA{0x44, 0x44, 0x44, 0xff},
		PlayerColor:   color.RGBA{0x00, 0xff, 0xff, 0xff},
		OpponentColor: color.RGBA{0xff, 0x00, 0x00, 0xff},
		BallColor:     color.White,
		Scoreboard:    board,
	}
}

// NetDashes devolve o início e o fim de cada traço da rede.
func NetDashes(height float64) [][2]float64 {
	var dashes [][2]float64
	for y := 0.0; y < height; y += NetDashEvery {
		dashes = append(dashes, [2]float64{y, y + NetDashLength})
	}
	return dashes
}

// DrawFrame pinta o frame inteiro por cima do anterior.
func (r *Renderer) DrawFrame(dst *ebiten.Image, s *game.State) {
	dst.Fill(r.Background)

	x := float32(s.Surface.Width / 2)
	for _, d := range NetDashes(s.Surface.Height) {
		vector.StrokeLine(dst, x, float32(d[0]), x, float32(d[1]), NetWidth, r.Net, false)
	}

	fillPaddle(dst, &s.Player, r.PlayerColor)
	fillPaddle(dst, &s.Opponent, r.OpponentColor)

	vector.FillCircle(dst, float32(s.Ball.X), float32(s.Ball.Y), float32(s.Ball.Size/2), r.BallColor, true)

	if r.Scoreboard != nil {
		r.Scoreboard.Draw(dst, s.Surface.Width)
	}
}

func fillPaddle(dst *ebiten.Image, p *game.Paddle, clr color.Color) {
	vector.FillRect(dst, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), clr, false)
}
