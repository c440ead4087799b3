package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	scoreScale = 3
	scoreTop   = 12
)

// Scoreboard guarda o texto do placar. Ele só muda via ReportScore, nunca é
// recalculado a cada frame.
type Scoreboard struct {
	text  string
	face  text.Face
	color color.Color
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{
		text:  "0  0",
		face:  text.NewGoXFace(basicfont.Face7x13),
		color: color.White,
	}
}

func (b *Scoreboard) ReportScore(player, opponent int) {
	b.text = fmt.Sprintf("%d  %d", player, opponent)
}

func (b *Scoreboard) Text() string { return b.text }

// Draw centraliza o placar no topo da superfície.
func (b *Scoreboard) Draw(dst *ebiten.Image, width float64) {
	w, _ := text.Measure(b.text, b.face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scoreScale, scoreScale)
	op.GeoM.Translate(width/2-w*scoreScale/2, scoreTop)
	op.ColorScale.ScaleWithColor(b.color)
	text.Draw(dst, b.text, b.face, op)
}
