// Package termui desenha o jogo num terminal com tcell e traduz o mouse para
// a raquete do jogador.
package termui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/pong/game"
)

const (
	netDashEvery  = 30
	netDashLength = 16
)

var (
	netStyle      = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x444444))
	playerStyle   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x00ffff))
	opponentStyle = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xff0000))
	ballStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	scoreStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// View mapeia a superfície do jogo nas células do terminal. A primeira linha
// é o placar; as demais são a área de jogo.
type View struct {
	screen  tcell.Screen
	surface game.Surface
	score   string

	cols, rows int
}

func NewView(screen tcell.Screen, surface game.Surface) *View {
	v := &View{screen: screen, surface: surface}
	v.Resize()
	return v
}

// Resize relê o tamanho do terminal.
func (v *View) Resize() {
	v.cols, v.rows = v.screen.Size()
}

// ReportScore implementa game.ScoreReporter. O texto só muda aqui.
func (v *View) ReportScore(player, opponent int) {
	v.score = fmt.Sprintf("%d  %d", player, opponent)
}

func (v *View) playRows() int {
	return max(v.rows-1, 0)
}

func (v *View) col(x float64) int {
	c := int(x / v.surface.Width * float64(v.cols))
	return min(max(c, 0), v.cols-1)
}

func (v *View) row(y float64) int {
	r := int(y / v.surface.Height * float64(v.playRows()))
	return 1 + min(max(r, 0), v.playRows()-1)
}

// rowCenter devolve a coordenada da superfície no meio da linha da tela.
func (v *View) rowCenter(row int) float64 {
	return (float64(row-1) + 0.5) * v.surface.Height / float64(v.playRows())
}

// PointerY converte a linha do mouse. ok é falso fora da área de jogo.
func (v *View) PointerY(x, y int) (float64, bool) {
	if x < 0 || x >= v.cols || y < 1 || y >= v.rows {
		return 0, false
	}
	return v.rowCenter(y), true
}

// Draw limpa a tela e desenha o frame atual. Não chama Show.
func (v *View) Draw(s *game.State) {
	v.screen.Clear()
	if v.cols == 0 || v.playRows() == 0 {
		return
	}

	v.drawScore()
	v.drawNet()
	v.drawPaddle(&s.Player, playerStyle)
	v.drawPaddle(&s.Opponent, opponentStyle)
	v.screen.SetContent(v.col(s.Ball.X), v.row(s.Ball.Y), '●', nil, ballStyle)
}

func (v *View) drawScore() {
	start := (v.cols - len(v.score)) / 2
	for i, r := range v.score {
		if x := start + i; x >= 0 && x < v.cols {
			v.screen.SetContent(x, 0, r, nil, scoreStyle)
		}
	}
}

func (v *View) drawNet() {
	x := v.col(v.surface.Width / 2)
	for row := 1; row < v.rows; row++ {
		y := v.rowCenter(row)
		if int(y)%netDashEvery < netDashLength {
			v.screen.SetContent(x, row, '│', nil, netStyle)
		}
	}
}

func (v *View) drawPaddle(p *game.Paddle, style tcell.Style) {
	// A borda final é exclusiva; o nudge evita invadir a célula seguinte.
	const nudge = 1e-6
	x0, x1 := v.col(p.Left()), v.col(p.Right()-nudge)
	y0, y1 := v.row(p.Y), v.row(p.Y+p.Height-nudge)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v.screen.SetContent(x, y, '█', nil, style)
		}
	}
}
