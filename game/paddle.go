package game

// Paddle é uma raquete. X não muda depois de criada.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	// Speed só é usada pela raquete do oponente.
	Speed float64
}

func (p *Paddle) Center() float64 { return p.Y + p.Height/2 }

func (p *Paddle) Left() float64  { return p.X }
func (p *Paddle) Right() float64 { return p.X + p.Width }

// clamp mantém a raquete dentro de [0, surfaceHeight-Height].
func (p *Paddle) clamp(surfaceHeight float64) {
	p.Y = clamp(p.Y, 0, surfaceHeight-p.Height)
}

// overlapsY diz se a bola cobre verticalmente algum trecho da raquete.
func (p *Paddle) overlapsY(b *Ball) bool {
	return b.Y+b.radius() > p.Y && b.Y-b.radius() < p.Y+p.Height
}

// spin é o deslocamento do impacto em relação ao centro, medido em
// meias-alturas da raquete.
func (p *Paddle) spin(b *Ball) float64 {
	return (b.Y - p.Center()) / (p.Height / 2)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
