package game

// Ball guarda a posição do centro, o diâmetro e a velocidade em unidades por frame.
type Ball struct {
	X, Y   float64
	Size   float64
	VX, VY float64
}

func (b *Ball) radius() float64 { return b.Size / 2 }

// Move avança a bola pela velocidade atual.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// bounceWalls reflete a bola no teto e no chão. As duas bordas são testadas
// de forma independente.
func (b *Ball) bounceWalls(height float64) bool {
	hit := false
	if b.Y-b.radius() < 0 {
		b.Y = b.radius()
		b.VY = -b.VY
		hit = true
	}
	if b.Y+b.radius() > height {
		b.Y = height - b.radius()
		b.VY = -b.VY
		hit = true
	}
	return hit
}
