package game

// MovePlayer centraliza a raquete do jogador no ponteiro, sempre dentro da
// área. pointerY está em coordenadas da superfície.
func (s *State) MovePlayer(pointerY float64) {
	s.Player.Y = pointerY - s.Player.Height/2
	s.Player.clamp(s.Surface.Height)
}
