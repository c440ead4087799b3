package game

// Step avança a simulação em um frame. A ordem importa: cada etapa enxerga a
// posição da bola já alterada pelas anteriores.
func (s *State) Step() {
	s.Ball.Move()

	if s.Ball.bounceWalls(s.Surface.Height) {
		s.bounce(BounceWall)
	}
	if s.collidePlayer() {
		s.bounce(BouncePaddle)
	}
	if s.collideOpponent() {
		s.bounce(BouncePaddle)
	}

	s.checkScore()
	s.trackBall()
}

// collidePlayer testa a borda esquerda da bola contra a borda direita da
// raquete do jogador.
func (s *State) collidePlayer() bool {
	p, b := &s.Player, &s.Ball
	if b.X-b.radius() >= p.Right() || !p.overlapsY(b) {
		return false
	}

	b.X = p.Right() + b.radius()
	s.deflect(p)
	return true
}

// collideOpponent é o espelho de collidePlayer: borda direita da bola contra
// a borda esquerda do oponente.
func (s *State) collideOpponent() bool {
	p, b := &s.Opponent, &s.Ball
	if b.X+b.radius() <= p.Left() || !p.overlapsY(b) {
		return false
	}

	b.X = p.Left() - b.radius()
	s.deflect(p)
	return true
}

// deflect inverte e amplia VX e soma o efeito do ponto de impacto em VY.
func (s *State) deflect(p *Paddle) {
	s.Ball.VX = -s.Ball.VX * s.Restitution
	s.Ball.VY += p.spin(&s.Ball) * s.Spin
}

// checkScore usa comparação estrita: a bola exatamente na borda não pontua.
func (s *State) checkScore() {
	switch {
	case s.Ball.X < 0:
		s.Score.Opponent++
		s.scored("opponent")
		s.ResetBall(1)
	case s.Ball.X > s.Surface.Width:
		s.Score.Player++
		s.scored("player")
		s.ResetBall(-1)
	}
}

func (s *State) scored(who string) {
	s.log.Info("point scored", "scorer", who, "player", s.Score.Player, "opponent", s.Score.Opponent)
	s.reporter.ReportScore(s.Score.Player, s.Score.Opponent)
}

func (s *State) bounce(b Bounce) {
	if br, ok := s.reporter.(BounceReporter); ok {
		br.ReportBounce(b)
	}
}

// trackBall move o oponente em direção à bola. Dentro da zona morta ele fica
// parado, o que evita tremedeira.
func (s *State) trackBall() {
	o := &s.Opponent
	switch center := o.Center(); {
	case center < s.Ball.Y-s.Deadband:
		o.Y += o.Speed
	case center > s.Ball.Y+s.Deadband:
		o.Y -= o.Speed
	}
	o.clamp(s.Surface.Height)
}
