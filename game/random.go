package game

import (
	"math/rand/v2"
	"time"
)

// RandomSource devolve valores uniformes em [0, 1). É a única entrada não
// determinística da simulação.
type RandomSource interface {
	Next() float64
}

type pcgSource struct {
	r *rand.Rand
}

func (s pcgSource) Next() float64 { return s.r.Float64() }

// NewRandomSource cria uma fonte pseudoaleatória. Semente zero usa o relógio.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return pcgSource{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

// FixedSource repete uma sequência fixa de valores, em ciclo.
// Uma sequência vazia sempre devolve 0.5.
type FixedSource struct {
	Values []float64
	i      int
}

func NewFixedSource(values ...float64) *FixedSource {
	return &FixedSource{Values: values}
}

func (s *FixedSource) Next() float64 {
	if len(s.Values) == 0 {
		return 0.5
	}
	v := s.Values[s.i%len(s.Values)]
	s.i++
	return v
}
