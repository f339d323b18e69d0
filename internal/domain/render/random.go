package render

import "math/rand"

// Source fournit l'aléatoire de la simulation.
// Un seul contrat : une valeur uniforme dans [lo, hi).
// On injecte cette interface pour que les tests puissent
// rejouer exactement la même séquence.
type Source interface {
	IntN(lo, hi int) int
}

type randSource struct {
	rng *rand.Rand
}

// NewSeededSource construit une source basée sur math/rand.
// Deux sources avec la même graine produisent la même séquence.
func NewSeededSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) IntN(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo)
}
