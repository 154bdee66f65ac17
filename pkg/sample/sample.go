// Package sample picks unique random indices out of a population.
package sample

import (
	"math/rand/v2"

	"github.com/arthur-debert/sysknife/pkg/errors"
)

// Source is the randomness UniqueIndices draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Default draws from the automatically seeded math/rand/v2 generator.
var Default Source = globalSource{}

// UniqueIndices returns min(want, population) distinct indices in
// [0, population), uniformly chosen without replacement.
//
// When want covers the whole population every index is returned, in order.
// Otherwise the first want slots of a partial Fisher-Yates shuffle are
// returned, which bounds the work to want draws regardless of how close
// want is to population.
func UniqueIndices(src Source, population, want int) ([]int, error) {
	if population < 0 || want < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"population (%d) and requested count (%d) must be non-negative", population, want)
	}
	if src == nil {
		src = Default
	}

	idx := make([]int, population)
	for i := range idx {
		idx[i] = i
	}

	if want >= population {
		return idx, nil
	}

	for i := 0; i < want; i++ {
		j := i + src.IntN(population-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:want], nil
}
