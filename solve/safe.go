// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package solve

import (
	"github.com/arthuralsett/storm/mdp"
	"github.com/arthuralsett/storm/xint"
)

// Safe computes, for every state, the minimum initial resource
// sufficient to survive forever under capacity. It repeatedly prunes
// the reload set: a reload state whose own MinInitCons exceeds
// capacity cannot actually be used to recharge and must be struck,
// after which MinInitCons is recomputed against the shrunken set.
// Removal is monotone, so the loop always terminates.
func Safe(m mdp.CMDP, capacity int) []xint.T {
	n := m.NumStates()
	rel := make([]bool, n)
	for s := 0; s < n; s++ {
		rel[s] = m.Reload(s)
	}

	var minInitCons []xint.T
	for {
		minInitCons = MinInitConsFor(m, rel)
		changed := false
		for s := 0; s < n; s++ {
			if rel[s] && minInitCons[s].Greater(xint.Finite(capacity)) {
				rel[s] = false
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	out := make([]xint.T, n)
	cap := xint.Finite(capacity)
	for s := 0; s < n; s++ {
		switch {
		case rel[s]:
			out[s] = xint.Finite(0)
		case minInitCons[s].Greater(cap):
			out[s] = xint.Inf()
		default:
			out[s] = minInitCons[s]
		}
	}
	return out
}
