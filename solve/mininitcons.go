// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package solve implements the three fixed-point solvers over a CMDP:
// MinInitCons, Safe, and SafePR (with its counter selector).
package solve

import (
	"github.com/arthuralsett/storm/internal/fixpoint"
	"github.com/arthuralsett/storm/mdp"
	"github.com/arthuralsett/storm/xint"
)

// MinInitCons computes, for every state, the minimum initial resource
// sufficient to guarantee reaching some reload state. It is a
// greatest-fixed-point over xint.T^S, descending from +infinity.
func MinInitCons(m mdp.CMDP) []xint.T {
	reload := make([]bool, m.NumStates())
	for s := 0; s < m.NumStates(); s++ {
		reload[s] = m.Reload(s)
	}
	return MinInitConsFor(m, reload)
}

// MinInitConsFor is MinInitCons parameterised by an explicit reload
// set, used by the Safe solver while it prunes reload states that
// cannot actually be used to recharge.
func MinInitConsFor(m mdp.CMDP, reload []bool) []xint.T {
	n := m.NumStates()
	na := m.NumActions()
	init := make([]xint.T, n)
	for i := range init {
		init[i] = xint.Inf()
	}
	return fixpoint.GFP(init, func(prev []xint.T) []xint.T {
		// f-hat: prev with reload states truncated to 0, per 4.C.
		hat := make([]xint.T, n)
		for s := 0; s < n; s++ {
			if reload[s] {
				hat[s] = xint.Finite(0)
			} else {
				hat[s] = prev[s]
			}
		}
		next := make([]xint.T, n)
		for s := 0; s < n; s++ {
			costUntilReload := xint.Inf()
			for a := 0; a < na; a++ {
				step := xint.Finite(m.Cost(s, a))
				remaining := fixpoint.MaxOverPost(m, s, a, func(t int) xint.T { return hat[t] })
				candidate := xint.MustAdd(step, remaining)
				if candidate.Less(costUntilReload) {
					costUntilReload = candidate
				}
			}
			next[s] = costUntilReload
		}
		return next
	})
}
