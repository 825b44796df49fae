// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package solve

import (
	"github.com/arthuralsett/storm/internal/fixpoint"
	"github.com/arthuralsett/storm/mdp"
	"github.com/arthuralsett/storm/selector"
	"github.com/arthuralsett/storm/xint"
)

// SafePR jointly computes the SafePR vector and a counter selector
// realising it, given the Safe vector (component D's output), the
// target set and capacity.
//
// target[s] reports membership in T; the reload set is read directly
// from m.
func SafePR(m mdp.CMDP, capacity int, safe []xint.T, target []bool) ([]xint.T, selector.T) {
	n := m.NumStates()
	na := m.NumActions()
	cap := xint.Finite(capacity)

	v := make([]xint.T, n)
	for s := 0; s < n; s++ {
		if target[s] {
			v[s] = safe[s]
		} else {
			v[s] = xint.Inf()
		}
	}

	sel := selector.New(n, capacity)
	for s := 0; s < n; s++ {
		if safe[s].IsInfinite() {
			continue
		}
		safeVal, _ := safe[s].Value()
		b := capacity
		if !m.Reload(s) {
			b = safeVal
		}
		for a := 0; a < na; a++ {
			step := xint.Finite(m.Cost(s, a))
			worst := fixpoint.MaxOverPost(m, s, a, func(t int) xint.T { return safe[t] })
			cost := xint.MustAdd(step, worst)
			if cost.LessEq(xint.Finite(b)) {
				sel.Set(s, safeVal, a)
				break
			}
		}
	}

	// sprVal(s,a,v) = C(s,a) + min_t M(s,a,v,t)
	// M(s,a,v,t) = max(v[t], max_{t'!=t} safe[t'])
	sprVal := func(prev []xint.T, s, a int) xint.T {
		step := xint.Finite(m.Cost(s, a))
		inner := fixpoint.MinOverPost(m, s, a, func(t int) xint.T {
			others, ok := fixpoint.MaxOverOtherSuccessors(m, s, a, t, func(tp int) xint.T { return safe[tp] })
			if !ok {
				return prev[t]
			}
			return xint.Max(prev[t], others)
		})
		return xint.MustAdd(step, inner)
	}

	for {
		old := append([]xint.T(nil), v...)
		changed := false
		for s := 0; s < n; s++ {
			if target[s] {
				continue
			}
			best := xint.Inf()
			bestAction := 0
			for a := 0; a < na; a++ {
				cand := sprVal(old, s, a)
				if cand.Less(best) {
					best = cand
					bestAction = a
				}
			}
			// Two-sided truncation.
			switch {
			case best.Greater(cap):
				best = xint.Inf()
			case m.Reload(s):
				best = xint.Finite(0)
			}
			v[s] = best
			if best.Less(old[s]) {
				lvl, err := best.Value()
				if err == nil {
					sel.Set(s, lvl, bestAction)
				}
			}
			if !best.Eq(old[s]) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return v, sel
}
