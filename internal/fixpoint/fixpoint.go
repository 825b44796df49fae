// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package fixpoint factors out the successor folds and the
// descending-iteration-to-fixed-point loop shared by the MinInitCons,
// Safe and SafePR solvers, so each solver states only its one-step
// operator.
package fixpoint

import (
	"github.com/arthuralsett/storm/mdp"
	"github.com/arthuralsett/storm/xint"
)

// MaxOverPost folds f over every successor of (s,a), taking the
// maximum, starting from xint.Finite(0). A state with no successors
// (never happens in a well-formed CMDP, see mdp.CMDP.Post) would fold
// to 0.
func MaxOverPost(m mdp.CMDP, s, a int, f func(t int) xint.T) xint.T {
	max := xint.Finite(0)
	m.Post(s, a, func(succ mdp.Succ) {
		v := f(succ.To)
		if v.Greater(max) {
			max = v
		}
	})
	return max
}

// MinOverPost folds f over every successor of (s,a), taking the
// minimum, starting from xint.Inf().
func MinOverPost(m mdp.CMDP, s, a int, f func(t int) xint.T) xint.T {
	min := xint.Inf()
	m.Post(s, a, func(succ mdp.Succ) {
		v := f(succ.To)
		if v.Less(min) {
			min = v
		}
	})
	return min
}

// MaxOverOtherSuccessors folds f over every successor of (s,a) except
// excl, taking the maximum. ok is false when (s,a)'s successor set is
// the singleton {excl}, in which case there is nothing to fold and the
// returned value is meaningless; callers use ok to fall back to an
// identity (see the sprVal closure in solve.SafePR, which treats the "no other successor" case
// as "nothing else constrains us").
func MaxOverOtherSuccessors(m mdp.CMDP, s, a, excl int, f func(t int) xint.T) (v xint.T, ok bool) {
	max := xint.Finite(0)
	found := false
	m.Post(s, a, func(succ mdp.Succ) {
		if succ.To == excl {
			return
		}
		found = true
		cand := f(succ.To)
		if cand.Greater(max) {
			max = cand
		}
	})
	return max, found
}

// GFP iterates f, a pointwise-monotone-non-increasing operator over
// xint.T^n, starting from init, accumulating with v <- min(v, f(v))
// until two successive iterates agree, then returns the fixed point.
//
// f receives the previous approximation and must return a fresh slice
// (or one it is safe for GFP to own); GFP does the pointwise min and
// the equality check itself.
func GFP(init []xint.T, f func(prev []xint.T) []xint.T) []xint.T {
	cur := append([]xint.T(nil), init...)
	for {
		next := f(cur)
		changed := false
		for i := range next {
			if next[i].Less(cur[i]) {
				cur[i] = next[i]
				changed = true
			} else {
				next[i] = cur[i]
			}
		}
		if !changed {
			return cur
		}
	}
}

// Equal reports whether two xint.T slices are pointwise equal.
func Equal(a, b []xint.T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Eq(b[i]) {
			return false
		}
	}
	return true
}
