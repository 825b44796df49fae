// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package storm ties the CMDP solvers together into the single facade
// a driver needs: given a CMDP and a capacity, compute MinInitCons,
// Safe, SafePR and a counter selector, then validate the selector.
package storm

import (
	"github.com/arthuralsett/storm/mdp"
	"github.com/arthuralsett/storm/product"
	"github.com/arthuralsett/storm/selector"
	"github.com/arthuralsett/storm/solve"
	"github.com/arthuralsett/storm/validate"
	"github.com/arthuralsett/storm/xint"
)

// Result bundles the three solver outputs and the counter selector
// that realises SafePR, everything §6's output contract promises.
type Result struct {
	MinInitCons []xint.T
	Safe        []xint.T
	SafePR      []xint.T
	Selector    selector.T
}

// Solve runs the three fixed points over m at the given capacity.
// target reports, for each state, membership in the target set T.
func Solve(m mdp.CMDP, capacity int, target []bool) Result {
	mic := solve.MinInitCons(m)
	safe := solve.Safe(m, capacity)
	sprV, sel := solve.SafePR(m, capacity, safe, target)
	return Result{MinInitCons: mic, Safe: safe, SafePR: sprV, Selector: sel}
}

// Validate builds the product MDP for m/capacity/r.Selector and checks
// it against r.SafePR using oracle.
func Validate(oracle validate.Oracle, m mdp.CMDP, capacity int, r Result) (bool, error) {
	p := product.Build(m, capacity, r.Selector)
	return validate.Validate(oracle, p, r.SafePR, capacity)
}
