// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package storm

import (
	"testing"

	"github.com/arthuralsett/storm/mdp"
	"github.com/arthuralsett/storm/validate"
)

// Invariant 8 (determinism): running the solver twice on the same
// input yields byte-identical vectors and selector.
func TestDeterminism(t *testing.T) {
	m := mdp.NewSparse(2, 1)
	m.SetTransition(0, 0, []mdp.Succ{{To: 1, Prob: 1}})
	m.SetTransition(1, 0, []mdp.Succ{{To: 1, Prob: 1}})
	m.SetCost(0, 0, 2)
	m.SetCost(1, 0, 0)
	m.SetReload(1, true)
	m.SetTarget(1, true)
	capacity := 3
	target := []bool{false, true}

	r1 := Solve(m, capacity, target)
	r2 := Solve(m, capacity, target)

	for s := range r1.MinInitCons {
		if !r1.MinInitCons[s].Eq(r2.MinInitCons[s]) {
			t.Errorf("MinInitCons[%d] differs across runs: %v vs %v", s, r1.MinInitCons[s], r2.MinInitCons[s])
		}
		if !r1.Safe[s].Eq(r2.Safe[s]) {
			t.Errorf("Safe[%d] differs across runs", s)
		}
		if !r1.SafePR[s].Eq(r2.SafePR[s]) {
			t.Errorf("SafePR[%d] differs across runs", s)
		}
	}
	if r1.Selector.String() != r2.Selector.String() {
		t.Errorf("selector differs across runs")
	}
}

func TestEndToEndValidates(t *testing.T) {
	m := mdp.NewSparse(2, 1)
	m.SetTransition(0, 0, []mdp.Succ{{To: 1, Prob: 1}})
	m.SetTransition(1, 0, []mdp.Succ{{To: 1, Prob: 1}})
	m.SetCost(0, 0, 2)
	m.SetCost(1, 0, 0)
	m.SetReload(1, true)
	m.SetTarget(1, true)
	capacity := 3
	target := []bool{false, true}

	r := Solve(m, capacity, target)
	ok, err := Validate(&validate.GraphOracle{}, m, capacity, r)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Errorf("Validate should succeed for a correctly solved CMDP")
	}
}
