// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen generates random CMDPs off a seeded math/rand.Source,
// for property-based exercise of the solve package's fixed points.
package gen

import (
	"math/rand"

	"github.com/arthuralsett/storm/mdp"
)

// Params controls the shape of a generated CMDP.
type Params struct {
	States     int
	Actions    int
	MaxCost    int // costs are drawn from [0, MaxCost]
	ReloadFrac float64 // fraction of states labelled reload
	TargetFrac float64 // fraction of states labelled target
}

// CMDP generates a random Sparse CMDP from src, every action's
// successor distribution a single deterministic jump (branching is
// exercised separately by the fixed test scenarios in solve's test
// suite). Every state always has at least one self-consistent path:
// action 0 at the last state always self-loops at cost 0 and is
// labelled reload, guaranteeing MinInitCons is finite somewhere so the
// generator never produces a CMDP where every fixed point trivially
// degenerates to all-infinity.
func CMDP(p Params, src rand.Source) (*mdp.Sparse, []bool) {
	r := rand.New(src)
	m := mdp.NewSparse(p.States, p.Actions)
	target := make([]bool, p.States)

	last := p.States - 1
	for s := 0; s < p.States; s++ {
		for a := 0; a < p.Actions; a++ {
			to := r.Intn(p.States)
			m.SetTransition(s, a, []mdp.Succ{{To: to, Prob: 1}})
			m.SetCost(s, a, r.Intn(p.MaxCost+1))
		}
		if r.Float64() < p.ReloadFrac {
			m.SetReload(s, true)
		}
		if r.Float64() < p.TargetFrac {
			m.SetTarget(s, true)
			target[s] = true
		}
	}
	m.SetTransition(last, 0, []mdp.Succ{{To: last, Prob: 1}})
	m.SetCost(last, 0, 0)
	m.SetReload(last, true)

	return m, target
}
