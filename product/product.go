// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package product builds the resource-augmented product MDP under a
// fixed counter selector: a flat, fully materialised graph over
// (state, energy level) pairs that a reachability oracle can be run
// against directly.
package product

import (
	"github.com/arthuralsett/storm/mdp"
	"github.com/arthuralsett/storm/selector"
)

// Edge is one outgoing transition of the product MDP: to state To with
// probability Prob.
type Edge struct {
	To   int
	Prob float64
}

// T is a product MDP: n*(capacity+1)+1 states, deterministic under the
// selector that built it (each state has exactly one outgoing
// distribution).
type T struct {
	n        int // original number of states
	capacity int
	edges    [][]Edge // edges[x]
	target   []bool
}

// Encode maps an original state s and resource level l to its product
// state index.
func (p *T) Encode(s, l int) int {
	return s*(p.capacity+1) + l
}

// Sink returns the index of the energy-exhausted sink state.
func (p *T) Sink() int {
	return p.n * (p.capacity + 1)
}

// NumStates returns the total number of product states, including the
// sink.
func (p *T) NumStates() int {
	return len(p.edges)
}

// Edges returns the outgoing edges of product state x.
func (p *T) Edges(x int) []Edge {
	return p.edges[x]
}

// Target reports whether product state x is a target: (s,l) is target
// iff s is a target in the original CMDP; the sink is never a target.
func (p *T) Target(x int) bool {
	return p.target[x]
}

// Build constructs the product MDP for m under capacity, following
// sel: from (s,l), look up a = sel.Lookup(s,l); compute
// l' = (reload(s) ? capacity : l) - cost(s,a); route to the sink if
// l' < 0, otherwise fan out to (t, l') for every successor t of (s,a).
func Build(m mdp.CMDP, capacity int, sel selector.T) *T {
	n := m.NumStates()
	total := n*(capacity+1) + 1
	sink := n * (capacity + 1)

	p := &T{
		n:        n,
		capacity: capacity,
		edges:    make([][]Edge, total),
		target:   make([]bool, total),
	}

	for s := 0; s < n; s++ {
		isTarget := m.Target(s)
		for l := 0; l <= capacity; l++ {
			x := p.Encode(s, l)
			p.target[x] = isTarget

			a := sel.Lookup(s, l)
			start := l
			if m.Reload(s) {
				start = capacity
			}
			remaining := start - m.Cost(s, a)
			if remaining < 0 {
				p.edges[x] = []Edge{{To: sink, Prob: 1}}
				continue
			}
			var out []Edge
			m.Post(s, a, func(succ mdp.Succ) {
				out = append(out, Edge{To: p.Encode(succ.To, remaining), Prob: succ.Prob})
			})
			p.edges[x] = out
		}
	}
	p.edges[sink] = []Edge{{To: sink, Prob: 1}}
	p.target[sink] = false

	return p
}
