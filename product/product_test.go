// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package product

import (
	"testing"

	"github.com/arthuralsett/storm/mdp"
	"github.com/arthuralsett/storm/selector"
)

func TestBuildShape(t *testing.T) {
	m := mdp.NewSparse(2, 1)
	m.SetTransition(0, 0, []mdp.Succ{{To: 1, Prob: 1}})
	m.SetTransition(1, 0, []mdp.Succ{{To: 1, Prob: 1}})
	m.SetCost(0, 0, 2)
	m.SetCost(1, 0, 0)
	m.SetReload(1, true)
	m.SetTarget(1, true)
	capacity := 3

	sel := selector.New(2, capacity)
	sel.Set(0, 2, 0)
	sel.Set(1, 0, 0)

	p := Build(m, capacity, sel)
	wantStates := 2*(capacity+1) + 1
	if p.NumStates() != wantStates {
		t.Fatalf("NumStates() = %d, want %d", p.NumStates(), wantStates)
	}
	if p.Sink() != wantStates-1 {
		t.Errorf("Sink() = %d, want %d", p.Sink(), wantStates-1)
	}
}

func TestBuildRoutesToSinkOnExhaustion(t *testing.T) {
	m := mdp.NewSparse(1, 1)
	m.SetTransition(0, 0, []mdp.Succ{{To: 0, Prob: 1}})
	m.SetCost(0, 0, 5)
	capacity := 2

	sel := selector.New(1, capacity)
	sel.Set(0, 0, 0)

	p := Build(m, capacity, sel)
	x := p.Encode(0, 0)
	edges := p.Edges(x)
	if len(edges) != 1 || edges[0].To != p.Sink() || edges[0].Prob != 1 {
		t.Errorf("state with insufficient resource should route to sink, got %v", edges)
	}
}

func TestSinkSelfLoops(t *testing.T) {
	m := mdp.NewSparse(1, 1)
	m.SetTransition(0, 0, []mdp.Succ{{To: 0, Prob: 1}})
	m.SetCost(0, 0, 0)
	capacity := 1
	sel := selector.New(1, capacity)
	sel.Set(0, 0, 0)
	p := Build(m, capacity, sel)
	edges := p.Edges(p.Sink())
	if len(edges) != 1 || edges[0].To != p.Sink() || edges[0].Prob != 1 {
		t.Errorf("sink should self-loop with probability 1, got %v", edges)
	}
	if p.Target(p.Sink()) {
		t.Errorf("sink should never be a target")
	}
}

func TestReloadResetsLevel(t *testing.T) {
	m := mdp.NewSparse(1, 1)
	m.SetTransition(0, 0, []mdp.Succ{{To: 0, Prob: 1}})
	m.SetCost(0, 0, 1)
	m.SetReload(0, true)
	capacity := 3
	sel := selector.New(1, capacity)
	sel.Set(0, 0, 0)
	p := Build(m, capacity, sel)
	// At level 0, reload means start = capacity, remaining = capacity-1.
	x := p.Encode(0, 0)
	edges := p.Edges(x)
	wantTo := p.Encode(0, capacity-1)
	if len(edges) != 1 || edges[0].To != wantTo {
		t.Errorf("reload state should reset to capacity before paying cost, got %v, want edge to %d", edges, wantTo)
	}
}
