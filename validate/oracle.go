// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package validate

import "github.com/arthuralsett/storm/product"

// GraphOracle is a reference Oracle good enough to make cmd/storm
// runnable without wiring an external probabilistic model checker. It
// computes AvoidSink as a graph-only predecessor closure and
// approximates ReachProb with value iteration, which converges to the
// exact least fixed point for the finite, absorbing product MDPs this
// module builds.
//
// A production deployment should swap this for a binding to a real
// probabilistic model checker; GraphOracle trades iteration count for
// the dependency that would require.
type GraphOracle struct {
	// Iters bounds the number of value-iteration sweeps for ReachProb.
	// Zero selects a default proportional to the number of states.
	Iters int
}

// AvoidSink computes, via backward reachability from the sink, the
// set of states that can reach it; its complement is exactly the set
// from which the sink is reached with probability 0.
func (o *GraphOracle) AvoidSink(p *product.T) ([]bool, error) {
	n := p.NumStates()
	pred := make([][]int, n)
	for x := 0; x < n; x++ {
		for _, e := range p.Edges(x) {
			pred[e.To] = append(pred[e.To], x)
		}
	}
	canReachSink := make([]bool, n)
	queue := []int{p.Sink()}
	canReachSink[p.Sink()] = true
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, y := range pred[x] {
			if !canReachSink[y] {
				canReachSink[y] = true
				queue = append(queue, y)
			}
		}
	}
	avoid := make([]bool, n)
	for x := 0; x < n; x++ {
		avoid[x] = !canReachSink[x]
	}
	return avoid, nil
}

// ReachProb runs value iteration: p_0(x) = 1 if x is target else 0;
// p_{k+1}(x) = 1 if x is target, else the expectation of p_k over x's
// successors. The sequence is monotone non-decreasing and bounded by
// 1, so it converges; Iters sweeps is an adequate approximation for
// the absorbing chains this module produces (every state reaches
// either a target or the sink-or-a-recurrent-class with probability
// 1 within a bounded number of steps).
func (o *GraphOracle) ReachProb(p *product.T) ([]float64, error) {
	n := p.NumStates()
	iters := o.Iters
	if iters <= 0 {
		iters = 4*n + 16
	}
	prob := make([]float64, n)
	for x := 0; x < n; x++ {
		if p.Target(x) {
			prob[x] = 1
		}
	}
	next := make([]float64, n)
	for i := 0; i < iters; i++ {
		changed := false
		for x := 0; x < n; x++ {
			if p.Target(x) {
				next[x] = 1
				continue
			}
			var e float64
			for _, edge := range p.Edges(x) {
				e += edge.Prob * prob[edge.To]
			}
			if e != prob[x] {
				changed = true
			}
			next[x] = e
		}
		prob, next = next, prob
		if !changed {
			break
		}
	}
	return prob, nil
}
