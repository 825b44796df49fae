// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package validate independently checks a counter selector by
// building the product MDP it induces and driving a reachability
// oracle over it.
//
// The oracle itself is an external collaborator: a generic
// probabilistic model checker is used only as a black-box reachability
// engine. Validate depends only on the narrow Oracle contract below;
// GraphOracle supplies a reference graph-only implementation.
package validate

import (
	"fmt"

	"github.com/arthuralsett/storm/product"
	"github.com/arthuralsett/storm/xint"
)

// Oracle is the narrow contract a reachability engine must satisfy
// for Validate to use it.
type Oracle interface {
	// ReachProb returns, for every product state x, the probability
	// of eventually reaching a target state starting from x.
	ReachProb(p *product.T) ([]float64, error)

	// AvoidSink returns the set of product states from which the sink
	// is reached with probability 0 (a purely qualitative,
	// graph-only predecessor-closure computation).
	AvoidSink(p *product.T) ([]bool, error)
}

// ErrOracleSurprise wraps an oracle result of unexpected shape: a
// precondition violation of the oracle, not a recoverable condition.
type ErrOracleSurprise struct {
	Reason string
}

func (e *ErrOracleSurprise) Error() string {
	return fmt.Sprintf("validate: oracle returned an unexpected result: %s", e.Reason)
}

// Validate runs oracle over p, a product MDP already built under a
// counter selector (see product.Build), and checks, for every original
// state s with safePR[s] <= capacity, that both the
// target-guarantee and the survival-guarantee hold at (s, safePR[s]).
// It returns true iff they hold for every qualifying s.
func Validate(oracle Oracle, p *product.T, safePR []xint.T, capacity int) (bool, error) {
	reach, err := oracle.ReachProb(p)
	if err != nil {
		return false, fmt.Errorf("validate: ReachProb: %w", err)
	}
	avoid, err := oracle.AvoidSink(p)
	if err != nil {
		return false, fmt.Errorf("validate: AvoidSink: %w", err)
	}
	n := len(safePR)
	if len(reach) != p.NumStates() || len(avoid) != p.NumStates() {
		return false, &ErrOracleSurprise{Reason: fmt.Sprintf(
			"expected %d product states, got %d reach / %d avoid", p.NumStates(), len(reach), len(avoid))}
	}

	targetOK := true
	survivalOK := true
	for s := 0; s < n; s++ {
		if safePR[s].IsInfinite() {
			continue
		}
		lvl, err := safePR[s].Value()
		if err != nil {
			return false, err
		}
		if lvl > capacity {
			continue
		}
		x := p.Encode(s, lvl)
		if !(reach[x] > 0) {
			targetOK = false
		}
		if !avoid[x] {
			survivalOK = false
		}
	}
	return targetOK && survivalOK, nil
}
