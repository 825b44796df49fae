// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arthuralsett/storm/mdp"
)

// modelDoc is the YAML shape cmd/storm reads: an explicit sparse MDP
// with a cost reward model and reload/target labels. A full PRISM/JANI
// front end is out of scope.
type modelDoc struct {
	Capacity *int   `yaml:"capacity"`
	States   int    `yaml:"states"`
	Actions  int    `yaml:"actions"`
	Reload   []bool `yaml:"reload"`
	Target   []bool `yaml:"target"`

	Transitions []struct {
		State  int  `yaml:"state"`
		Action int  `yaml:"action"`
		Cost   int  `yaml:"cost"`
		Succ   []struct {
			To   int     `yaml:"to"`
			Prob float64 `yaml:"prob"`
		} `yaml:"succ"`
	} `yaml:"transitions"`
}

// loadModel reads and validates a YAML model file, returning the
// built CMDP, its capacity and target labelling.
//
// A missing or non-integer capacity is fatal before any solver runs.
func loadModel(path string) (*mdp.Sparse, int, []bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("reading model file: %w", err)
	}
	var doc modelDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, 0, nil, fmt.Errorf("parsing model file: %w", err)
	}
	if doc.Capacity == nil {
		return nil, 0, nil, fmt.Errorf("model file is missing the required `capacity` constant")
	}
	capacity := *doc.Capacity
	if capacity < 0 {
		return nil, 0, nil, fmt.Errorf("capacity must be non-negative, got %d", capacity)
	}

	m := mdp.NewSparse(doc.States, doc.Actions)
	for s, v := range doc.Reload {
		m.SetReload(s, v)
	}
	for s, v := range doc.Target {
		m.SetTarget(s, v)
	}
	for _, tr := range doc.Transitions {
		succs := make([]mdp.Succ, len(tr.Succ))
		for i, sc := range tr.Succ {
			succs[i] = mdp.Succ{To: sc.To, Prob: sc.Prob}
		}
		m.SetTransition(tr.State, tr.Action, succs)
		m.SetCost(tr.State, tr.Action, tr.Cost)
	}

	return m, capacity, doc.Target, nil
}
