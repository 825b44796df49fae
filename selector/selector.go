// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package selector implements the counter selector: a per-state,
// per-resource-level lookup table of actions, plus the fixed-width
// table rendering the reference report uses.
package selector

import (
	"fmt"
	"strconv"
	"strings"
)

// Undefined marks a selection-rule slot with no action recorded ("⊥").
const Undefined = -1

// Rule is one state's selection rule: a dense array of action slots,
// one per resource level 0..capacity.
type Rule []int

// T is a counter selector: one Rule per state.
type T []Rule

// New allocates a counter selector for n states and a capacity of cap,
// with every slot Undefined.
func New(n, cap int) T {
	sel := make(T, n)
	for s := range sel {
		r := make(Rule, cap+1)
		for l := range r {
			r[l] = Undefined
		}
		sel[s] = r
	}
	return sel
}

// Set records that action a should be taken at state s when the
// resource level first reaches l.
func (t T) Set(s, l, a int) {
	t[s][l] = a
}

// Lookup returns the action the selector prescribes for state s at
// resource level l: the value stored at the greatest l' <= l with a
// defined slot, or the canonical default action 0 if no such l'
// exists.
func (t T) Lookup(s, l int) int {
	rule := t[s]
	for ll := l; ll >= 0; ll-- {
		if rule[ll] != Undefined {
			return rule[ll]
		}
	}
	return 0
}

// String renders t as a table: rows are states, columns are resource
// levels 0..capacity, cells hold either the action or "-", matching
// storm-cmdp's printCounterSelector.
func (t T) String() string {
	var b strings.Builder
	if len(t) == 0 {
		return ""
	}
	cap := len(t[0]) - 1
	stateWidth := len(strconv.Itoa(len(t) - 1))
	otherWidth := len(strconv.Itoa(cap))
	for _, r := range t {
		for _, a := range r {
			if a == Undefined {
				continue
			}
			if w := len(strconv.Itoa(a)); w > otherWidth {
				otherWidth = w
			}
		}
	}
	fill := strings.Repeat(" ", stateWidth)
	fmt.Fprintf(&b, "%s resource levels:\n", fill)
	b.WriteString(fill)
	for l := 0; l <= cap; l++ {
		fmt.Fprintf(&b, " %*d", otherWidth, l)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%*s actions:\n", stateWidth, "s")
	for s, r := range t {
		fmt.Fprintf(&b, "%*d", stateWidth, s)
		for _, a := range r {
			if a == Undefined {
				fmt.Fprintf(&b, " %*s", otherWidth, "-")
			} else {
				fmt.Fprintf(&b, " %*d", otherWidth, a)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
