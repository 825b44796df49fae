// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package permute reconciles builder-internal state numbering with the
// numbering used by the original input file, via a per-state
// valuation string of the form "[s=<k>]" that some CMDP builders
// attach (mirroring storm-cmdp's state-permutation.cpp).
package permute

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// OriginalState extracts the integer k from a valuation string of the
// form "[s=k]".
func OriginalState(valuation string) (int, error) {
	const prefix = "[s="
	if !strings.HasPrefix(valuation, prefix) {
		return 0, fmt.Errorf("permute: valuation %q does not start with %q", valuation, prefix)
	}
	rest := valuation[len(prefix):]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		end = len(rest)
	}
	return strconv.Atoi(rest[:end])
}

// Undo reorders in (indexed by builder state) by each state's original
// index, as given by valuations[s] = "[s=<original index>]". If
// valuations is nil (no state valuations were attached), in is
// returned unchanged.
func Undo[T any](in []T, valuations []string) ([]T, error) {
	if valuations == nil {
		return in, nil
	}
	type pair struct {
		v   T
		orig int
	}
	pairs := make([]pair, len(in))
	for s, v := range in {
		orig, err := OriginalState(valuations[s])
		if err != nil {
			return nil, err
		}
		pairs[s] = pair{v: v, orig: orig}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].orig < pairs[j].orig })
	out := make([]T, len(in))
	for i, p := range pairs {
		out[i] = p.v
	}
	return out, nil
}
