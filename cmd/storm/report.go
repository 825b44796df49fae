// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/arthuralsett/storm/selector"
	"github.com/arthuralsett/storm/xint"
)

// showResult prints name, the elements of vec space-separated, a
// human-readable duration and the duration in nanoseconds.
func showResult(w io.Writer, name string, vec []xint.T, dur time.Duration) {
	fmt.Fprintln(w, name)
	for i, v := range vec {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, v.String())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, dur)
	fmt.Fprintln(w, dur.Nanoseconds())
}

// showSelector prints the counter selector table followed by the
// validator verdict line.
func showSelector(w io.Writer, sel selector.T, valid bool) {
	fmt.Fprint(w, sel.String())
	fmt.Fprintf(w, "Counter selector satisfies requirements: %t\n", valid)
}
