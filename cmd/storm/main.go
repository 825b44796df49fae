// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command storm is the CLI driver: it parses a CMDP model file,
// computes MinInitCons, Safe and SafePR with a counter selector, and
// validates the selector, printing a report of the results.
package main

import (
	"log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
