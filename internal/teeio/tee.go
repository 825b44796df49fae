// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package teeio provides a dual-sink writer for mirroring every report
// line to both stdout and a report file. io.MultiWriter already does
// the underlying work; this is a thin named wrapper so call sites read
// as teeio.New(stdout, file) rather than a bare io.MultiWriter call.
package teeio

import "io"

// Writer tees every write to all of its underlying writers.
type Writer struct {
	io.Writer
}

// New returns a Writer that copies every write to each of ws, in
// order, failing on the first error (matching io.MultiWriter).
func New(ws ...io.Writer) *Writer {
	return &Writer{Writer: io.MultiWriter(ws...)}
}
