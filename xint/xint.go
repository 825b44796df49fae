// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package xint implements the extended integers: the disjoint union of
// the ordinary integers with +infinity and -infinity.
//
// A zero value T is +infinity, so that accumulators which start out
// minimising over T converge from the top of the order.
package xint

import (
	"errors"
	"fmt"
)

// ErrUndefined is returned by Add when asked to add +infinity and
// -infinity, which has no mathematical meaning.
var ErrUndefined = errors.New("xint: (+infinity) + (-infinity) is undefined")

// ErrInfinite is returned by Value when called on an infinite T.
var ErrInfinite = errors.New("xint: no finite value for an infinite quantity")

// T is an extended integer: a finite int, or +/- infinity.
//
// The zero value is +Inf: kind 0 means +infinity, so a zeroed T (e.g.
// a freshly allocated []T, or a bare var declaration) starts at the
// top of the order without any constructor call.
type T struct {
	kind int8 // 0: +inf (zero value), 1: finite, -1: -inf
	v    int
}

// Finite returns the extended integer wrapping v.
func Finite(v int) T {
	return T{kind: 1, v: v}
}

// Inf returns +infinity.
func Inf() T {
	return T{kind: 0}
}

// NegInf returns -infinity.
func NegInf() T {
	return T{kind: -1}
}

// IsFinite reports whether x is a finite integer.
func (x T) IsFinite() bool {
	return x.kind == 1
}

// IsInfinite reports whether x is +infinity or -infinity.
func (x T) IsInfinite() bool {
	return x.kind != 1
}

// Sign returns -1, 0 or 1 according to whether x is negative, zero or
// positive.
func (x T) Sign() int {
	switch x.kind {
	case 0:
		return 1
	case -1:
		return -1
	}
	switch {
	case x.v > 0:
		return 1
	case x.v < 0:
		return -1
	default:
		return 0
	}
}

// Value returns the underlying int, failing with ErrInfinite if x is
// infinite. Callers should check IsFinite first if they want to avoid
// the error path.
func (x T) Value() (int, error) {
	if x.kind != 1 {
		return 0, ErrInfinite
	}
	return x.v, nil
}

// Neg returns -x. Negating an infinity flips its sign.
func (x T) Neg() T {
	switch x.kind {
	case 0:
		return NegInf()
	case -1:
		return Inf()
	}
	return Finite(-x.v)
}

// Add returns x+y. It fails with ErrUndefined only for (+Inf)+(-Inf) or
// (-Inf)+(+Inf); every other combination is defined, with an infinite
// operand absorbing a finite one.
func Add(x, y T) (T, error) {
	if x.kind == 1 && y.kind == 1 {
		return Finite(x.v + y.v), nil
	}
	if x.kind != 1 && y.kind != 1 && x.kind != y.kind {
		return T{}, ErrUndefined
	}
	if x.kind != 1 {
		return x, nil
	}
	return y, nil
}

// MustAdd is like Add but panics on ErrUndefined. The core never
// constructs a -Inf value, so callers that can prove that invariant
// (solve, product) use MustAdd to avoid threading an error return
// through every arithmetic step.
func MustAdd(x, y T) T {
	s, err := Add(x, y)
	if err != nil {
		panic(err)
	}
	return s
}

// Less reports whether x < y.
func (x T) Less(y T) bool {
	if x.kind == 1 && y.kind == 1 {
		return x.v < y.v
	}
	if x.kind == 0 || y.kind == -1 {
		return false
	}
	return true
}

// Greater reports whether x > y.
func (x T) Greater(y T) bool {
	return y.Less(x)
}

// LessEq reports whether x <= y.
func (x T) LessEq(y T) bool {
	return !x.Greater(y)
}

// GreaterEq reports whether x >= y.
func (x T) GreaterEq(y T) bool {
	return !x.Less(y)
}

// Eq reports structural equality: two infinities of the same sign are
// equal, an infinity is never equal to a finite value.
func (x T) Eq(y T) bool {
	if x.kind == 1 {
		return y.kind == 1 && x.v == y.v
	}
	return x.kind == y.kind
}

// Min returns the smaller of x and y, x on a tie.
func Min(x, y T) T {
	if y.Less(x) {
		return y
	}
	return x
}

// Max returns the larger of x and y, x on a tie.
func Max(x, y T) T {
	if y.Greater(x) {
		return y
	}
	return x
}

// String renders x the way the reference report does: "infinity" and
// "-infinity" for the two infinite values, the decimal value otherwise.
func (x T) String() string {
	switch x.kind {
	case 0:
		return "infinity"
	case -1:
		return "-infinity"
	}
	return fmt.Sprintf("%d", x.v)
}
