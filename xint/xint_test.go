// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xint

import "testing"

func TestZeroValueIsInf(t *testing.T) {
	var x T
	if !x.Eq(Inf()) {
		t.Errorf("zero value of T should be +infinity")
	}
}

func TestOrder(t *testing.T) {
	if !Finite(3).Less(Finite(5)) {
		t.Errorf("3 should be < 5")
	}
	if !Inf().Greater(Finite(1000000)) {
		t.Errorf("infinity should be > any finite value")
	}
	if !NegInf().Less(Finite(-1000000)) {
		t.Errorf("-infinity should be < any finite value")
	}
	if Inf().Eq(NegInf()) {
		t.Errorf("+infinity should never equal -infinity")
	}
	if !Finite(4).LessEq(Finite(4)) || !Finite(4).GreaterEq(Finite(4)) {
		t.Errorf("<=/>= should hold reflexively")
	}
}

func TestAdd(t *testing.T) {
	cases := []struct {
		a, b, want T
	}{
		{Finite(2), Finite(3), Finite(5)},
		{Finite(2), Inf(), Inf()},
		{Inf(), Finite(2), Inf()},
		{Inf(), Inf(), Inf()},
		{Finite(0), Finite(7), Finite(7)},
	}
	for _, c := range cases {
		got, err := Add(c.a, c.b)
		if err != nil {
			t.Fatalf("Add(%v, %v): unexpected error %v", c.a, c.b, err)
		}
		if !got.Eq(c.want) {
			t.Errorf("Add(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestAddUndefined(t *testing.T) {
	if _, err := Add(Inf(), NegInf()); err != ErrUndefined {
		t.Errorf("Add(+inf, -inf) err = %v, want ErrUndefined", err)
	}
	if _, err := Add(NegInf(), Inf()); err != ErrUndefined {
		t.Errorf("Add(-inf, +inf) err = %v, want ErrUndefined", err)
	}
}

func TestAddCommutative(t *testing.T) {
	vals := []T{Finite(-3), Finite(0), Finite(7), Inf()}
	for _, a := range vals {
		for _, b := range vals {
			ab, err1 := Add(a, b)
			ba, err2 := Add(b, a)
			if (err1 == nil) != (err2 == nil) {
				t.Fatalf("Add(%v,%v) and Add(%v,%v) disagree on error", a, b, b, a)
			}
			if err1 == nil && !ab.Eq(ba) {
				t.Errorf("Add(%v,%v) = %v, Add(%v,%v) = %v, want equal", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestAddAssociative(t *testing.T) {
	a, b, c := Finite(2), Finite(-5), Finite(9)
	ab, _ := Add(a, b)
	left, err := Add(ab, c)
	if err != nil {
		t.Fatal(err)
	}
	bc, _ := Add(b, c)
	right, err := Add(a, bc)
	if err != nil {
		t.Fatal(err)
	}
	if !left.Eq(right) {
		t.Errorf("(a+b)+c = %v, a+(b+c) = %v, want equal", left, right)
	}
}

func TestValue(t *testing.T) {
	v, err := Finite(42).Value()
	if err != nil || v != 42 {
		t.Errorf("Value() = (%d, %v), want (42, nil)", v, err)
	}
	if _, err := Inf().Value(); err != ErrInfinite {
		t.Errorf("Value() on +infinity err = %v, want ErrInfinite", err)
	}
}

func TestNeg(t *testing.T) {
	if !Finite(5).Neg().Eq(Finite(-5)) {
		t.Errorf("-5 should negate to 5... er, 5 should negate to -5")
	}
	if !Inf().Neg().Eq(NegInf()) {
		t.Errorf("-(+infinity) should be -infinity")
	}
	if !NegInf().Neg().Eq(Inf()) {
		t.Errorf("-(-infinity) should be +infinity")
	}
}

func TestSign(t *testing.T) {
	if Finite(0).Sign() != 0 || Finite(-3).Sign() != -1 || Finite(3).Sign() != 1 {
		t.Errorf("wrong sign for finite values")
	}
	if Inf().Sign() != 1 || NegInf().Sign() != -1 {
		t.Errorf("wrong sign for infinities")
	}
}

func TestString(t *testing.T) {
	if Inf().String() != "infinity" {
		t.Errorf("+infinity should print as infinity")
	}
	if NegInf().String() != "-infinity" {
		t.Errorf("-infinity should print as -infinity")
	}
	if Finite(7).String() != "7" {
		t.Errorf("finite values should print as decimal")
	}
}

func TestMinMax(t *testing.T) {
	if !Min(Finite(3), Finite(5)).Eq(Finite(3)) {
		t.Errorf("Min(3,5) should be 3")
	}
	if !Max(Finite(3), Inf()).Eq(Inf()) {
		t.Errorf("Max(3,infinity) should be infinity")
	}
}
