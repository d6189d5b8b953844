// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates_test

import (
	"testing"

	sim "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/gates"
	"github.com/db47h/logicsim/simtest"
)

func TestHalfAdder(t *testing.T) {
	sum := func(b *gates.Builder, out string, in []gates.Ref) error {
		return gates.HalfAdder(b, out, out+".c", 1, in[0], in[1])
	}
	carry := func(b *gates.Builder, out string, in []gates.Ref) error {
		return gates.HalfAdder(b, out+".s", out, 1, in[0], in[1])
	}
	simtest.CompareFunc(t, 2, sum, func(in []sim.Bit4) sim.Bit4 { return in[0].Xor(in[1]) })
	simtest.CompareFunc(t, 2, carry, func(in []sim.Bit4) sim.Bit4 { return in[0].And(in[1]) })
}

func TestFullAdder(t *testing.T) {
	sum := func(b *gates.Builder, out string, in []gates.Ref) error {
		return gates.FullAdder(b, out, out+".cout", 1, in[0], in[1], in[2])
	}
	carry := func(b *gates.Builder, out string, in []gates.Ref) error {
		return gates.FullAdder(b, out+".s", out, 1, in[0], in[1], in[2])
	}
	simtest.CompareFunc(t, 3, sum, func(in []sim.Bit4) sim.Bit4 {
		return in[0].Xor(in[1]).Xor(in[2])
	})
	simtest.CompareFunc(t, 3, carry, func(in []sim.Bit4) sim.Bit4 {
		a, b, c := in[0], in[1], in[2]
		return a.And(b).Or(c.And(a.Xor(b)))
	})

	wide := func(b *gates.Builder, out string, in []gates.Ref) error {
		return gates.FullAdder(b, out+".s", out, 4, in[0], in[1], in[2])
	}
	p, err := simtest.Eval(wide, sim.MustVector4("1100"), sim.MustVector4("1010"), sim.MustVector4("0110"))
	if err != nil {
		t.Fatal(err)
	}
	if v := p.Value(0); v != "1110" {
		t.Fatalf("expected 1110, got %s", v)
	}
}

func TestMux(t *testing.T) {
	mux := func(b *gates.Builder, out string, in []gates.Ref) error {
		return gates.Mux(b, out, in[0], in[1], in[2])
	}
	simtest.CompareFunc(t, 3, mux, func(in []sim.Bit4) sim.Bit4 {
		a, b, sel := in[0], in[1], in[2]
		return a.And(sel.Not()).Or(b.And(sel))
	})
}
