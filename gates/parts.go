// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	sim "github.com/db47h/logicsim"
)

// Composite parts built from primitive functors. Internal nets are labeled
// after the first output label, with a dotted suffix.

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) strong(label string, k Kind, width int, in ...Ref) error {
	return b.Add(label, k, width, nil, sim.Strong, sim.Strong, in...)
}

// HalfAdder adds a half adder to b.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = a xor b
//	          c = a and b
//
// Inputs are bitwise vectors of the given width.
//
func HalfAdder(b *Builder, s, c string, width int, x, y Ref) error {
	return firstErr(
		b.strong(s, KindXor, width, x, y),
		b.strong(c, KindAnd, width, x, y),
	)
}

// FullAdder adds a full adder to b.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(b *Builder, s, cout string, width int, x, y, cin Ref) error {
	return firstErr(
		HalfAdder(b, s+".s0", s+".c0", width, x, y),
		HalfAdder(b, s, s+".c1", width, Label(s+".s0"), cin),
		b.strong(cout, KindOr, width, Label(s+".c0"), Label(s+".c1")),
	)
}

// Mux adds a 2 to 1 multiplexer made of primitive gates to b.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: out = a and not sel or b and sel
//
// Unlike MUXX and MUXZ, an undefined select yields X unless both a and b
// are 0.
//
func Mux(b *Builder, out string, x, y, sel Ref) error {
	return firstErr(
		b.strong(out+".nsel", KindNot, 1, sel),
		b.strong(out+".w0", KindAnd, 1, x, Label(out+".nsel")),
		b.strong(out+".w1", KindAnd, 1, y, sel),
		b.strong(out, KindOr, 1, Label(out+".w0"), Label(out+".w1")),
	)
}
