// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	sim "github.com/db47h/logicsim"
)

// Bufif is a tri-state driver: bufif0, bufif1, notif0 or notif1.
//
// Port 0 is the data input, port 1 the enable input. When enabled, the output
// is the data bit (inverted for notif), driven with the functor strengths.
// When disabled it is Z. An undefined enable yields L, H or X depending on the
// data bit.
//
// A 1 bit enable applies to all data bits.
//
type Bufif struct {
	name   string
	invEn  bool
	invOut bool
	s0, s1 sim.Strength
	bit    sim.Vector4
	en     sim.Vector4
}

// NewBufif returns a tri-state driver. invEn selects an active low enable
// (bufif0, notif0), invOut an inverted output (notif0, notif1).
//
func NewBufif(invEn, invOut bool, s0, s1 sim.Strength) *Bufif {
	name := "BUFIF"
	if invOut {
		name = "NOTIF"
	}
	if invEn {
		name += "0"
	} else {
		name += "1"
	}
	return &Bufif{name: name, invEn: invEn, invOut: invOut, s0: s0, s1: s1}
}

// RecvVec4 implements logicsim.Functor.
//
func (f *Bufif) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {
	switch p.Port {
	case 0:
		f.bit = v
	case 1:
		f.en = v
	default:
		return
	}
	n.SendVec8(p.Net, f.output())
}

// RecvReal implements logicsim.Functor. Reals are ignored.
//
func (f *Bufif) RecvReal(n *sim.Network, p sim.Ptr, v float64) {}

func (f *Bufif) output() sim.Vector8 {
	out := make(sim.Vector8, f.bit.Size())
	for i := range out {
		d := f.bit.Value(i)
		if f.invOut {
			d = d.Not()
		} else if d == sim.BitZ {
			d = sim.BitX
		}
		e := bitOf(f.en, i)
		if f.invEn {
			e = e.Not()
		}
		switch e {
		case sim.Bit1:
			out[i] = sim.NewScalar(d, f.s0, f.s1)
		case sim.Bit0:
			out[i] = sim.ScalarZ
		default:
			switch d {
			case sim.Bit0:
				out[i] = sim.Low(f.s0)
			case sim.Bit1:
				out[i] = sim.High(f.s1)
			default:
				out[i] = sim.NewScalar(sim.BitX, f.s0, f.s1)
			}
		}
	}
	return out
}

func (f *Bufif) String() string { return f.name }

// bitOf returns bit i of a control vector. A 1 bit vector applies to all bit
// positions, missing bits read as X.
func bitOf(v sim.Vector4, i int) sim.Bit4 {
	switch {
	case v.Size() == 1:
		return v.Value(0)
	case i < v.Size():
		return v.Value(i)
	}
	return sim.BitX
}
