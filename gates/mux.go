// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	"math"

	sim "github.com/db47h/logicsim"
)

// select input values
const (
	selA = iota
	selB
	selX
)

// decodeSelect checks that a select input is 1 bit wide and decodes it.
func decodeSelect(p sim.Ptr, v sim.Vector4, name string) int {
	if v.Size() != 1 {
		sim.Violation(p, "%s select input must be 1 bit wide, got %d bits", name, v.Size())
	}
	switch v.Value(0) {
	case sim.Bit0:
		return selA
	case sim.Bit1:
		return selB
	}
	return selX
}

// Muxz is a 2 to 1 vector multiplexer.
//
//	Inputs: a (port 0), b (port 1), sel (port 2, 1 bit)
//	Function: sel == 0: out = a
//	          sel == 1: out = b
//	          otherwise: out[i] = a[i] if a[i] == b[i], X otherwise
//
// Inputs are latched and may arrive in any order. A new a or b identical to
// the latched one is ignored.
//
type Muxz struct {
	a, b sim.Vector4
	sel  int
}

// NewMuxz returns a multiplexer of the given width, with both data inputs set
// to X and an undefined select.
//
func NewMuxz(width int) *Muxz {
	return &Muxz{
		a:   sim.NewVector4(width),
		b:   sim.NewVector4(width),
		sel: selX,
	}
}

// RecvVec4 implements logicsim.Functor.
//
func (m *Muxz) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {
	switch p.Port {
	case 0:
		if m.a.Eeq(v) {
			return
		}
		m.a = v
	case 1:
		if m.b.Eeq(v) {
			return
		}
		m.b = v
	case 2:
		m.sel = decodeSelect(p, v, "MUXZ")
	default:
		return
	}

	switch m.sel {
	case selA:
		n.SendVec4(p.Net, m.a)
	case selB:
		n.SendVec4(p.Net, m.b)
	default:
		n.SendVec4(p.Net, MergeX(m.a, m.b))
	}
}

// RecvReal implements logicsim.Functor. Reals are ignored.
//
func (m *Muxz) RecvReal(n *sim.Network, p sim.Ptr, v float64) {}

func (m *Muxz) String() string { return "MUXZ" }

// MergeX returns a vector as wide as the widest of a and b, where bits that
// match in a and b are kept and all others are X.
//
func MergeX(a, b sim.Vector4) sim.Vector4 {
	lo, hi := a.Size(), b.Size()
	if lo > hi {
		lo, hi = hi, lo
	}
	res := sim.NewVector4(hi)
	for i := 0; i < lo; i++ {
		if v := a.Value(i); v == b.Value(i) {
			res.SetBit(i, v)
		}
	}
	return res
}

// Muxr is a 2 to 1 real valued multiplexer.
//
//	Inputs: a (port 0, real), b (port 1, real), sel (port 2, 1 bit vector)
//	Function: sel == 0: out = a
//	          sel == 1: out = b
//	          otherwise: out = a if a and b are bit for bit identical, 0.0 otherwise
//
// A new a or b identical to the latched one is ignored.
//
// TODO: an undefined select with a != b should output NaN rather than 0.0.
//
type Muxr struct {
	a, b float64
	sel  int
}

// NewMuxr returns a real multiplexer with both inputs at 0.0 and an undefined
// select.
//
func NewMuxr() *Muxr {
	return &Muxr{sel: selX}
}

// RecvVec4 implements logicsim.Functor. Only the select input takes vectors.
//
func (m *Muxr) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {
	if p.Port != 2 {
		return
	}
	m.sel = decodeSelect(p, v, "MUXR")
	n.SendReal(p.Net, m.output())
}

// RecvReal implements logicsim.Functor.
//
func (m *Muxr) RecvReal(n *sim.Network, p sim.Ptr, v float64) {
	switch p.Port {
	case 0:
		if sameReal(m.a, v) {
			return
		}
		m.a = v
		if m.sel == selB {
			return
		}
	case 1:
		if sameReal(m.b, v) {
			return
		}
		m.b = v
		if m.sel == selA {
			return
		}
	default:
		sim.Violation(p, "MUXR has no real input on port %d", p.Port)
	}
	n.SendReal(p.Net, m.output())
}

func (m *Muxr) output() float64 {
	switch m.sel {
	case selA:
		return m.a
	case selB:
		return m.b
	}
	if sameReal(m.a, m.b) {
		return m.a
	}
	return 0.0
}

func sameReal(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

func (m *Muxr) String() string { return "MUXR" }
