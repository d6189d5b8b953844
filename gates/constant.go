// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	"strconv"

	sim "github.com/db47h/logicsim"
)

// constant drives a fixed value. It sends it once, when its scheduled generic
// event runs, and ignores all inputs.
type constant struct {
	net    sim.NetID
	v      sim.Vector4
	r      float64
	isReal bool
}

func (c *constant) Run(n *sim.Network) {
	if c.isReal {
		n.SendReal(c.net, c.r)
		return
	}
	n.SendVec4(c.net, c.v)
}

func (c *constant) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {}
func (c *constant) RecvReal(n *sim.Network, p sim.Ptr, v float64)     {}

func (c *constant) String() string {
	if c.isReal {
		return "Cr<" + strconv.FormatFloat(c.r, 'g', -1, 64) + ">"
	}
	return "C4<" + c.v.String() + ">"
}

// Ref is a reference to the output of a net, used as a functor input. It is
// either a label or a constant.
//
type Ref struct {
	label string
	cst   *constant
	isCst bool
}

// Label returns a reference to the net bound to the given label. The label
// may be defined after the reference is used.
//
func Label(s string) Ref { return Ref{label: s} }

// Const returns a reference to a constant vector, delivered at time 0.
//
func Const(v sim.Vector4) Ref {
	return Ref{isCst: true, cst: &constant{v: v}}
}

// ConstBits is like Const, with v given as a vector literal (see
// logicsim.ParseVector4). It panics if v is not a valid literal.
//
func ConstBits(v string) Ref { return Const(sim.MustVector4(v)) }

// ConstReal returns a reference to a constant real value, delivered at time
// 0.
//
func ConstReal(r float64) Ref {
	return Ref{isCst: true, cst: &constant{r: r, isReal: true}}
}

func (r Ref) String() string {
	if r.isCst {
		return r.cst.String()
	}
	return r.label
}
