// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	sim "github.com/db47h/logicsim"
)

// And is a width aware AND gate with up to 4 inputs.
//
// Inputs are compared with the previous value of their port and ignored when
// unchanged. Changes trigger a recomputation through a zero delay generic
// event, so that all input changes of a time step result in a single output
// event.
//
type And struct {
	in      [sim.MaxPorts]sim.Vector4
	net     sim.NetID
	pending bool
}

// NewAnd returns an AND functor of the given width. Ports past arity are tied
// to 1.
//
func NewAnd(width, arity int) *And {
	a := new(And)
	for i := range a.in {
		if i < arity {
			a.in[i] = sim.NewVector4(width)
		} else {
			a.in[i] = sim.NewVector4Fill(width, sim.Bit1)
		}
	}
	return a
}

// RecvVec4 implements logicsim.Functor.
//
func (a *And) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {
	if a.in[p.Port].Eeq(v) {
		return
	}
	a.in[p.Port] = v
	a.net = p.Net
	if !a.pending {
		a.pending = true
		n.ScheduleGeneric(a, 0)
	}
}

// RecvReal implements logicsim.Functor. Reals are ignored.
//
func (a *And) RecvReal(n *sim.Network, p sim.Ptr, v float64) {}

// Run implements logicsim.Runner.
//
func (a *And) Run(n *sim.Network) {
	a.pending = false
	res := a.in[0].Copy()
	for idx := 0; idx < res.Size(); idx++ {
		b := res.Value(idx)
		for pdx := 1; pdx < sim.MaxPorts; pdx++ {
			if a.in[pdx].Size() <= idx {
				b = sim.BitX
				break
			}
			b = b.And(a.in[pdx].Value(idx))
		}
		res.SetBit(idx, b)
	}
	n.SendVec4(a.net, res)
}

func (a *And) String() string { return "AND" }
