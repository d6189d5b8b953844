// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	sim "github.com/db47h/logicsim"
)

// Mos is a transistor switch: nmos, pmos, rnmos or rpmos.
//
// Port 0 is the data input, port 1 the gate control. An nmos conducts when
// the control is 1, a pmos when it is 0. A conducting switch passes the data
// bit with its strength degraded: supply drops to strong, and for resistive
// devices every level drops further. A blocked switch outputs Z. An undefined
// control yields L, H or X depending on the data bit.
//
type Mos struct {
	nmos      bool
	resistive bool
	bit       sim.Vector8
	en        sim.Vector4
}

// NewMos returns a transistor switch.
//
func NewMos(nmos, resistive bool) *Mos {
	return &Mos{nmos: nmos, resistive: resistive}
}

// RecvVec4 implements logicsim.Functor. A plain data vector is driven with
// strong strength.
//
func (m *Mos) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {
	if p.Port == 0 {
		m.RecvVec8(n, p, sim.Vector8From(v, sim.Strong, sim.Strong))
		return
	}
	if p.Port != 1 {
		return
	}
	m.en = v
	n.SendVec8(p.Net, m.output())
}

// RecvVec8 implements logicsim.Vec8Receiver.
//
func (m *Mos) RecvVec8(n *sim.Network, p sim.Ptr, v sim.Vector8) {
	switch p.Port {
	case 0:
		m.bit = v
	case 1:
		m.en = v.Reduce()
	default:
		return
	}
	n.SendVec8(p.Net, m.output())
}

// RecvReal implements logicsim.Functor. Reals are ignored.
//
func (m *Mos) RecvReal(n *sim.Network, p sim.Ptr, v float64) {}

func (m *Mos) output() sim.Vector8 {
	on, off := sim.Bit1, sim.Bit0
	if !m.nmos {
		on, off = off, on
	}
	reduce := mosStrength
	if m.resistive {
		reduce = rmosStrength
	}
	out := make(sim.Vector8, len(m.bit))
	for i, d := range m.bit {
		switch bitOf(m.en, i) {
		case on:
		case off:
			d = sim.ScalarZ
		default:
			switch d.Value() {
			case sim.Bit0:
				d = sim.Low(d.Strength0())
			case sim.Bit1:
				d = sim.High(d.Strength1())
			}
		}
		out[i] = d.Map(reduce)
	}
	return out
}

func mosStrength(s sim.Strength) sim.Strength {
	if s == sim.Supply {
		return sim.Strong
	}
	return s
}

var rmosTable = [...]sim.Strength{
	sim.HiZ:    sim.HiZ,
	sim.Small:  sim.Small,
	sim.Medium: sim.Small,
	sim.Weak:   sim.Medium,
	sim.Large:  sim.Medium,
	sim.Pull:   sim.Weak,
	sim.Strong: sim.Pull,
	sim.Supply: sim.Pull,
}

func rmosStrength(s sim.Strength) sim.Strength {
	return rmosTable[s&7]
}

func (m *Mos) String() string {
	s := "PMOS"
	if m.nmos {
		s = "NMOS"
	}
	if m.resistive {
		s = "R" + s
	}
	return s
}
