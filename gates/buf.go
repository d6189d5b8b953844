// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	sim "github.com/db47h/logicsim"
)

// Buf is a logic buffer. It forwards port 0 with every Z bit turned into X.
//
type Buf struct{}

// RecvVec4 implements logicsim.Functor.
//
func (Buf) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {
	if p.Port != 0 {
		return
	}
	if v.HasXZ() {
		v = v.Copy()
		v.ChangeZ2X()
	}
	n.SendVec4(p.Net, v)
}

// RecvReal implements logicsim.Functor. Reals are ignored.
//
func (Buf) RecvReal(n *sim.Network, p sim.Ptr, v float64) {}

func (Buf) String() string { return "BUF" }

// Bufz forwards whatever it receives on port 0 unchanged: vectors, strength
// vectors and reals.
//
type Bufz struct{}

// RecvVec4 implements logicsim.Functor.
//
func (Bufz) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {
	if p.Port != 0 {
		return
	}
	n.SendVec4(p.Net, v)
}

// RecvVec8 implements logicsim.Vec8Receiver.
//
func (Bufz) RecvVec8(n *sim.Network, p sim.Ptr, v sim.Vector8) {
	if p.Port != 0 {
		return
	}
	n.SendVec8(p.Net, v)
}

// RecvReal implements logicsim.Functor.
//
func (Bufz) RecvReal(n *sim.Network, p sim.Ptr, v float64) {
	if p.Port != 0 {
		return
	}
	n.SendReal(p.Net, v)
}

func (Bufz) String() string { return "BUFZ" }
