// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package simtest

import (
	sim "github.com/db47h/logicsim"
)

// Source is a stimulus functor. It has no inputs; values are pushed to its
// fan-out with Drive and DriveReal.
//
// A Source must be bound to its net with Bind before use.
//
type Source struct {
	net sim.NetID
}

// Bind sets the net of the source.
//
func (s *Source) Bind(id sim.NetID) { s.net = id }

// Net returns the net the source drives.
//
func (s *Source) Net() sim.NetID { return s.net }

// RecvVec4 implements logicsim.Functor.
func (s *Source) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {}

// RecvReal implements logicsim.Functor.
func (s *Source) RecvReal(n *sim.Network, p sim.Ptr, v float64) {}

func (s *Source) String() string { return "SOURCE" }

type drive struct {
	net  sim.NetID
	v4   sim.Vector4
	r    float64
	real bool
}

func (d *drive) Run(n *sim.Network) {
	if d.real {
		n.SendReal(d.net, d.r)
		return
	}
	n.SendVec4(d.net, d.v4)
}

// Drive schedules v to be sent on the source's net after delay.
//
func (s *Source) Drive(n *sim.Network, delay sim.Time, v sim.Vector4) {
	n.ScheduleGeneric(&drive{net: s.net, v4: v}, delay)
}

// DriveBits is like Drive with v given as a vector literal.
//
func (s *Source) DriveBits(n *sim.Network, delay sim.Time, v string) {
	s.Drive(n, delay, sim.MustVector4(v))
}

// DriveReal schedules r to be sent on the source's net after delay.
//
func (s *Source) DriveReal(n *sim.Network, delay sim.Time, r float64) {
	n.ScheduleGeneric(&drive{net: s.net, r: r, real: true}, delay)
}
