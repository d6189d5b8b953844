// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"math"
	"strconv"
)

// Delay is a rise/fall/decay delay specification.
//
type Delay struct {
	Rise  Time // transition to 1
	Fall  Time // transition to 0
	Decay Time // transition to Z
}

// NewDelay returns a delay with the same value for all transitions.
//
func NewDelay(d Time) *Delay {
	return &Delay{Rise: d, Fall: d, Decay: d}
}

// Min returns the smallest of the three delays.
//
func (d *Delay) Min() Time {
	m := d.Rise
	if d.Fall < m {
		m = d.Fall
	}
	if d.Decay < m {
		m = d.Decay
	}
	return m
}

// Get returns the delay of a transition from one value to another. A
// transition to X uses the smallest delay.
//
func (d *Delay) Get(from, to Bit4) Time {
	if from == to {
		return 0
	}
	switch to {
	case Bit0:
		return d.Fall
	case Bit1:
		return d.Rise
	case BitZ:
		return d.Decay
	}
	return d.Min()
}

// vector returns the delay for a vector change: the smallest delay of all
// changed bits. Bits missing from the old vector are read as X.
func (d *Delay) vector(from, to Vector4) Time {
	var m Time
	first := true
	for i := 0; i < to.Size(); i++ {
		old := BitX
		if i < from.Size() {
			old = from.Value(i)
		}
		nv := to.Value(i)
		if old == nv {
			continue
		}
		if t := d.Get(old, nv); first || t < m {
			m, first = t, false
		}
	}
	return m
}

func (d *Delay) String() string {
	return "(" + strconv.FormatUint(uint64(d.Rise), 10) + "," +
		strconv.FormatUint(uint64(d.Fall), 10) + "," +
		strconv.FormatUint(uint64(d.Decay), 10) + ")"
}

// DelayFunctor re-emits what it receives on port 0 after a delay chosen by
// the kind of transition. It is inertial: a value superseded before its delay
// elapsed is never emitted.
//
// The delay functor sits on its own net, behind the net of the functor it
// delays. It handles Vector4, Vector8 and real values.
//
type DelayFunctor struct {
	d       Delay
	gen     uint64
	pending *delayed

	out4 Vector4
	out8 Vector8
	outR float64
	init bool
}

// NewDelayFunctor returns a delay functor for the given delays.
//
func NewDelayFunctor(d Delay) *DelayFunctor {
	return &DelayFunctor{d: d, outR: math.NaN()}
}

// Delay returns the delay specification of f.
func (f *DelayFunctor) Delay() Delay { return f.d }

type delayed struct {
	f    *DelayFunctor
	gen  uint64
	from NetID
	kind eventKind
	v4   Vector4
	v8   Vector8
	r    float64
}

func (e *delayed) Run(n *Network) {
	if e.gen != e.f.gen {
		return
	}
	e.f.pending = nil
	e.f.emit(n, e.from, e.kind, e.v4, e.v8, e.r)
}

func (e *delayed) same(k eventKind, v4 Vector4, v8 Vector8, r float64) bool {
	if e == nil || e.kind != k {
		return false
	}
	switch k {
	case evVec4:
		return e.v4.Eeq(v4)
	case evVec8:
		return e.v8.Eeq(v8)
	}
	return math.Float64bits(e.r) == math.Float64bits(r)
}

func (f *DelayFunctor) emit(n *Network, from NetID, k eventKind, v4 Vector4, v8 Vector8, r float64) {
	switch k {
	case evVec4:
		f.out4 = v4
		n.SendVec4(from, v4)
	case evVec8:
		f.out8 = v8
		f.out4 = v8.Reduce()
		n.SendVec8(from, v8)
	case evReal:
		f.outR = r
		n.SendReal(from, r)
	}
}

// recv handles a new value of kind k; unchanged tells if it matches the
// current output.
func (f *DelayFunctor) recv(n *Network, p Ptr, d Time, unchanged bool, k eventKind, v4 Vector4, v8 Vector8, r float64) {
	if f.pending.same(k, v4, v8, r) {
		return
	}
	// cancel whatever is pending
	f.gen++
	f.pending = nil
	if unchanged {
		return
	}
	if d == 0 {
		f.emit(n, p.Net, k, v4, v8, r)
		return
	}
	f.pending = &delayed{f: f, gen: f.gen, from: p.Net, kind: k, v4: v4, v8: v8, r: r}
	n.ScheduleGeneric(f.pending, d)
}

// RecvVec4 implements Functor.
//
func (f *DelayFunctor) RecvVec4(n *Network, p Ptr, v Vector4) {
	if p.Port != 0 {
		return
	}
	unchanged := f.init && f.out4.Eeq(v)
	f.init = true
	f.recv(n, p, f.d.vector(f.out4, v), unchanged, evVec4, v, nil, 0)
}

// RecvVec8 implements Vec8Receiver.
//
func (f *DelayFunctor) RecvVec8(n *Network, p Ptr, v Vector8) {
	if p.Port != 0 {
		return
	}
	unchanged := f.init && f.out8.Eeq(v)
	f.init = true
	f.recv(n, p, f.d.vector(f.out4, v.Reduce()), unchanged, evVec8, Vector4{}, v, 0)
}

// RecvReal implements Functor. Real values use the rise delay.
//
func (f *DelayFunctor) RecvReal(n *Network, p Ptr, v float64) {
	if p.Port != 0 {
		return
	}
	unchanged := math.Float64bits(v) == math.Float64bits(f.outR)
	f.recv(n, p, f.d.Rise, unchanged, evReal, Vector4{}, nil, v)
}

func (f *DelayFunctor) String() string { return "DELAY" + f.d.String() }
