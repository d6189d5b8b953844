// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// Resolver is a drive resolution functor. It keeps the last strength vector
// received on each of its ports and outputs, bit by bit, the resolution of
// all of them (see Resolve).
//
// Plain Vector4 inputs are driven with the resolver strengths. A resolver
// with a single input port connected is the drive wrapper of a gate with non
// default output strengths.
//
type Resolver struct {
	s0, s1 Strength
	in     [MaxPorts]Vector8
	out    Vector8
	sent   bool
}

// NewResolver returns a resolver driving Vector4 inputs with strength s0
// for 0 and s1 for 1.
//
func NewResolver(s0, s1 Strength) *Resolver {
	return &Resolver{s0: s0, s1: s1}
}

// Strengths returns the strengths applied to Vector4 inputs.
func (r *Resolver) Strengths() (s0, s1 Strength) { return r.s0, r.s1 }

// RecvVec4 implements Functor.
//
func (r *Resolver) RecvVec4(n *Network, p Ptr, v Vector4) {
	r.RecvVec8(n, p, Vector8From(v, r.s0, r.s1))
}

// RecvVec8 implements Vec8Receiver.
//
func (r *Resolver) RecvVec8(n *Network, p Ptr, v Vector8) {
	r.in[p.Port] = v
	size := 0
	for _, in := range r.in {
		if in.Size() > size {
			size = in.Size()
		}
	}
	res := NewVector8(size)
	for i := range res {
		for _, in := range r.in {
			if i < in.Size() {
				res[i] = Resolve(res[i], in[i])
			}
		}
	}
	if r.sent && r.out.Eeq(res) {
		return
	}
	r.out, r.sent = res, true
	n.SendVec8(p.Net, res)
}

// RecvReal implements Functor. Real values cannot be resolved and are
// ignored.
//
func (r *Resolver) RecvReal(n *Network, p Ptr, v float64) {}

func (r *Resolver) String() string { return "RESOLV(" + r.s0.String() + "," + r.s1.String() + ")" }
