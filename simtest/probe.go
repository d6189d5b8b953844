// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package simtest

import (
	"fmt"
	"strconv"
	"strings"

	sim "github.com/db47h/logicsim"
)

// Sample is a value seen by a Probe.
//
type Sample struct {
	At   sim.Time
	Port int
	V4   sim.Vector4
	V8   sim.Vector8 // nil unless the value was sent as a Vector8
	R    float64
	Real bool
}

func (s Sample) String() string {
	var v string
	switch {
	case s.Real:
		v = strconv.FormatFloat(s.R, 'g', -1, 64)
	case s.V8 != nil:
		v = s.V8.String()
	default:
		v = s.V4.String()
	}
	return fmt.Sprintf("@%d[%d]=%s", s.At, s.Port, v)
}

// Probe is a functor recording every value it receives, on any port. It
// accepts Vector8 values as is.
//
type Probe struct {
	Samples []Sample
	last    [sim.MaxPorts]int
}

// NewProbe returns an empty probe.
//
func NewProbe() *Probe {
	p := &Probe{}
	for i := range p.last {
		p.last[i] = -1
	}
	return p
}

func (p *Probe) add(s Sample) {
	p.last[s.Port] = len(p.Samples)
	p.Samples = append(p.Samples, s)
}

// RecvVec4 implements logicsim.Functor.
//
func (p *Probe) RecvVec4(n *sim.Network, at sim.Ptr, v sim.Vector4) {
	p.add(Sample{At: n.Now(), Port: at.Port, V4: v})
}

// RecvVec8 implements logicsim.Vec8Receiver.
//
func (p *Probe) RecvVec8(n *sim.Network, at sim.Ptr, v sim.Vector8) {
	p.add(Sample{At: n.Now(), Port: at.Port, V4: v.Reduce(), V8: v})
}

// RecvReal implements logicsim.Functor.
//
func (p *Probe) RecvReal(n *sim.Network, at sim.Ptr, v float64) {
	p.add(Sample{At: n.Now(), Port: at.Port, R: v, Real: true})
}

// Last returns the last sample received on the given port.
//
func (p *Probe) Last(port int) (Sample, bool) {
	if i := p.last[port]; i >= 0 {
		return p.Samples[i], true
	}
	return Sample{}, false
}

// Value returns the last vector received on the given port, as a string. It
// returns "-" if nothing was received.
//
func (p *Probe) Value(port int) string {
	s, ok := p.Last(port)
	if !ok {
		return "-"
	}
	if s.Real {
		return strconv.FormatFloat(s.R, 'g', -1, 64)
	}
	return s.V4.String()
}

// Reset forgets all samples.
//
func (p *Probe) Reset() {
	p.Samples = p.Samples[:0]
	for i := range p.last {
		p.last[i] = -1
	}
}

func (p *Probe) String() string {
	var b strings.Builder
	b.WriteString("PROBE")
	for i, s := range p.Samples {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteByte(',')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
