// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"io"
	"log"
	"strconv"

	"github.com/pkg/errors"
)

// MaxPorts is the number of input ports of a net.
//
const MaxPorts = 4

// NetID identifies a net in a Network. It is a stable index, valid for the
// lifetime of the network.
//
type NetID int

// Ptr points to an input port of a net.
//
type Ptr struct {
	Net  NetID
	Port int
}

func (p Ptr) String() string {
	return strconv.Itoa(int(p.Net)) + "." + strconv.Itoa(p.Port)
}

// A Functor is the computation unit of a net. It receives values on the input
// ports of its net and sends results to the net's fan-out with
// Network.SendVec4 or Network.SendReal, using p.Net as the sending net.
//
// Functors run synchronously; they may schedule future work on the network
// but never block.
//
type Functor interface {
	// RecvVec4 delivers a four-state vector on port p.
	RecvVec4(n *Network, p Ptr, v Vector4)
	// RecvReal delivers a real value on port p.
	RecvReal(n *Network, p Ptr, v float64)
}

// Vec8Receiver is implemented by strength aware functors. A Vector8 sent to a
// functor that does not implement it is reduced to a Vector4 and delivered
// with RecvVec4.
//
type Vec8Receiver interface {
	RecvVec8(n *Network, p Ptr, v Vector8)
}

// A Runner is a functor, or any other object, that can be scheduled for
// re-evaluation with a generic event.
//
type Runner interface {
	Run(n *Network)
}

// A Net is a node of the propagation graph. It owns exactly one functor and
// the list of input ports it broadcasts its output to.
//
type Net struct {
	fun   Functor
	out   []Ptr
	label string
}

// Functor returns the functor of the net.
func (n *Net) Functor() Functor { return n.fun }

// Fanout returns the input ports driven by the net. The returned slice must
// not be modified.
//
func (n *Net) Fanout() []Ptr { return n.out }

// Label returns the symbolic label bound to the net, if any.
func (n *Net) Label() string { return n.label }

// Network is a runnable network of functors. It owns all nets and the event
// scheduler.
//
// Networks are not safe for concurrent use.
//
type Network struct {
	nets  []Net
	sched scheduler
	log   *log.Logger
	trace bool
}

// NewNetwork returns a new empty network at simulation time 0.
//
func NewNetwork() *Network {
	return &Network{
		log: log.New(io.Discard, "", 0),
	}
}

// SetLogger sets the logger used for diagnostics. A nil logger discards
// everything.
//
func (n *Network) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	n.log = l
}

// Logger returns the network logger.
func (n *Network) Logger() *log.Logger { return n.log }

// Trace enables or disables logging of every dispatched event.
//
func (n *Network) Trace(on bool) { n.trace = on }

// NewNet allocates a new net for functor f.
//
func (n *Network) NewNet(f Functor) NetID {
	if f == nil {
		panic("nil functor")
	}
	n.nets = append(n.nets, Net{fun: f})
	return NetID(len(n.nets) - 1)
}

// Len returns the number of nets in the network.
func (n *Network) Len() int { return len(n.nets) }

// Net returns the net with the given id.
// This function panics if the net does not exist.
//
func (n *Network) Net(id NetID) *Net {
	return &n.nets[id]
}

// SetLabel binds a symbolic label to a net for diagnostics.
//
func (n *Network) SetLabel(id NetID, label string) {
	n.nets[id].label = label
}

// Connect appends dst to the fan-out of net src.
//
func (n *Network) Connect(src NetID, dst Ptr) error {
	if int(src) < 0 || int(src) >= len(n.nets) {
		return errors.Errorf("connect: source net %d does not exist", src)
	}
	if int(dst.Net) < 0 || int(dst.Net) >= len(n.nets) {
		return errors.Errorf("connect: destination net %d does not exist", dst.Net)
	}
	if dst.Port < 0 || dst.Port >= MaxPorts {
		return errors.Errorf("connect: invalid port %d for net %d", dst.Port, dst.Net)
	}
	s := &n.nets[src]
	s.out = append(s.out, dst)
	return nil
}

// Reset clears the network: all nets are released at once, pending events
// are dropped and the simulation time is set back to 0.
//
func (n *Network) Reset() {
	n.nets = nil
	n.sched = scheduler{}
}

// DeliverVec4 delivers v to port p.
//
func (n *Network) DeliverVec4(p Ptr, v Vector4) {
	n.nets[p.Net].fun.RecvVec4(n, p, v)
}

// DeliverVec8 delivers v to port p. If the functor at p is not strength
// aware, v is reduced to a Vector4.
//
func (n *Network) DeliverVec8(p Ptr, v Vector8) {
	f := n.nets[p.Net].fun
	if r, ok := f.(Vec8Receiver); ok {
		r.RecvVec8(n, p, v)
		return
	}
	f.RecvVec4(n, p, v.Reduce())
}

// DeliverReal delivers v to port p.
//
func (n *Network) DeliverReal(p Ptr, v float64) {
	n.nets[p.Net].fun.RecvReal(n, p, v)
}

// SendVec4 broadcasts v to the fan-out of net from.
//
func (n *Network) SendVec4(from NetID, v Vector4) {
	for _, p := range n.nets[from].out {
		n.DeliverVec4(p, v)
	}
}

// SendVec8 broadcasts v to the fan-out of net from.
//
func (n *Network) SendVec8(from NetID, v Vector8) {
	var v4 Vector4
	reduced := false
	for _, p := range n.nets[from].out {
		f := n.nets[p.Net].fun
		if r, ok := f.(Vec8Receiver); ok {
			r.RecvVec8(n, p, v)
			continue
		}
		if !reduced {
			v4, reduced = v.Reduce(), true
		}
		f.RecvVec4(n, p, v4)
	}
}

// SendReal broadcasts v to the fan-out of net from.
//
func (n *Network) SendReal(from NetID, v float64) {
	for _, p := range n.nets[from].out {
		n.DeliverReal(p, v)
	}
}
