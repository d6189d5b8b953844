// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	"log"

	sim "github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// Builder builds a network of functors. It owns the symbol table mapping
// labels to nets and the construction error list.
//
// Construction errors do not stop the build: the offending functor is
// skipped, the error is recorded and logged, and building goes on so that all
// errors can be reported at once by Finish.
//
// A typical use:
//
//	net := logicsim.NewNetwork()
//	b := gates.NewBuilder(net)
//	b.Functor("nand", "NAND", 1, nil, logicsim.Strong, logicsim.Strong,
//		gates.Label("a"), gates.Label("b"))
//	...
//	if err := b.Finish(); err != nil {
//		log.Fatal(err)
//	}
//	net.Run(1000)
//
type Builder struct {
	net      *sim.Network
	log      *log.Logger
	syms     map[string]sim.NetID
	deferred []deferredRef
	errs     []error
	counts   [kindCount]int
	resolv   int
}

type deferredRef struct {
	label string
	dst   sim.Ptr
	owner string
}

// NewBuilder returns a new builder adding nets to n. The builder logs
// construction errors to n's logger.
//
func NewBuilder(n *sim.Network) *Builder {
	return &Builder{
		net:  n,
		log:  n.Logger(),
		syms: make(map[string]sim.NetID),
	}
}

// Network returns the network being built.
func (b *Builder) Network() *sim.Network { return b.net }

func (b *Builder) fail(err error) error {
	b.errs = append(b.errs, err)
	b.log.Print(err)
	return err
}

// ErrorCount returns the number of construction errors so far.
//
func (b *Builder) ErrorCount() int { return len(b.errs) }

// Errors returns the construction errors so far.
//
func (b *Builder) Errors() []error { return b.errs }

// Count returns the number of functors of kind k built so far.
//
func (b *Builder) Count(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return b.counts[k]
}

// Total returns the number of functors built so far, resolvers included.
//
func (b *Builder) Total() int {
	t := b.resolv
	for _, c := range b.counts {
		t += c
	}
	return t
}

// Lookup returns the net bound to label.
//
func (b *Builder) Lookup(label string) (sim.NetID, bool) {
	id, ok := b.syms[label]
	return id, ok
}

// Labels returns the symbol table. It must not be modified.
//
func (b *Builder) Labels() map[string]sim.NetID { return b.syms }

// Functor builds a functor of the named kind and binds its output to label.
// It is the same as Add, with the kind given by its device name, like "NAND"
// or "BUFIF1".
//
func (b *Builder) Functor(label, kind string, width int, delay *sim.Delay, ostr0, ostr1 sim.Strength, inputs ...Ref) error {
	k, ok := ParseKind(kind)
	if !ok {
		return b.fail(errors.Wrapf(ErrUnknownKind, "%s: %q", label, kind))
	}
	return b.Add(label, k, width, delay, ostr0, ostr1, inputs...)
}

// Add builds a functor of kind k and binds its output to label.
//
// The width is used by the kinds that latch their inputs (AND, MUXZ); others
// size their output after their inputs. delay is optional. ostr0 and ostr1
// are the drive strengths of the output for 0 and 1. Up to 4 inputs are
// connected to ports 0 to 3 in order.
//
// Unless both strengths are Strong, or the kind is strength aware, the
// functor output goes through a drive resolution functor. A delay goes
// through a delay functor. Both at once cannot be represented and are
// rejected. The label is bound to the last net of the chain.
//
// Inputs referring to labels not yet defined are bound when Finish is
// called.
//
func (b *Builder) Add(label string, k Kind, width int, delay *sim.Delay, ostr0, ostr1 sim.Strength, inputs ...Ref) error {
	if !k.Valid() {
		return b.fail(errors.Wrapf(ErrUnknownKind, "%s: %v", label, k))
	}
	if len(inputs) > sim.MaxPorts {
		return b.fail(errors.Wrapf(ErrTooManyInputs, "%s: %s has %d inputs, max %d", label, k, len(inputs), sim.MaxPorts))
	}
	if (k == KindAnd || k == KindMuxz) && width < 1 {
		return b.fail(errors.Wrapf(ErrWidth, "%s: %s width %d", label, k, width))
	}
	if !ostr0.Valid() || !ostr1.Valid() {
		return b.fail(errors.Wrapf(ErrStrength, "%s: (%d, %d)", label, ostr0, ostr1))
	}
	strong := ostr0 == sim.Strong && ostr1 == sim.Strong
	if delay != nil && (!strong || k.StrengthAware()) {
		return b.fail(errors.Wrapf(ErrDelayStrength, "%s: %s delay %v strengths (%v, %v)", label, k, delay, ostr0, ostr1))
	}
	if _, ok := b.syms[label]; ok {
		return b.fail(errors.Wrap(ErrDuplicateLabel, label))
	}

	id := b.net.NewNet(b.newFunctor(k, width, len(inputs), ostr0, ostr1))
	b.net.SetLabel(id, label)
	for i, in := range inputs {
		b.connect(label, in, sim.Ptr{Net: id, Port: i})
	}

	out := id
	switch {
	case !strong || k.StrengthAware():
		out = b.wrap(id, label+".drv", sim.NewResolver(ostr0, ostr1))
	case delay != nil:
		out = b.wrap(id, label+".dly", sim.NewDelayFunctor(*delay))
	}
	b.syms[label] = out
	b.counts[k]++
	return nil
}

func (b *Builder) wrap(id sim.NetID, label string, f sim.Functor) sim.NetID {
	out := b.net.NewNet(f)
	b.net.SetLabel(out, label)
	if err := b.net.Connect(id, sim.Ptr{Net: out, Port: 0}); err != nil {
		// both nets were just allocated
		panic(err)
	}
	return out
}

// newFunctor allocates a functor of kind k. k must be valid.
func (b *Builder) newFunctor(k Kind, width, arity int, ostr0, ostr1 sim.Strength) sim.Functor {
	switch k {
	case KindOr, KindMuxx, KindEeq, KindNand, KindNor, KindNot, KindXnor, KindXor:
		return NewTable(k.String(), TruthTable(k, arity), arity)
	case KindAnd:
		return NewAnd(width, arity)
	case KindBuf:
		return Buf{}
	case KindBufif0:
		return NewBufif(true, false, ostr0, ostr1)
	case KindBufif1:
		return NewBufif(false, false, ostr0, ostr1)
	case KindNotif0:
		return NewBufif(true, true, ostr0, ostr1)
	case KindNotif1:
		return NewBufif(false, true, ostr0, ostr1)
	case KindBufz:
		return Bufz{}
	case KindMuxr:
		return NewMuxr()
	case KindMuxz:
		return NewMuxz(width)
	case KindNmos:
		return NewMos(true, false)
	case KindPmos:
		return NewMos(false, false)
	case KindRnmos:
		return NewMos(true, true)
	case KindRpmos:
		return NewMos(false, true)
	}
	panic("unhandled functor kind " + k.String())
}

// Resolve builds a drive resolution net combining up to 4 drivers and binds
// it to label. Plain vector drivers are taken as strong.
//
func (b *Builder) Resolve(label string, inputs ...Ref) error {
	if len(inputs) > sim.MaxPorts {
		return b.fail(errors.Wrapf(ErrTooManyInputs, "%s: resolver has %d inputs, max %d", label, len(inputs), sim.MaxPorts))
	}
	if _, ok := b.syms[label]; ok {
		return b.fail(errors.Wrap(ErrDuplicateLabel, label))
	}
	id := b.net.NewNet(sim.NewResolver(sim.Strong, sim.Strong))
	b.net.SetLabel(id, label)
	for i, in := range inputs {
		b.connect(label, in, sim.Ptr{Net: id, Port: i})
	}
	b.syms[label] = id
	b.resolv++
	return nil
}

// Define allocates a net for an arbitrary functor and binds it to label. It
// is meant for stimulus and monitor functors built outside of this package.
// On error, no net is allocated and the returned id is -1.
//
func (b *Builder) Define(label string, f sim.Functor, inputs ...Ref) (sim.NetID, error) {
	if len(inputs) > sim.MaxPorts {
		return -1, b.fail(errors.Wrapf(ErrTooManyInputs, "%s: %d inputs, max %d", label, len(inputs), sim.MaxPorts))
	}
	if _, ok := b.syms[label]; ok {
		return -1, b.fail(errors.Wrap(ErrDuplicateLabel, label))
	}
	id := b.net.NewNet(f)
	b.net.SetLabel(id, label)
	for i, in := range inputs {
		b.connect(label, in, sim.Ptr{Net: id, Port: i})
	}
	b.syms[label] = id
	return id, nil
}

// connect connects input in to dst, or defers it if in is a label not yet
// bound.
func (b *Builder) connect(owner string, in Ref, dst sim.Ptr) {
	var src sim.NetID
	switch {
	case in.isCst:
		c := *in.cst
		src = b.net.NewNet(&c)
		c.net = src
		b.net.SetLabel(src, c.String())
		b.net.ScheduleGeneric(&c, 0)
	default:
		id, ok := b.syms[in.label]
		if !ok {
			b.deferred = append(b.deferred, deferredRef{label: in.label, dst: dst, owner: owner})
			return
		}
		src = id
	}
	if err := b.net.Connect(src, dst); err != nil {
		b.fail(errors.Wrap(err, owner))
	}
}

// Finish binds the inputs that referred to labels not yet defined at the
// time they were used. It returns a *BuildError listing all construction
// errors, or nil if there were none.
//
func (b *Builder) Finish() error {
	for _, d := range b.deferred {
		id, ok := b.syms[d.label]
		if !ok {
			b.fail(errors.Wrapf(ErrUnresolved, "%s: input %d: %q", d.owner, d.dst.Port, d.label))
			continue
		}
		if err := b.net.Connect(id, d.dst); err != nil {
			b.fail(errors.Wrap(err, d.owner))
		}
	}
	b.deferred = nil
	if len(b.errs) > 0 {
		return &BuildError{Errs: b.errs}
	}
	return nil
}
