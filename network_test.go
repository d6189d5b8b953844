// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"

	sim "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/simtest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plain is a functor that does not handle Vector8 values.
type plain struct {
	got []string
}

func (p *plain) RecvVec4(n *sim.Network, at sim.Ptr, v sim.Vector4) {
	p.got = append(p.got, v.String())
}

func (p *plain) RecvReal(n *sim.Network, at sim.Ptr, v float64) {}

// relay forwards anything it receives on any port.
type relay struct{}

func (relay) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) { n.SendVec4(p.Net, v) }
func (relay) RecvVec8(n *sim.Network, p sim.Ptr, v sim.Vector8) { n.SendVec8(p.Net, v) }
func (relay) RecvReal(n *sim.Network, p sim.Ptr, v float64)     { n.SendReal(p.Net, v) }

// probed returns a network with a relay net feeding a probe.
func probed() (*sim.Network, sim.NetID, *simtest.Probe) {
	n := sim.NewNetwork()
	p := simtest.NewProbe()
	r := n.NewNet(relay{})
	pid := n.NewNet(p)
	if err := n.Connect(r, sim.Ptr{Net: pid, Port: 0}); err != nil {
		panic(err)
	}
	return n, r, p
}

func TestNetwork_Connect(t *testing.T) {
	n := sim.NewNetwork()
	a := n.NewNet(relay{})
	b := n.NewNet(relay{})
	require.NoError(t, n.Connect(a, sim.Ptr{Net: b, Port: 3}))
	assert.Equal(t, []sim.Ptr{{Net: b, Port: 3}}, n.Net(a).Fanout())

	for _, d := range []struct {
		src sim.NetID
		dst sim.Ptr
	}{
		{2, sim.Ptr{Net: b}},
		{a, sim.Ptr{Net: 5}},
		{a, sim.Ptr{Net: b, Port: sim.MaxPorts}},
		{a, sim.Ptr{Net: b, Port: -1}},
	} {
		err := n.Connect(d.src, d.dst)
		assert.Error(t, err, "%d -> %v", d.src, d.dst)
		trace(t, err)
	}
	assert.Panics(t, func() { n.NewNet(nil) })

	n.SetLabel(a, "a")
	assert.Equal(t, "a", n.Net(a).Label())
	assert.Equal(t, 2, n.Len())
	n.Reset()
	assert.Equal(t, 0, n.Len())
	assert.Equal(t, sim.Time(0), n.Now())
}

func TestNetwork_SendVec8(t *testing.T) {
	n := sim.NewNetwork()
	src := n.NewNet(relay{})
	pl := &plain{}
	pr := simtest.NewProbe()
	require.NoError(t, n.Connect(src, sim.Ptr{Net: n.NewNet(pl)}))
	require.NoError(t, n.Connect(src, sim.Ptr{Net: n.NewNet(pr), Port: 1}))

	v := sim.Vector8From(sim.MustVector4("1z"), sim.Pull, sim.Pull)
	n.ScheduleVec8(sim.Ptr{Net: src}, 0, v)
	require.NoError(t, n.RunAll())

	assert.Equal(t, []string{"1z"}, pl.got)
	s, ok := pr.Last(1)
	require.True(t, ok)
	assert.True(t, v.Eeq(s.V8), "strength lost: %v", s.V8)
}

func TestScheduler_order(t *testing.T) {
	n, r, p := probed()
	in := sim.Ptr{Net: r}
	n.ScheduleVec4(in, 5, sim.MustVector4("1"))
	n.ScheduleVec4(in, 3, sim.MustVector4("0"))
	n.ScheduleVec4(in, 3, sim.MustVector4("x"))
	n.ScheduleReal(in, 4, 1.5)
	n.ScheduleVec4(in, 3, sim.MustVector4("z"))
	assert.Equal(t, 5, n.Pending())

	require.NoError(t, n.RunAll())
	var got []string
	for _, s := range p.Samples {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{"@3[0]=0", "@3[0]=x", "@3[0]=z", "@4[0]=1.5", "@5[0]=1"}, got)
	assert.Equal(t, sim.Time(5), n.Now())
	assert.Equal(t, uint64(5), n.Dispatched())
	assert.Equal(t, 0, n.Pending())
}

type runFunc func(n *sim.Network)

func (f runFunc) Run(n *sim.Network) { f(n) }

func TestScheduler_sync(t *testing.T) {
	n := sim.NewNetwork()
	var seq []string
	add := func(s string) runFunc { return func(*sim.Network) { seq = append(seq, s) } }

	n.ScheduleSync(1, func(n *sim.Network) {
		seq = append(seq, "sync1")
		n.ScheduleGeneric(add("g1 from sync"), 0)
		n.ScheduleSync(0, func(*sim.Network) { seq = append(seq, "sync1 again") })
	})
	n.ScheduleGeneric(runFunc(func(n *sim.Network) {
		seq = append(seq, "g1")
		n.ScheduleGeneric(add("g1 chained"), 0)
	}), 1)
	n.ScheduleGeneric(add("g0"), 0)
	n.ScheduleGeneric(add("g2"), 2)

	require.NoError(t, n.RunAll())
	assert.Equal(t, []string{"g0", "g1", "g1 chained", "sync1", "g1 from sync", "sync1 again", "g2"}, seq)
}

func TestScheduler_run(t *testing.T) {
	n, r, p := probed()
	in := sim.Ptr{Net: r}
	for i := 0; i < 10; i++ {
		n.ScheduleVec4(in, sim.Time(i*10), sim.MustVector4("1"))
	}
	require.NoError(t, n.Run(35))
	assert.Len(t, p.Samples, 4)
	assert.Equal(t, sim.Time(35), n.Now())
	assert.Equal(t, 6, n.Pending())

	// resume
	n.ScheduleGeneric(runFunc(func(n *sim.Network) { n.Stop() }), 20)
	require.NoError(t, n.Run(1000))
	assert.Equal(t, sim.Time(55), n.Now())
	assert.Len(t, p.Samples, 6)

	ok, err := n.Step()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, p.Samples, 7)
	require.NoError(t, n.RunAll())
	ok, err = n.Step()
	assert.NoError(t, err)
	assert.False(t, ok)
}

type strict struct{}

func (strict) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {
	if v.Size() != 1 {
		sim.Violation(p, "expected 1 bit, got %d", v.Size())
	}
}
func (strict) RecvReal(n *sim.Network, p sim.Ptr, v float64) { panic("boom") }

func TestScheduler_contract(t *testing.T) {
	n := sim.NewNetwork()
	id := n.NewNet(strict{})
	n.ScheduleVec4(sim.Ptr{Net: id, Port: 2}, 1, sim.MustVector4("01"))
	err := n.RunAll()
	require.Error(t, err)
	ce, ok := err.(*sim.ContractError)
	require.True(t, ok, "%T", err)
	assert.Equal(t, sim.Ptr{Net: id, Port: 2}, ce.At)
	assert.True(t, strings.HasPrefix(err.Error(), "net 0.2: "), err.Error())
	trace(t, errors.Cause(err))

	n.ScheduleReal(sim.Ptr{Net: id}, 0, 0)
	defer func() {
		fp, ok := recover().(*sim.FunctorPanic)
		require.True(t, ok, "expected a *FunctorPanic")
		assert.Equal(t, "boom", fp.Value)
		assert.Contains(t, string(fp.Stack), "strict.RecvReal")
		assert.True(t, strings.HasPrefix(fp.Error(), "boom\n\noriginal stack:\n"))
	}()
	n.RunAll()
	t.Fatal("RunAll did not panic")
}

func TestNetwork_trace(t *testing.T) {
	var buf bytes.Buffer
	n, r, _ := probed()
	n.SetLogger(log.New(&buf, "", 0))
	n.Trace(true)
	n.ScheduleReal(sim.Ptr{Net: r}, 2, math.Pi)
	require.NoError(t, n.RunAll())
	assert.Equal(t, "t=2 real 0.0 3.141592653589793\n", buf.String())
}
