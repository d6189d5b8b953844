// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package simtest_test

import (
	"testing"

	sim "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/gates"
	"github.com/db47h/logicsim/simtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nand(b *gates.Builder, out string, in ...gates.Ref) {
	b.Add(out, gates.KindNand, 1, nil, sim.Strong, sim.Strong, in...)
}

func TestComparePart(t *testing.T) {
	or := func(b *gates.Builder, out string, in []gates.Ref) error {
		nand(b, out+".notA", in[0], in[0])
		nand(b, out+".notB", in[1], in[1])
		nand(b, out, gates.Label(out+".notA"), gates.Label(out+".notB"))
		return nil
	}
	simtest.ComparePart(t, 2, 16, 32, simtest.Gate(gates.KindOr, 1), or)

	xor := func(b *gates.Builder, out string, in []gates.Ref) error {
		nand(b, out+".nandAB", in[0], in[1])
		nand(b, out+".w0", in[0], gates.Label(out+".nandAB"))
		nand(b, out+".w1", in[1], gates.Label(out+".nandAB"))
		nand(b, out, gates.Label(out+".w0"), gates.Label(out+".w1"))
		return nil
	}
	simtest.ComparePart(t, 2, 16, 32, simtest.Gate(gates.KindXor, 1), xor)
}

func TestCombos(t *testing.T) {
	seen := make(map[string]bool)
	simtest.Combos(3, func(in []sim.Bit4) {
		seen[sim.Vector4Of(in...).String()] = true
	})
	assert.Len(t, seen, 64)
	assert.True(t, seen["zx1"])

	var first []sim.Bit4
	simtest.Combos(2, func(in []sim.Bit4) {
		if first == nil {
			first = append(first, in...)
		}
	})
	assert.Equal(t, []sim.Bit4{sim.Bit0, sim.Bit0}, first)
}

func TestEval(t *testing.T) {
	p, err := simtest.Eval(simtest.Gate(gates.KindNot, 1), sim.MustVector4("01z"))
	require.NoError(t, err)
	assert.Equal(t, "10x", p.Value(0))
	assert.Equal(t, "-", p.Value(1))

	_, err = simtest.Eval(simtest.Gate(gates.Kind(99), 1))
	assert.Error(t, err)
}

func TestProbe(t *testing.T) {
	n := sim.NewNetwork()
	p := simtest.NewProbe()
	src := &simtest.Source{}
	s := n.NewNet(src)
	src.Bind(s)
	require.NoError(t, n.Connect(s, sim.Ptr{Net: n.NewNet(p), Port: 2}))

	src.DriveBits(n, 1, "1z")
	src.DriveReal(n, 3, 0.5)
	n.ScheduleVec8(sim.Ptr{Net: 1, Port: 0}, 4, sim.Vector8From(sim.MustVector4("1"), sim.Weak, sim.Weak))
	require.NoError(t, n.RunAll())

	assert.Equal(t, "PROBE @1[2]=1z,@3[2]=0.5,@4[0]=We1", p.String())
	assert.Equal(t, "0.5", p.Value(2))
	last, ok := p.Last(0)
	require.True(t, ok)
	assert.Equal(t, "1", last.V4.String())

	p.Reset()
	assert.Empty(t, p.Samples)
	assert.Equal(t, "-", p.Value(2))
}
