// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing functors and
// netlists: stimulus sources, probes and exhaustive four-state comparison of
// parts.
//
package simtest

import (
	"io"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	sim "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/gates"
	"github.com/pkg/errors"
)

// ErrNoOutput is returned by Eval when the part under test did not send
// anything.
//
var ErrNoOutput = errors.New("no output")

// BuildFn adds a part to b with its output bound to the label out and its
// inputs connected to in.
//
type BuildFn func(b *gates.Builder, out string, in []gates.Ref) error

// Gate returns a BuildFn for a single functor of the given kind, with strong
// output and no delay.
//
func Gate(k gates.Kind, width int) BuildFn {
	return func(b *gates.Builder, out string, in []gates.Ref) error {
		return b.Add(out, k, width, nil, sim.Strong, sim.Strong, in...)
	}
}

// Combos calls f for every combination of arity four-state values. in[0]
// varies fastest. The slice passed to f is reused between calls.
//
func Combos(arity int, f func(in []sim.Bit4)) {
	in := make([]sim.Bit4, arity)
	for k := 0; k < 1<<uint(2*arity); k++ {
		for i := range in {
			in[i] = sim.FromCode(uint8(k >> uint(2*i)))
		}
		f(in)
	}
}

// Eval builds a network with part wired to one source per input and a probe
// on its output. The sources drive the given values at time 0 and the network
// runs until the queue is empty. It returns the probe.
//
func Eval(part BuildFn, inputs ...sim.Vector4) (*Probe, error) {
	n := sim.NewNetwork()
	n.SetLogger(log.New(io.Discard, "", 0))
	b := gates.NewBuilder(n)
	refs := make([]gates.Ref, len(inputs))
	srcs := make([]*Source, len(inputs))
	for i := range inputs {
		label := "in" + strconv.Itoa(i)
		srcs[i] = &Source{}
		id, err := b.Define(label, srcs[i])
		if err != nil {
			return nil, err
		}
		srcs[i].Bind(id)
		refs[i] = gates.Label(label)
	}
	if err := part(b, "out", refs); err != nil {
		return nil, err
	}
	p := NewProbe()
	if _, err := b.Define("probe", p, gates.Label("out")); err != nil {
		return nil, err
	}
	if err := b.Finish(); err != nil {
		return nil, err
	}
	for i, v := range inputs {
		srcs[i].Drive(n, 0, v)
	}
	if err := n.RunAll(); err != nil {
		return nil, err
	}
	if _, ok := p.Last(0); !ok {
		return p, ErrNoOutput
	}
	return p, nil
}

func bitVectors(in []sim.Bit4) []sim.Vector4 {
	vs := make([]sim.Vector4, len(in))
	for i, b := range in {
		vs[i] = sim.Vector4Of(b)
	}
	return vs
}

func inputString(in []sim.Vector4) string {
	var b strings.Builder
	for i, v := range in {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("in")
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('=')
		b.WriteString(v.String())
	}
	return b.String()
}

// output returns the value sent by a part as a string. A part that did not
// send anything is left in its initial undefined state and reads as X.
func output(p *Probe, err error, width int) string {
	if err != nil {
		return sim.NewVector4(width).String()
	}
	return p.Value(0)
}

// CompareFunc checks a single bit part against a reference function for all
// four-state combinations of its inputs.
//
func CompareFunc(t *testing.T, arity int, part BuildFn, ref func(in []sim.Bit4) sim.Bit4) {
	t.Helper()
	Combos(arity, func(in []sim.Bit4) {
		vs := bitVectors(in)
		p, err := Eval(part, vs...)
		if err != nil && errors.Cause(err) != ErrNoOutput {
			t.Fatalf("%s: %v", inputString(vs), err)
		}
		ex := ref(in).String()
		if got := output(p, err, 1); got != ex {
			t.Errorf("\nExpected %s => out=%s\nGot %s", inputString(vs), ex, got)
		}
	})
}

// RandomVector4 returns a vector of the given size with random four-state
// bits.
//
func RandomVector4(r *rand.Rand, size int) sim.Vector4 {
	v := sim.NewVector4(size)
	for i := 0; i < size; i++ {
		v.SetBit(i, sim.FromCode(uint8(r.Intn(4))))
	}
	return v
}

// ComparePart takes two parts and compares their outputs given the same
// inputs. Both parts must have the same number of inputs. All four-state
// combinations of 1 bit inputs are tried first, then iter rounds of random
// vectors of the given width.
//
func ComparePart(t *testing.T, arity, width, iter int, part1, part2 BuildFn) {
	t.Helper()

	cmp := func(vs []sim.Vector4) {
		p1, err1 := Eval(part1, vs...)
		p2, err2 := Eval(part2, vs...)
		if err1 != nil && errors.Cause(err1) != ErrNoOutput {
			t.Fatalf("%s: part1: %v", inputString(vs), err1)
		}
		if err2 != nil && errors.Cause(err2) != ErrNoOutput {
			t.Fatalf("%s: part2: %v", inputString(vs), err2)
		}
		w := 0
		for _, v := range vs {
			if v.Size() > w {
				w = v.Size()
			}
		}
		if ex, got := output(p1, err1, w), output(p2, err2, w); ex != got {
			t.Errorf("\nExpected %s => out=%s\nGot %s", inputString(vs), ex, got)
		}
	}

	start := time.Now()
	Combos(arity, func(in []sim.Bit4) { cmp(bitVectors(in)) })

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	vs := make([]sim.Vector4, arity)
	for i := 0; i < iter; i++ {
		for j := range vs {
			vs[j] = RandomVector4(r, width)
		}
		cmp(vs)
	}
	t.Logf("%d combinations, %d random rounds in %v", 1<<uint(2*arity), iter, time.Since(start))
}
