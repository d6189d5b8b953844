// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	sim "github.com/db47h/logicsim"
)

// Truth is a packed truth table for up to 4 one-bit inputs.
//
// The lookup key is built from the codes (see logicsim.Bit4.Code) of each
// input, input 0 in the two least significant bits. Entry k is stored in bits
// 2*(k%4) and 2*(k%4)+1 of byte k/4, again as a Bit4 code.
//
type Truth [64]byte

// Lookup returns the table output for the given key.
//
func (t *Truth) Lookup(key uint8) sim.Bit4 {
	return sim.FromCode(t[key/4] >> (key % 4 * 2))
}

// MakeTruth builds the truth table of f for the given number of inputs.
// Inputs past arity do not take part in the lookup key, f only ever sees
// arity values.
//
func MakeTruth(arity int, f func(in []sim.Bit4) sim.Bit4) *Truth {
	var t Truth
	in := make([]sim.Bit4, arity)
	for key := 0; key < 256; key++ {
		for i := range in {
			in[i] = sim.FromCode(uint8(key >> (uint(i) * 2)))
		}
		t[key/4] |= f(in).Code() << (uint(key) % 4 * 2)
	}
	return &t
}

// reduce builds a gate function folding op over all inputs, starting from
// the identity element id.
func reduce(id sim.Bit4, op func(a, b sim.Bit4) sim.Bit4, invert bool) func([]sim.Bit4) sim.Bit4 {
	return func(in []sim.Bit4) sim.Bit4 {
		r := id
		for _, b := range in {
			r = op(r, b)
		}
		if invert {
			r = r.Not()
		}
		return r
	}
}

// gate functions of table driven kinds
var tableFuncs = map[Kind]func([]sim.Bit4) sim.Bit4{
	KindOr:   reduce(sim.Bit0, sim.Bit4.Or, false),
	KindNor:  reduce(sim.Bit0, sim.Bit4.Or, true),
	KindNand: reduce(sim.Bit1, sim.Bit4.And, true),
	KindXor:  reduce(sim.Bit0, sim.Bit4.Xor, false),
	KindXnor: reduce(sim.Bit0, sim.Bit4.Xor, true),
	KindNot: func(in []sim.Bit4) sim.Bit4 {
		if len(in) == 0 {
			return sim.BitX
		}
		return in[0].Not()
	},
	KindEeq: func(in []sim.Bit4) sim.Bit4 {
		for i := 1; i < len(in); i++ {
			if in[i] != in[0] {
				return sim.Bit0
			}
		}
		return sim.Bit1
	},
	// inputs: a, b, sel
	KindMuxx: func(in []sim.Bit4) sim.Bit4 {
		var a, b, sel = sim.BitX, sim.BitX, sim.BitX
		switch len(in) {
		default:
			sel = in[2]
			fallthrough
		case 2:
			b = in[1]
			fallthrough
		case 1:
			a = in[0]
		case 0:
		}
		switch sel {
		case sim.Bit0:
			return a
		case sim.Bit1:
			return b
		}
		if a == b {
			return a
		}
		return sim.BitX
	},
}

// truthTables holds the tables of each table driven kind for 0 to 4 inputs.
var truthTables = func() map[Kind]*[sim.MaxPorts + 1]*Truth {
	m := make(map[Kind]*[sim.MaxPorts + 1]*Truth, len(tableFuncs))
	for k, f := range tableFuncs {
		var ts [sim.MaxPorts + 1]*Truth
		for arity := range ts {
			ts[arity] = MakeTruth(arity, f)
		}
		m[k] = &ts
	}
	return m
}()

// TruthTable returns the truth table for the given table driven kind and
// number of inputs. It returns nil if k is not table driven.
//
func TruthTable(k Kind, arity int) *Truth {
	ts := truthTables[k]
	if ts == nil || arity < 0 || arity > sim.MaxPorts {
		return nil
	}
	return ts[arity]
}

// Table is a table driven functor with up to 4 inputs. Each output bit is
// looked up independently from the matching bit of every input.
//
// The output has the size of the vector just received and is sent on every
// input event, changed or not.
//
type Table struct {
	name  string
	truth *Truth
	arity int
	in    [sim.MaxPorts]sim.Vector4
}

// NewTable returns a table functor using the given truth table, where the
// first arity ports take part in the lookup.
//
func NewTable(name string, t *Truth, arity int) *Table {
	return &Table{name: name, truth: t, arity: arity}
}

// RecvVec4 implements logicsim.Functor.
//
func (t *Table) RecvVec4(n *sim.Network, p sim.Ptr, v sim.Vector4) {
	t.in[p.Port] = v

	res := sim.NewVector4(v.Size())
	for idx := 0; idx < v.Size(); idx++ {
		var key uint8
		for pdx := sim.MaxPorts; pdx > 0; pdx-- {
			key <<= 2
			if pdx > t.arity {
				continue
			}
			in := t.in[pdx-1]
			if idx < in.Size() {
				key |= in.Value(idx).Code()
			} else {
				key |= sim.BitX.Code()
			}
		}
		res.SetBit(idx, t.truth.Lookup(key))
	}
	n.SendVec4(p.Net, res)
}

// RecvReal implements logicsim.Functor. Reals are ignored.
//
func (t *Table) RecvReal(n *sim.Network, p sim.Ptr, v float64) {}

func (t *Table) String() string { return t.name }
