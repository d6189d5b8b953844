// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"
	"strings"
)

// Strength is a drive strength level, from HiZ (no drive) to Supply.
//
type Strength uint8

// Drive strengths.
//
const (
	HiZ Strength = iota
	Small
	Medium
	Weak
	Large
	Pull
	Strong
	Supply
)

// StrongDrive is the default drive strength of gates. A gate with both
// strengths set to StrongDrive needs no strength handling.
//
const StrongDrive = Strong

var strengthNames = [...]string{"Hi", "Sm", "Me", "We", "La", "Pu", "St", "Su"}

func (s Strength) String() string {
	if int(s) < len(strengthNames) {
		return strengthNames[s]
	}
	return "Strength(" + strconv.Itoa(int(s)) + ")"
}

// Valid returns true if s is in the 0..7 range.
func (s Strength) Valid() bool { return s <= Supply }

// Scalar is a strength qualified four-state bit. Along with its value, it
// holds the strength with which it drives a net towards 0 (S0) and towards 1
// (S1). A definite 0 has S1 == HiZ, a definite 1 has S0 == HiZ, Z has both set
// to HiZ.
//
// The zero value is a 0 driven with HiZ strength, which is not a valid driven
// value; use the constructors.
//
type Scalar struct {
	val    Bit4
	s0, s1 Strength
}

// ScalarZ is an undriven scalar.
var ScalarZ = Scalar{val: BitZ}

// NewScalar returns a scalar driving b with strength s0 towards 0 and s1
// towards 1. Only the strengths relevant to b are retained. A HiZ strength on
// the driven side yields Z.
//
func NewScalar(b Bit4, s0, s1 Strength) Scalar {
	switch b {
	case Bit0:
		if s0 == HiZ {
			return ScalarZ
		}
		return Scalar{val: Bit0, s0: s0}
	case Bit1:
		if s1 == HiZ {
			return ScalarZ
		}
		return Scalar{val: Bit1, s1: s1}
	case BitX:
		if s0 == HiZ && s1 == HiZ {
			return ScalarZ
		}
		return Scalar{val: BitX, s0: s0, s1: s1}
	}
	return ScalarZ
}

// StrongScalar returns b driven with strong strength.
func StrongScalar(b Bit4) Scalar { return NewScalar(b, Strong, Strong) }

// Low returns a scalar that is either 0 with strength s or Z ("L").
// Its value is X.
//
func Low(s Strength) Scalar {
	if s == HiZ {
		return ScalarZ
	}
	return Scalar{val: BitX, s0: s}
}

// High returns a scalar that is either 1 with strength s or Z ("H").
// Its value is X.
//
func High(s Strength) Scalar {
	if s == HiZ {
		return ScalarZ
	}
	return Scalar{val: BitX, s1: s}
}

// Value returns the four-state value of s.
func (s Scalar) Value() Bit4 { return s.val }

// Strength0 returns the drive strength towards 0.
func (s Scalar) Strength0() Strength { return s.s0 }

// Strength1 returns the drive strength towards 1.
func (s Scalar) Strength1() Strength { return s.s1 }

// Map returns s with both strengths passed through f. Used to model strength
// degradation through transistors.
//
func (s Scalar) Map(f func(Strength) Strength) Scalar {
	if s.val == BitZ {
		return s
	}
	r := Scalar{val: s.val, s0: f(s.s0), s1: f(s.s1)}
	if r.s0 == HiZ && r.s1 == HiZ {
		return ScalarZ
	}
	return r
}

func (s Scalar) String() string {
	switch s.val {
	case Bit0:
		return s.s0.String() + "0"
	case Bit1:
		return s.s1.String() + "1"
	case BitZ:
		return "HiZ"
	}
	switch {
	case s.s1 == HiZ:
		return s.s0.String() + "L"
	case s.s0 == HiZ:
		return s.s1.String() + "H"
	}
	return s.s0.String() + s.s1.String() + "X"
}

// Resolve combines two drivers of the same net.
//
// Z yields the other driver. Otherwise the strongest drive on each side is
// retained. When only one side carries drive and some driver has a definite
// value on that side, that value wins even if the strongest drive comes from
// an L or H driver. When both sides carry drive, the value is the side with
// the strictly higher strength, provided a driver with a definite value
// supplies it. Equal opposing strengths, or a win supplied only by an
// ambiguous driver, give X.
//
// A definite result drives only its own side: the other strength is HiZ.
//
func Resolve(a, b Scalar) Scalar {
	switch {
	case a.val == BitZ:
		return b
	case b.val == BitZ:
		return a
	case a == b:
		return a
	}
	r := Scalar{val: BitX, s0: maxStrength(a.s0, b.s0), s1: maxStrength(a.s1, b.s1)}
	has0 := a.val == Bit0 || b.val == Bit0
	has1 := a.val == Bit1 || b.val == Bit1
	switch {
	case r.s1 == HiZ:
		if has0 {
			r.val = Bit0
		}
	case r.s0 == HiZ:
		if has1 {
			r.val = Bit1
		}
	case r.s0 > r.s1 && (a.val == Bit0 && a.s0 == r.s0 || b.val == Bit0 && b.s0 == r.s0):
		r.val = Bit0
	case r.s1 > r.s0 && (a.val == Bit1 && a.s1 == r.s1 || b.val == Bit1 && b.s1 == r.s1):
		r.val = Bit1
	}
	switch r.val {
	case Bit0:
		r.s1 = HiZ
	case Bit1:
		r.s0 = HiZ
	}
	return r
}

func maxStrength(a, b Strength) Strength {
	if a > b {
		return a
	}
	return b
}

// Vector8 is a vector of strength qualified bits.
//
type Vector8 []Scalar

// NewVector8 returns a vector of the given size, all bits set to Z.
//
func NewVector8(size int) Vector8 {
	v := make(Vector8, size)
	for i := range v {
		v[i] = ScalarZ
	}
	return v
}

// Vector8From converts v to a strength vector, driving every bit with
// strengths s0 and s1.
//
func Vector8From(v Vector4, s0, s1 Strength) Vector8 {
	r := make(Vector8, v.Size())
	for i := range r {
		r[i] = NewScalar(v.Value(i), s0, s1)
	}
	return r
}

// Size returns the number of bits in v.
func (v Vector8) Size() int { return len(v) }

// Reduce drops strength information.
//
func (v Vector8) Reduce() Vector4 {
	r := NewVector4(len(v))
	for i, s := range v {
		r.SetBit(i, s.val)
	}
	return r
}

// Eeq returns true if v and o are identical, strengths included.
//
func (v Vector8) Eeq(o Vector8) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

func (v Vector8) String() string {
	var b strings.Builder
	for i := len(v) - 1; i >= 0; i-- {
		if b.Len() > 0 {
			b.WriteRune(' ')
		}
		b.WriteString(v[i].String())
	}
	return b.String()
}
