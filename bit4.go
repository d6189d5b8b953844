// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// Bit4 is a four-state logic value.
//
// The numeric values of the constants are part of the package contract: truth
// tables used by table driven functors are indexed with them. Use Code and
// FromCode to convert between a Bit4 and its table code, never a plain cast.
//
type Bit4 uint8

// Four-state values.
//
const (
	Bit0 Bit4 = iota // logic 0, code 0
	Bit1             // logic 1, code 1
	BitX             // unknown, code 2
	BitZ             // high impedance, code 3
)

// Code returns the 2 bit table code for b.
//
//	0 -> 0, 1 -> 1, X -> 2, Z -> 3
//
func (b Bit4) Code() uint8 { return uint8(b) & 3 }

// FromCode returns the Bit4 encoded by the two low bits of c.
// It is the inverse of Code.
//
func FromCode(c uint8) Bit4 { return Bit4(c & 3) }

// IsDefined returns true if b is either 0 or 1.
func (b Bit4) IsDefined() bool { return b == Bit0 || b == Bit1 }

func (b Bit4) String() string {
	return string("01xz"[b&3])
}

// Not returns the logical inverse of b. X and Z both yield X.
//
func (b Bit4) Not() Bit4 {
	switch b {
	case Bit0:
		return Bit1
	case Bit1:
		return Bit0
	}
	return BitX
}

// And returns the four-state AND of a and b. A 0 on either side dominates;
// Z is read as X.
//
func (b Bit4) And(o Bit4) Bit4 {
	switch {
	case b == Bit0 || o == Bit0:
		return Bit0
	case b == Bit1 && o == Bit1:
		return Bit1
	}
	return BitX
}

// Or returns the four-state OR of a and b. A 1 on either side dominates;
// Z is read as X.
//
func (b Bit4) Or(o Bit4) Bit4 {
	switch {
	case b == Bit1 || o == Bit1:
		return Bit1
	case b == Bit0 && o == Bit0:
		return Bit0
	}
	return BitX
}

// Xor returns the four-state XOR of a and b. Any undefined operand yields X.
//
func (b Bit4) Xor(o Bit4) Bit4 {
	if !b.IsDefined() || !o.IsDefined() {
		return BitX
	}
	return b ^ o
}
