// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strings"

	"github.com/pkg/errors"
)

// Vector4 is a fixed size vector of four-state bits. The size is set at
// creation and never changes; bit values are mutable.
//
// Bits are packed four per byte. Bit 0 is the least significant bit.
//
// The zero value is an empty vector.
//
type Vector4 struct {
	size int
	bits []byte
}

// NewVector4 returns a vector of the given size with all bits set to X.
//
func NewVector4(size int) Vector4 {
	return NewVector4Fill(size, BitX)
}

// NewVector4Fill returns a vector of the given size with all bits set to b.
//
func NewVector4Fill(size int, b Bit4) Vector4 {
	if size < 0 {
		size = 0
	}
	v := Vector4{size: size, bits: make([]byte, (size+3)/4)}
	c := b.Code()
	fill := c | c<<2 | c<<4 | c<<6
	for i := range v.bits {
		v.bits[i] = fill
	}
	return v
}

// Vector4Of returns a new vector holding the given bits, bits[0] being the
// least significant bit.
//
func Vector4Of(bits ...Bit4) Vector4 {
	v := NewVector4(len(bits))
	for i, b := range bits {
		v.SetBit(i, b)
	}
	return v
}

// ParseVector4 parses a vector literal made of the characters 0, 1, x, z
// (case insensitive) and underscores used as separators. The most
// significant bit comes first, as in "10xz".
//
func ParseVector4(s string) (Vector4, error) {
	s = strings.Replace(s, "_", "", -1)
	v := NewVector4(len(s))
	for i, r := range s {
		var b Bit4
		switch r {
		case '0':
			b = Bit0
		case '1':
			b = Bit1
		case 'x', 'X':
			b = BitX
		case 'z', 'Z':
			b = BitZ
		default:
			return Vector4{}, errors.Errorf("in %q at pos %d: invalid bit value %q", s, i+1, r)
		}
		v.SetBit(len(s)-1-i, b)
	}
	return v, nil
}

// MustVector4 is like ParseVector4 but panics on error.
//
func MustVector4(s string) Vector4 {
	v, err := ParseVector4(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Size returns the number of bits in v.
func (v Vector4) Size() int { return v.size }

// Value returns the value of bit i.
//
func (v Vector4) Value(i int) Bit4 {
	return FromCode(v.bits[i>>2] >> (uint(i&3) * 2))
}

// SetBit sets the value of bit i.
//
func (v Vector4) SetBit(i int, b Bit4) {
	sh := uint(i&3) * 2
	p := &v.bits[i>>2]
	*p = *p&^(3<<sh) | b.Code()<<sh
}

// Copy returns a deep copy of v. Vectors share their storage on assignment.
// Vectors sent through a network are never modified after sending, so
// receivers may retain them as is, but must Copy before modifying.
//
func (v Vector4) Copy() Vector4 {
	c := Vector4{size: v.size, bits: make([]byte, len(v.bits))}
	copy(c.bits, v.bits)
	return c
}

// ChangeZ2X rewrites every Z bit to X in place.
//
func (v Vector4) ChangeZ2X() {
	for i := 0; i < v.size; i++ {
		if v.Value(i) == BitZ {
			v.SetBit(i, BitX)
		}
	}
}

// Eeq returns true if v and o have the same size and the exact same bit
// pattern. X and Z are compared like any other value.
//
func (v Vector4) Eeq(o Vector4) bool {
	if v.size != o.size {
		return false
	}
	for i := 0; i < v.size; i++ {
		if v.Value(i) != o.Value(i) {
			return false
		}
	}
	return true
}

// HasXZ returns true if any bit in v is X or Z.
//
func (v Vector4) HasXZ() bool {
	for i := 0; i < v.size; i++ {
		if !v.Value(i).IsDefined() {
			return true
		}
	}
	return false
}

// Uint64 returns the value of v as an unsigned integer. ok is false if v
// contains X or Z bits or is wider than 64 bits.
//
func (v Vector4) Uint64() (n uint64, ok bool) {
	if v.size > 64 {
		return 0, false
	}
	for i := v.size - 1; i >= 0; i-- {
		b := v.Value(i)
		if !b.IsDefined() {
			return 0, false
		}
		n = n<<1 | uint64(b)
	}
	return n, true
}

// String returns v as a vector literal, most significant bit first.
//
func (v Vector4) String() string {
	var b strings.Builder
	for i := v.size - 1; i >= 0; i-- {
		b.WriteString(v.Value(i).String())
	}
	return b.String()
}
