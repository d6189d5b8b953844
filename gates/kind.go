// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

// Kind identifies a functor kind.
//
type Kind uint8

// Functor kinds.
//
const (
	KindOr Kind = iota
	KindAnd
	KindBuf
	KindBufif0
	KindBufif1
	KindNotif0
	KindNotif1
	KindBufz
	KindMuxr
	KindMuxx
	KindMuxz
	KindNmos
	KindPmos
	KindRnmos
	KindRpmos
	KindEeq
	KindNand
	KindNor
	KindNot
	KindXnor
	KindXor

	kindCount
)

// device names, case sensitive.
var kindNames = [kindCount]string{
	KindOr:     "OR",
	KindAnd:    "AND",
	KindBuf:    "BUF",
	KindBufif0: "BUFIF0",
	KindBufif1: "BUFIF1",
	KindNotif0: "NOTIF0",
	KindNotif1: "NOTIF1",
	KindBufz:   "BUFZ",
	KindMuxr:   "MUXR",
	KindMuxx:   "MUXX",
	KindMuxz:   "MUXZ",
	KindNmos:   "NMOS",
	KindPmos:   "PMOS",
	KindRnmos:  "RNMOS",
	KindRpmos:  "RPMOS",
	KindEeq:    "EEQ",
	KindNand:   "NAND",
	KindNor:    "NOR",
	KindNot:    "NOT",
	KindXnor:   "XNOR",
	KindXor:    "XOR",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, n := range kindNames {
		m[n] = Kind(k)
	}
	return m
}()

// ParseKind returns the Kind for the given device name. Names are case
// sensitive: "OR" is valid, "or" is not.
//
func ParseKind(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// Kinds returns all functor kinds.
//
func Kinds() []Kind {
	ks := make([]Kind, kindCount)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// Valid returns true if k is a known kind.
func (k Kind) Valid() bool { return k < kindCount }

func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(?)"
	}
	return kindNames[k]
}

// StrengthAware returns true for kinds whose output carries strength
// information: tri-state drivers and transistors.
//
func (k Kind) StrengthAware() bool {
	switch k {
	case KindBufif0, KindBufif1, KindNotif0, KindNotif1,
		KindNmos, KindPmos, KindRnmos, KindRpmos:
		return true
	}
	return false
}
