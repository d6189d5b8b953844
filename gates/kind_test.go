// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates_test

import (
	"testing"

	"github.com/db47h/logicsim/gates"
	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	names := []string{"OR", "AND", "BUF", "BUFIF0", "BUFIF1", "NOTIF0", "NOTIF1", "BUFZ",
		"MUXR", "MUXX", "MUXZ", "NMOS", "PMOS", "RNMOS", "RPMOS", "EEQ", "NAND", "NOR",
		"NOT", "XNOR", "XOR"}
	assert.Len(t, gates.Kinds(), len(names))
	for _, n := range names {
		k, ok := gates.ParseKind(n)
		if assert.True(t, ok, n) {
			assert.Equal(t, n, k.String())
		}
	}
	for _, n := range []string{"or", "Xor", "DFF", ""} {
		_, ok := gates.ParseKind(n)
		assert.False(t, ok, n)
	}
	assert.Equal(t, "Kind(?)", gates.Kind(100).String())
}

func TestKind_StrengthAware(t *testing.T) {
	var aware []string
	for _, k := range gates.Kinds() {
		if k.StrengthAware() {
			aware = append(aware, k.String())
		}
	}
	assert.ElementsMatch(t, []string{"BUFIF0", "BUFIF1", "NOTIF0", "NOTIF1", "NMOS", "PMOS", "RNMOS", "RPMOS"}, aware)
}
