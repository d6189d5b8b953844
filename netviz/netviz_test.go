// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netviz_test

import (
	"bytes"
	"testing"

	sim "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/gates"
	"github.com/db47h/logicsim/netviz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	n := sim.NewNetwork()
	b := gates.NewBuilder(n)
	require.NoError(t, b.Add("nand", gates.KindNand, 1, nil, sim.Strong, sim.Strong, gates.ConstBits("1"), gates.Label("nand")))
	require.NoError(t, b.Add("drv", gates.KindBufif1, 1, nil, sim.Pull, sim.Pull, gates.Label("nand"), gates.ConstBits("1")))
	require.NoError(t, b.Finish())

	assert.Equal(t, "#0 nand", netviz.NodeName(n, 0))
	assert.Equal(t, "#1 C4<1>", netviz.NodeName(n, 1))

	var buf bytes.Buffer
	require.NoError(t, netviz.Render(&buf, n, "test"))
	out := buf.String()
	assert.Contains(t, out, "<title>test</title>")
	assert.Contains(t, out, `"roam":true`)
	for _, name := range []string{"#0 nand", "#2 drv", "#4 drv.drv"} {
		assert.Contains(t, out, name)
	}
}
