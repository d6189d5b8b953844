// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"testing"

	sim "github.com/db47h/logicsim"
	"github.com/stretchr/testify/assert"
)

func TestNewScalar(t *testing.T) {
	assert.Equal(t, sim.ScalarZ, sim.NewScalar(sim.Bit0, sim.HiZ, sim.Strong))
	assert.Equal(t, sim.ScalarZ, sim.NewScalar(sim.Bit1, sim.Strong, sim.HiZ))
	assert.Equal(t, sim.ScalarZ, sim.NewScalar(sim.BitZ, sim.Strong, sim.Strong))

	s := sim.NewScalar(sim.Bit0, sim.Pull, sim.Weak)
	assert.Equal(t, sim.Bit0, s.Value())
	assert.Equal(t, sim.Pull, s.Strength0())
	assert.Equal(t, sim.HiZ, s.Strength1())
	assert.Equal(t, "Pu0", s.String())
	assert.Equal(t, "St1", sim.StrongScalar(sim.Bit1).String())
	assert.Equal(t, "StWeX", sim.NewScalar(sim.BitX, sim.Strong, sim.Weak).String())
	assert.Equal(t, "HiZ", sim.ScalarZ.String())
}

func TestResolve(t *testing.T) {
	var (
		st0 = sim.StrongScalar(sim.Bit0)
		st1 = sim.StrongScalar(sim.Bit1)
		pu0 = sim.NewScalar(sim.Bit0, sim.Pull, sim.Pull)
		pu1 = sim.NewScalar(sim.Bit1, sim.Pull, sim.Pull)
		we0 = sim.NewScalar(sim.Bit0, sim.Weak, sim.Weak)
		we1 = sim.NewScalar(sim.Bit1, sim.Weak, sim.Weak)
		su0 = sim.NewScalar(sim.Bit0, sim.Supply, sim.Supply)
		stX = sim.StrongScalar(sim.BitX)
		l   = sim.Low(sim.Strong)
		h   = sim.High(sim.Pull)
		z   = sim.ScalarZ
	)
	data := []struct {
		name string
		a, b sim.Scalar
		val  sim.Bit4
	}{
		{"Z/Z", z, z, sim.BitZ},
		{"Z/St0", z, st0, sim.Bit0},
		{"St1/Z", st1, z, sim.Bit1},
		{"St0/St0", st0, st0, sim.Bit0},
		{"St0/St1", st0, st1, sim.BitX},
		{"St0/Pu1", st0, pu1, sim.Bit0},
		{"We1/Pu0", we1, pu0, sim.Bit0},
		{"We1/Pu1", we1, pu1, sim.Bit1},
		{"Su0/St1", su0, st1, sim.Bit0},
		{"StX/Pu1", stX, pu1, sim.BitX},
		{"L/Pu1", l, pu1, sim.BitX},
		{"L/St0", l, st0, sim.Bit0},
		{"H/St0", h, st0, sim.Bit0},
		{"H/We1", h, we1, sim.Bit1},
		{"L/We0", sim.Low(sim.Pull), we0, sim.Bit0},
		{"L/L", sim.Low(sim.Pull), sim.Low(sim.Weak), sim.BitX},
		{"H/L", h, sim.Low(sim.Weak), sim.BitX},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			assert.Equal(t, d.val, sim.Resolve(d.a, d.b).Value())
			assert.Equal(t, d.val, sim.Resolve(d.b, d.a).Value(), "not commutative")
		})
	}

	r := sim.Resolve(st0, pu1)
	assert.Equal(t, sim.Strong, r.Strength0())
	assert.Equal(t, sim.HiZ, r.Strength1())

	assert.Equal(t, "Pu1", sim.Resolve(h, we1).String())
	assert.Equal(t, "Pu0", sim.Resolve(sim.Low(sim.Pull), we0).String())
	assert.Equal(t, "PuL", sim.Resolve(sim.Low(sim.Pull), sim.Low(sim.Weak)).String())
	assert.Equal(t, "PuStX", sim.Resolve(pu0, sim.NewScalar(sim.BitX, sim.Weak, sim.Strong)).String())
}

// rmos degrades strengths the way a resistive transistor does.
func rmos(s sim.Strength) sim.Strength {
	switch s {
	case sim.HiZ, sim.Small:
		return s
	case sim.Medium:
		return sim.Small
	case sim.Weak, sim.Large:
		return sim.Medium
	case sim.Pull:
		return sim.Weak
	}
	return sim.Pull
}

func TestResolve_definiteStrengths(t *testing.T) {
	var (
		we0 = sim.NewScalar(sim.Bit0, sim.Weak, sim.Weak)
		la1 = sim.NewScalar(sim.Bit1, sim.Large, sim.Large)
		sm0 = sim.NewScalar(sim.Bit0, sim.Small, sim.Small)
	)
	r := sim.Resolve(we0, la1)
	assert.Equal(t, "La1", r.String())
	assert.Equal(t, sim.HiZ, r.Strength0())

	// the losing weak 0 must not come back once both sides are degraded
	r = r.Map(rmos)
	assert.Equal(t, "Me1", r.String())
	r = sim.Resolve(r, sm0)
	assert.Equal(t, "Me1", r.String())
	assert.Equal(t, sim.HiZ, r.Strength0())
}

func TestVector8(t *testing.T) {
	v := sim.Vector8From(sim.MustVector4("10xz"), sim.Pull, sim.Strong)
	assert.Equal(t, "St1 Pu0 PuStX HiZ", v.String())
	assert.Equal(t, "10xz", v.Reduce().String())
	assert.True(t, v.Eeq(sim.Vector8From(sim.MustVector4("10xz"), sim.Pull, sim.Strong)))
	assert.False(t, v.Eeq(sim.Vector8From(sim.MustVector4("10xz"), sim.Strong, sim.Strong)))
	assert.Equal(t, "zzz", sim.NewVector8(3).Reduce().String())
}

func TestStrength(t *testing.T) {
	assert.Equal(t, sim.Strength(6), sim.Strong)
	assert.Equal(t, sim.Strong, sim.StrongDrive)
	assert.True(t, sim.Supply.Valid())
	assert.False(t, sim.Strength(8).Valid())
	assert.Equal(t, "Su", sim.Supply.String())
}
