package hexcoord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Urethramancer/hexagony/hexcoord"
)

func TestVectorTable(t *testing.T) {
	cases := []struct {
		dir  hexcoord.Direction
		want hexcoord.Point
	}{
		{hexcoord.NE, hexcoord.Point{Q: 1, R: -1}},
		{hexcoord.NW, hexcoord.Point{Q: 0, R: -1}},
		{hexcoord.W, hexcoord.Point{Q: -1, R: 0}},
		{hexcoord.SW, hexcoord.Point{Q: -1, R: 1}},
		{hexcoord.SE, hexcoord.Point{Q: 0, R: 1}},
		{hexcoord.E, hexcoord.Point{Q: 1, R: 0}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.dir.Vector(), tc.dir.String())
	}
}

func TestAddSub(t *testing.T) {
	a := hexcoord.Point{Q: 2, R: -3}
	b := hexcoord.Point{Q: -1, R: 5}
	assert.Equal(t, hexcoord.Point{Q: 1, R: 2}, a.Add(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
}

func TestCube(t *testing.T) {
	x, y, z := hexcoord.Point{Q: 2, R: 3}.Cube()
	assert.Equal(t, 2, x)
	assert.Equal(t, 3, z)
	assert.Equal(t, -5, y)
}

func TestApplyBranchSignDependent(t *testing.T) {
	assert.Equal(t, hexcoord.NW, hexcoord.Apply(hexcoord.W, hexcoord.BranchRight, true))
	assert.Equal(t, hexcoord.SW, hexcoord.Apply(hexcoord.W, hexcoord.BranchRight, false))
	assert.Equal(t, hexcoord.SE, hexcoord.Apply(hexcoord.E, hexcoord.BranchLeft, true))
	assert.Equal(t, hexcoord.NE, hexcoord.Apply(hexcoord.E, hexcoord.BranchLeft, false))
}

func TestApplyFullTable(t *testing.T) {
	cases := []struct {
		dir   hexcoord.Direction
		redir hexcoord.Redirect
		want  hexcoord.Direction
	}{
		{hexcoord.NE, hexcoord.MirrorHori, hexcoord.SE},
		{hexcoord.NE, hexcoord.MirrorVert, hexcoord.NW},
		{hexcoord.NE, hexcoord.MirrorForw, hexcoord.NE},
		{hexcoord.NE, hexcoord.MirrorBack, hexcoord.W},
		{hexcoord.NE, hexcoord.BranchLeft, hexcoord.SW},
		{hexcoord.NE, hexcoord.BranchRight, hexcoord.E},
		{hexcoord.SE, hexcoord.MirrorForw, hexcoord.W},
		{hexcoord.SW, hexcoord.MirrorBack, hexcoord.E},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, hexcoord.Apply(tc.dir, tc.redir, true))
	}
}
