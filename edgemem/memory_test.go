package edgemem_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Urethramancer/hexagony/edgemem"
)

func TestInitialState(t *testing.T) {
	m := edgemem.New()
	assert.Equal(t, big.NewInt(0), m.Get())
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	m := edgemem.New()
	before := m.GetLeft()
	m.Reverse()
	m.Reverse()
	assert.Equal(t, before, m.GetLeft())
}

func TestCurrentIsLiveAndLazilyAllocated(t *testing.T) {
	m := edgemem.New()
	v := m.Current()
	v.SetInt64(11)
	assert.Equal(t, big.NewInt(11), m.Get())
}

func TestSetStoresTheExactPointerHandedToIt(t *testing.T) {
	m := edgemem.New()
	v := big.NewInt(9)
	m.Set(v)
	v.SetInt64(100)
	assert.Equal(t, big.NewInt(100), m.Get(), "Set stores the same pointer the caller handed it, matching Memory::set's move semantics")
}

func TestBranchPicksRightWhenPositive(t *testing.T) {
	m := edgemem.New()
	m.Current().SetInt64(1)
	right := m.GetRight()
	m.Branch()
	assert.Equal(t, right, m.Get())
}

func TestBranchPicksLeftWhenNotPositive(t *testing.T) {
	m := edgemem.New()
	left := m.GetLeft()
	m.Branch() // current edge defaults to 0, not positive
	assert.Equal(t, left, m.Get())
}

func TestCopyFromLeftWhenNotPositive(t *testing.T) {
	m := edgemem.New()
	m.MoveLeft()
	m.Current().SetInt64(77)
	m.BackLeft() // BackLeft undoes MoveLeft, returning to the origin edge
	m.Copy()     // current (0) is not positive: copies left neighbour
	assert.Equal(t, big.NewInt(77), m.Get())
}

func TestMoveLeftThenBackLeftIsIdentity(t *testing.T) {
	m := edgemem.New()
	m.Current().SetInt64(7)
	m.MoveLeft()
	m.BackLeft()
	assert.Equal(t, big.NewInt(7), m.Get())
}

func TestMoveRightThenBackRightIsIdentity(t *testing.T) {
	m := edgemem.New()
	m.Current().SetInt64(9)
	m.MoveRight()
	m.BackRight()
	assert.Equal(t, big.NewInt(9), m.Get())
}
