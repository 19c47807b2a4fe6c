// Package edgemem implements Hexagony's memory model: a sparse
// hexagonal lattice of arbitrary-precision integers indexed by edge,
// traversed by a single directed memory pointer (MP).
package edgemem

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Edge names one of the three edges of a hexagon that have no other
// canonical owner: every hex edge belongs to exactly one of its two
// adjacent hexagons' NE/E/SE edges.
type Edge int

const (
	NE Edge = iota
	E
	SE
)

func (e Edge) String() string {
	switch e {
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	default:
		return "?"
	}
}

// Rot is the chirality of the memory pointer: it determines which of
// the two edges adjacent to the current one is "left" and which is
// "right".
type Rot int

const (
	CW Rot = iota
	CCW
)

// Index identifies a memory edge by the axial coordinates of its
// westward-adjacent hexagon plus which of that hexagon's three edges
// it names.
type Index struct {
	Q, R int
	E    Edge
}

// Memory is the hexagonal edge-indexed lattice described in §4.4:
// cells default to zero and are created lazily on first write, and a
// single directed pointer (mp, rot) names the current edge.
type Memory struct {
	cells map[Index]*big.Int
	mp    Index
	rot   Rot
}

// New returns a Memory with the pointer at its initial position
// (q=0, r=0, e=E) with CCW chirality, and no cells populated.
func New() *Memory {
	return &Memory{
		cells: make(map[Index]*big.Int),
		mp:    Index{Q: 0, R: 0, E: E},
		rot:   CCW,
	}
}

// leftIndex returns the index and resulting chirality of the left
// neighbor of the current edge, per the table in §4.4.
func leftIndex(mp Index, rot Rot) (Index, Rot) {
	q, r, e := mp.Q, mp.R, mp.E
	switch {
	case e == NE && rot == CCW:
		return Index{q, r - 1, SE}, CW
	case e == NE && rot == CW:
		return Index{q + 1, r - 1, SE}, CCW
	case e == E && rot == CCW:
		return Index{q, r, NE}, CCW
	case e == E && rot == CW:
		return Index{q, r + 1, NE}, CW
	case e == SE && rot == CCW:
		return Index{q, r, E}, CCW
	default: // SE, CW
		return Index{q - 1, r + 1, E}, CW
	}
}

// rightIndex returns the index and resulting chirality of the right
// neighbor of the current edge, per the table in §4.4.
func rightIndex(mp Index, rot Rot) (Index, Rot) {
	q, r, e := mp.Q, mp.R, mp.E
	switch {
	case e == NE && rot == CCW:
		return Index{q, r - 1, E}, CCW
	case e == NE && rot == CW:
		return Index{q, r, E}, CW
	case e == E && rot == CCW:
		return Index{q + 1, r - 1, SE}, CCW
	case e == E && rot == CW:
		return Index{q, r, SE}, CW
	case e == SE && rot == CCW:
		return Index{q, r + 1, NE}, CW
	default: // SE, CW
		return Index{q - 1, r + 1, NE}, CCW
	}
}

// at returns the value stored at idx, or zero if the edge has never
// been written.
func (m *Memory) at(idx Index) *big.Int {
	if v, ok := m.cells[idx]; ok {
		return v
	}
	return big.NewInt(0)
}

// Get returns the value of the current edge.
func (m *Memory) Get() *big.Int {
	return m.at(m.mp)
}

// Current returns the live, mutable *big.Int backing the current edge,
// allocating a zero entry on first access. Used for in-place updates
// (Increment, Decrement, Digit accumulation, Letter, Negate) that would
// otherwise need a read-modify-Set round trip.
func (m *Memory) Current() *big.Int {
	if v, ok := m.cells[m.mp]; ok {
		return v
	}
	v := big.NewInt(0)
	m.cells[m.mp] = v
	return v
}

// GetLeft returns the value of the left neighbor edge.
func (m *Memory) GetLeft() *big.Int {
	idx, _ := leftIndex(m.mp, m.rot)
	return m.at(idx)
}

// GetRight returns the value of the right neighbor edge.
func (m *Memory) GetRight() *big.Int {
	idx, _ := rightIndex(m.mp, m.rot)
	return m.at(idx)
}

// Set stores v at the current edge. v is not aliased further by
// Memory; callers must not mutate it afterward.
func (m *Memory) Set(v *big.Int) {
	m.cells[m.mp] = v
}

// MoveLeft relocates the MP to the left neighbor edge.
func (m *Memory) MoveLeft() {
	m.mp, m.rot = leftIndex(m.mp, m.rot)
}

// MoveRight relocates the MP to the right neighbor edge.
func (m *Memory) MoveRight() {
	m.mp, m.rot = rightIndex(m.mp, m.rot)
}

// Reverse toggles the MP's chirality in place.
func (m *Memory) Reverse() {
	if m.rot == CW {
		m.rot = CCW
	} else {
		m.rot = CW
	}
}

// BackLeft moves the MP backwards to the left: reverse, move right,
// reverse. It exactly undoes MoveLeft, restoring both mp and rot. From
// an SE edge it leaves rot flipped, because MoveRight flips rot there.
func (m *Memory) BackLeft() {
	m.Reverse()
	m.MoveRight()
	m.Reverse()
}

// BackRight moves the MP backwards to the right: reverse, move left,
// reverse. It exactly undoes MoveRight, restoring both mp and rot. From
// an NE edge it leaves rot flipped, because MoveLeft flips rot there.
func (m *Memory) BackRight() {
	m.Reverse()
	m.MoveLeft()
	m.Reverse()
}

// Branch moves the MP to the right neighbor if the current edge is
// positive, otherwise to the left neighbor.
func (m *Memory) Branch() {
	if m.Get().Sign() > 0 {
		m.MoveRight()
	} else {
		m.MoveLeft()
	}
}

// Copy sets the current edge to the right neighbor's value if the
// current edge is positive, otherwise to the left neighbor's value.
func (m *Memory) Copy() {
	if m.Get().Sign() > 0 {
		m.Set(new(big.Int).Set(m.GetRight()))
	} else {
		m.Set(new(big.Int).Set(m.GetLeft()))
	}
}

// String dumps every populated edge, sorted for deterministic output,
// used only by the debug-diagnostics path.
func (m *Memory) String() string {
	type kv struct {
		idx Index
		v   *big.Int
	}
	entries := make([]kv, 0, len(m.cells))
	for idx, v := range m.cells {
		entries = append(entries, kv{idx, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].idx, entries[j].idx
		if a.Q != b.Q {
			return a.Q < b.Q
		}
		if a.R != b.R {
			return a.R < b.R
		}
		return a.E < b.E
	})
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "(%d, %d, %s): %s\n", e.idx.Q, e.idx.R, e.idx.E, e.v.String())
	}
	return b.String()
}
