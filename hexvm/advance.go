package hexvm

import "github.com/Urethramancer/hexagony/hexcoord"

// advanceIP moves the active IP one cell along its current direction,
// wrapping at the hexagon's edges and corners per §4.5. A side-1 grid
// never moves: its sole cell is always re-entered.
func (vm *Interpreter) advanceIP() {
	size := vm.grid.Size()
	if size == 1 {
		return
	}

	ip := &vm.ips[vm.active]
	delta := ip.Dir.Vector()
	moved := ip.Coords.Add(delta)
	x, y, z := moved.Cube()

	xBig := abs(x) >= size
	yBig := abs(y) >= size
	zBig := abs(z) >= size
	if !xBig && !yBig && !zBig {
		ip.Coords = moved
		return
	}

	// Pre-move axial coords are used to compute the wrapped destination.
	q, r := ip.Coords.Q, ip.Coords.R
	positive := vm.mem.Get().Sign() > 0
	ip.Coords = wrapDestination(q, r, xBig, yBig, zBig, positive)
}

// wrapDestination implements the wrap table of §4.5. Exactly one or
// two of x/y/z are out of range for any single-step move across a
// regular hex; the all-in-range and all-out-of-range combinations are
// unreachable by construction.
func wrapDestination(q, r int, xBig, yBig, zBig, positive bool) hexcoord.Point {
	switch {
	case !xBig && !yBig && zBig:
		return hexcoord.Point{Q: q + r, R: -r}
	case !xBig && yBig && !zBig:
		return hexcoord.Point{Q: -r, R: -q}
	case xBig && !yBig && !zBig:
		return hexcoord.Point{Q: -q, R: q + r}
	case !xBig && yBig && zBig:
		if positive {
			return hexcoord.Point{Q: -r, R: -q}
		}
		return hexcoord.Point{Q: q + r, R: -r}
	case xBig && !yBig && zBig:
		if positive {
			return hexcoord.Point{Q: q + r, R: -r}
		}
		return hexcoord.Point{Q: -q, R: q + r}
	default: // xBig && yBig && !zBig
		if positive {
			return hexcoord.Point{Q: -q, R: q + r}
		}
		return hexcoord.Point{Q: -r, R: -q}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
