// Package hexvm implements the Hexagony interpreter: the grid, the
// memory, the six instruction pointers, and the fetch/execute/advance
// loop that ties them together.
package hexvm

import (
	"bufio"
	"io"
	"log"
	"math/big"

	"github.com/Urethramancer/hexagony/edgemem"
	"github.com/Urethramancer/hexagony/hexcoord"
	"github.com/Urethramancer/hexagony/hexgrid"
)

// IP is an instruction pointer: its current grid position and the
// direction it is traveling.
type IP struct {
	Coords hexcoord.Point
	Dir    hexcoord.Direction
}

// Interpreter owns the grid, the memory, the six IPs, the active-IP
// index, the tick counter, and the buffered byte input. It is
// constructed once per run and is not reused across programs.
type Interpreter struct {
	grid   *hexgrid.Grid
	mem    *edgemem.Memory
	ips    [6]IP
	active int
	tick   uint64

	debugLevel int
	diag       *log.Logger

	in  *bufio.Reader
	out io.Writer
}

// cornerIPs returns the six initial IP positions and directions for a
// grid of the given side length, in the canonical order of §4.5.
func cornerIPs(size int) [6]IP {
	s := size
	return [6]IP{
		{Coords: hexcoord.Point{Q: 0, R: -s + 1}, Dir: hexcoord.E},
		{Coords: hexcoord.Point{Q: s - 1, R: -s + 1}, Dir: hexcoord.SE},
		{Coords: hexcoord.Point{Q: s - 1, R: 0}, Dir: hexcoord.SW},
		{Coords: hexcoord.Point{Q: 0, R: s - 1}, Dir: hexcoord.W},
		{Coords: hexcoord.Point{Q: -s + 1, R: s - 1}, Dir: hexcoord.NW},
		{Coords: hexcoord.Point{Q: -s + 1, R: 0}, Dir: hexcoord.NE},
	}
}

// New parses src and returns a ready-to-run Interpreter. debugLevel
// selects diagnostic verbosity (0 silent, 1 per debug-flagged cell, 2
// every tick); diagnostics are written to diag. stdin feeds ReadByte
// and ReadInt; stdout receives WriteByte and WriteInt output.
func New(src string, debugLevel int, stdin io.Reader, stdout io.Writer, diag io.Writer) (*Interpreter, error) {
	grid, err := hexgrid.Parse(src)
	if err != nil {
		return nil, err
	}
	logger := log.New(diag, "", 0)
	return &Interpreter{
		grid:       grid,
		mem:        edgemem.New(),
		ips:        cornerIPs(grid.Size()),
		active:     0,
		tick:       0,
		debugLevel: debugLevel,
		diag:       logger,
		in:         bufio.NewReader(stdin),
		out:        stdout,
	}, nil
}

// Run executes the fetch/execute/advance loop until a Terminate
// instruction is reached or a fatal error occurs.
func (vm *Interpreter) Run() error {
	for {
		done, err := vm.step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Step runs exactly one tick and reports whether Terminate has fired.
// It exists alongside Run so callers (and tests) can cap execution by
// tick count instead of running to completion.
func (vm *Interpreter) Step() (done bool, err error) {
	return vm.step()
}

// step runs exactly one tick: fetch, optional diagnostics, dispatch,
// advance, and active-IP switch. It reports done=true once Terminate
// has executed.
func (vm *Interpreter) step() (done bool, err error) {
	cell := vm.grid.Get(vm.ips[vm.active].Coords)
	dbgTick := vm.debugLevel > 1 || (vm.debugLevel == 1 && cell.Debug)
	if dbgTick {
		vm.logBefore(cell)
	}

	nextActive := vm.active
	terminated := false

	switch cell.Op.Kind {
	case hexgrid.Nop:
		// no-op
	case hexgrid.Terminate:
		terminated = true
	case hexgrid.Letter:
		vm.mem.Current().SetUint64(uint64(cell.Op.Arg))
	case hexgrid.Digit:
		v := vm.mem.Current()
		v.Mul(v, big.NewInt(10))
		v.Add(v, big.NewInt(int64(cell.Op.Arg)))
	case hexgrid.Increment:
		v := vm.mem.Current()
		v.Add(v, big.NewInt(1))
	case hexgrid.Decrement:
		v := vm.mem.Current()
		v.Sub(v, big.NewInt(1))
	case hexgrid.Add:
		vm.mem.Set(new(big.Int).Add(vm.mem.GetLeft(), vm.mem.GetRight()))
	case hexgrid.Subtract:
		vm.mem.Set(new(big.Int).Sub(vm.mem.GetLeft(), vm.mem.GetRight()))
	case hexgrid.Multiply:
		vm.mem.Set(new(big.Int).Mul(vm.mem.GetLeft(), vm.mem.GetRight()))
	case hexgrid.Divide:
		right := vm.mem.GetRight()
		if right.Sign() == 0 {
			return false, &ZeroDivisionError{}
		}
		vm.mem.Set(floorDiv(vm.mem.GetLeft(), right))
	case hexgrid.Modulo:
		left, right := vm.mem.GetLeft(), vm.mem.GetRight()
		if right.Sign() == 0 {
			return false, &ZeroDivisionError{}
		}
		vm.mem.Set(floorMod(left, right))
	case hexgrid.Negate:
		v := vm.mem.Current()
		v.Neg(v)
	case hexgrid.ReadByte:
		if err := vm.execReadByte(); err != nil {
			return false, err
		}
	case hexgrid.ReadInt:
		if err := vm.execReadInt(); err != nil {
			return false, err
		}
	case hexgrid.WriteByte:
		if err := vm.execWriteByte(); err != nil {
			return false, err
		}
	case hexgrid.WriteInt:
		if err := vm.execWriteInt(); err != nil {
			return false, err
		}
	case hexgrid.Jump:
		vm.advanceIP()
	case hexgrid.Redir:
		ip := &vm.ips[vm.active]
		ip.Dir = hexcoord.Apply(ip.Dir, cell.Op.Redir, vm.mem.Get().Sign() > 0)
	case hexgrid.IPPrev:
		nextActive = (vm.active + 5) % 6
	case hexgrid.IPNext:
		nextActive = (vm.active + 1) % 6
	case hexgrid.IPSelect:
		nextActive = euclidMod6(vm.mem.Get())
	case hexgrid.MPLeft:
		vm.mem.MoveLeft()
	case hexgrid.MPRight:
		vm.mem.MoveRight()
	case hexgrid.MPBackLeft:
		vm.mem.BackLeft()
	case hexgrid.MPBackRight:
		vm.mem.BackRight()
	case hexgrid.MPReverse:
		vm.mem.Reverse()
	case hexgrid.MPBranch:
		vm.mem.Branch()
	case hexgrid.MemCopy:
		vm.mem.Copy()
	}

	if dbgTick && terminated {
		vm.diag.Printf("Memory:\n%s", vm.mem)
	}
	if terminated {
		return true, nil
	}

	if dbgTick {
		vm.diag.Printf("New direction: %s", vm.ips[vm.active].Dir)
		vm.diag.Printf("Memory:\n%s", vm.mem)
	}

	vm.advanceIP()
	vm.active = nextActive
	vm.tick++
	return false, nil
}

func (vm *Interpreter) logBefore(cell hexgrid.Cell) {
	vm.diag.Printf("")
	vm.diag.Printf("Tick %d:", vm.tick)
	vm.diag.Printf("IPs (! indicates active IP): ")
	for i, ip := range vm.ips {
		marker := ' '
		if i == vm.active {
			marker = '!'
		}
		vm.diag.Printf("%c %d: %s, %s", marker, i, ip.Coords, ip.Dir)
	}
	vm.diag.Printf("Command: %c", cell.Op.Byte())
}

// euclidMod6 returns v mod 6 as a non-negative index in 0..5, using
// Euclidean (always-nonnegative) remainder semantics.
func euclidMod6(v *big.Int) int {
	m := new(big.Int).Mod(v, big.NewInt(6))
	return int(m.Int64())
}

// floorDiv returns left/right truncated toward negative infinity.
func floorDiv(left, right *big.Int) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(left, right, r)
	if r.Sign() != 0 && (left.Sign() < 0) != (right.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// floorMod returns the remainder of left/right with the sign of
// right, per §4.5's Modulo semantics.
func floorMod(left, right *big.Int) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(left, right, r)
	if r.Sign() != 0 && (left.Sign() < 0) != (right.Sign() < 0) {
		r.Add(r, right)
	}
	return r
}
