package hexgrid

import "github.com/Urethramancer/hexagony/hexcoord"

// Kind enumerates every instruction the source grid can hold. It is a
// closed tagged variant: dispatch on Kind, never on the source
// character itself, once parsing is done.
type Kind int

const (
	Nop Kind = iota
	Terminate
	Letter
	Digit
	Increment
	Decrement
	Add
	Subtract
	Multiply
	Divide
	Modulo
	Negate
	ReadByte
	ReadInt
	WriteByte
	WriteInt
	Jump
	Redir
	IPPrev
	IPNext
	IPSelect
	MPLeft
	MPRight
	MPBackLeft
	MPBackRight
	MPReverse
	MPBranch
	MemCopy
)

// Op is one instruction placed in a grid cell. Letter and Digit carry
// their operand in Arg; Redir carries its kind in Redir.
type Op struct {
	Kind  Kind
	Arg   byte
	Redir hexcoord.Redirect
}

// Cell is the contents of one grid position: an instruction plus the
// per-cell debug flag set by a preceding backtick in source.
type Cell struct {
	Op    Op
	Debug bool
}

// Byte renders op back to the single source character that produces it.
// Used by template rendering (always Nop, so always '.') and by
// diagnostics.
func (op Op) Byte() byte {
	switch op.Kind {
	case Nop:
		return '.'
	case Terminate:
		return '@'
	case Letter:
		return op.Arg
	case Digit:
		return '0' + op.Arg
	case Increment:
		return ')'
	case Decrement:
		return '('
	case Add:
		return '+'
	case Subtract:
		return '-'
	case Multiply:
		return '*'
	case Divide:
		return ':'
	case Modulo:
		return '%'
	case Negate:
		return '~'
	case ReadByte:
		return ','
	case ReadInt:
		return '?'
	case WriteByte:
		return ';'
	case WriteInt:
		return '!'
	case Jump:
		return '$'
	case Redir:
		switch op.Redir {
		case hexcoord.MirrorHori:
			return '_'
		case hexcoord.MirrorVert:
			return '|'
		case hexcoord.MirrorForw:
			return '/'
		case hexcoord.MirrorBack:
			return '\\'
		case hexcoord.BranchLeft:
			return '<'
		case hexcoord.BranchRight:
			return '>'
		}
	case IPPrev:
		return '['
	case IPNext:
		return ']'
	case IPSelect:
		return '#'
	case MPLeft:
		return '{'
	case MPRight:
		return '}'
	case MPBackLeft:
		return '"'
	case MPBackRight:
		return '\''
	case MPReverse:
		return '='
	case MPBranch:
		return '^'
	case MemCopy:
		return '&'
	}
	return '?'
}
