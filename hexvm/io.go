package hexvm

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

// execReadByte implements ReadByte: reads one byte from input, or sets
// the current edge to -1 on EOF.
func (vm *Interpreter) execReadByte() error {
	b, err := vm.in.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			vm.mem.Set(big.NewInt(-1))
			return nil
		}
		return &InputError{Err: err}
	}
	vm.mem.Set(big.NewInt(int64(b)))
	return nil
}

// execReadInt implements ReadInt. It discards bytes until it finds a
// '+', a '-', or a digit; a '+' or an immediately-following '-' stop
// the prefix scan without consuming a digit (see the Open Question in
// §9: a bare '+' leaves the value at 0, which this preserves exactly).
// It then consumes as many further digits as are available.
func (vm *Interpreter) execReadInt() error {
	val := big.NewInt(0)
	sign := int64(1)

prefix:
	for {
		b, err := vm.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break prefix
			}
			return &InputError{Err: err}
		}
		switch {
		case b == '+':
			break prefix
		case b == '-':
			sign = -1
			break prefix
		case b >= '0' && b <= '9':
			val.SetInt64(int64(b - '0'))
			break prefix
		default:
			// discard and keep scanning
		}
	}

	for {
		b, err := vm.in.Peek(1)
		if err != nil {
			break
		}
		if b[0] < '0' || b[0] > '9' {
			break
		}
		val.Mul(val, big.NewInt(10))
		val.Add(val, big.NewInt(int64(b[0]-'0')))
		_, _ = vm.in.ReadByte()
	}

	val.Mul(val, big.NewInt(sign))
	vm.mem.Set(val)
	return nil
}

// execWriteByte implements WriteByte: writes the current edge modulo
// 256 as a single byte.
func (vm *Interpreter) execWriteByte() error {
	m := new(big.Int).Mod(vm.mem.Get(), big.NewInt(256))
	_, err := vm.out.Write([]byte{byte(m.Int64())})
	return err
}

// execWriteInt implements WriteInt: writes the current edge's signed
// decimal representation.
func (vm *Interpreter) execWriteInt() error {
	_, err := fmt.Fprint(vm.out, vm.mem.Get().String())
	return err
}
