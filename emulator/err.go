package emulator

import (
	"errors"

	"github.com/ezrec/tiny13/cpu"
	"github.com/ezrec/tiny13/translate"
)

var f = translate.From

var (
	ErrNoCode     = errors.New(f("no code at address"))
	ErrValueRange = errors.New(f("value out of range"))
	ErrFlashRange = errors.New(f("code beyond end of flash"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc          uint16
	Instruction cpu.Instruction // OP_INVALID when there was no code at Pc.
	Err         error
}

func (err *ErrRuntime) Error() string {
	if err.Instruction.Mnemonic == cpu.OP_INVALID {
		return f("%04x: %v", err.Pc, err.Err)
	}
	return f("%04x: %v: %v", err.Pc, err.Instruction.Render(err.Pc), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
