package cpu

import (
	"errors"

	"github.com/ezrec/tiny13/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrStackEmpty         = errors.New(f("stack empty"))
	ErrStackFull          = errors.New(f("stack full"))
	ErrPortUnknown        = errors.New(f("port unknown"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrBitInvalid         = errors.New(f("bit invalid"))
	ErrMnemonicUnknown    = errors.New(f("mnemonic unknown"))
	ErrInterruptsDisabled = errors.New(f("interrupts are not allowed"))
	ErrVectorUnknown      = errors.New(f("interrupt vector unknown"))

	// Instruction decode errors
	ErrOpcodeUnknown = errors.New(f("opcode unknown"))
	ErrOperandRange  = errors.New(f("operand out of range"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrOrgSyntax          = errors.New(f(".org syntax"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("operand missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrAddressOverlap     = errors.New(f("address already assembled"))
	ErrBranchRange        = errors.New(f("branch target out of range"))
)

// ErrDecode reports a code word that matches no known instruction encoding.
type ErrDecode struct {
	Address uint16
	Word    uint16
}

func (err ErrDecode) Error() string {
	return f("%04x: bad opcode 0x%04x", err.Address, err.Word)
}

func (err ErrDecode) Unwrap() error {
	return ErrOpcodeUnknown
}

// ErrOpcode attaches the failing instruction to an execution error.
type ErrOpcode Instruction

func (eo ErrOpcode) Error() string {
	return f("instruction '%v'", Instruction(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
