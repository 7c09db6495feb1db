package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, program []string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(strings.Join(program, "\n")))
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, prog.Len())

	assert.Equal("0x3f", asm.Equate["SREG"])
	assert.Equal("0x0006", asm.Equate["TIM0_OVF_vect"])
}

func TestAssemblerBlink(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".equ LED, 3",
		"start:",
		"\tldi r16, 0x05 ; direction",
		"\tout DDRB, r16",
		"loop:\tsbi PORTB, LED",
		"\tcbi PORTB, LED",
		"\trjmp loop",
	}

	prog, err := assemble(t, program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(map[uint16]uint16{
		0x0000: 0xe005,
		0x0002: 0xbb07,
		0x0004: 0x9ac3,
		0x0006: 0x98c3,
		0x0008: 0xcffd,
	}, prog.Words)

	ins, ok := prog.Lookup(0x0008)
	assert.True(ok)
	assert.Equal(uint16(0x0004), ins.Target(0x0008))
}

func TestAssemblerAliases(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"clr r17",
		"eor r3, r3",
		"rol r1",
		"ldi r16, -1",
		"ldi r17, ~0x0f",
		"ldi r18, $(1 << 4 | SREG_Z)",
	}

	prog, err := assemble(t, program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(uint16(0x2711), prog.Words[0])
	assert.Equal(uint16(0x2433), prog.Words[2])
	assert.Equal(uint16(0x1c11), prog.Words[4])

	ins, _ := prog.Lookup(2)
	assert.Equal(Instruction{Mnemonic: OP_CLR, Rd: 3}, ins)

	ins, _ = prog.Lookup(4)
	assert.Equal(Instruction{Mnemonic: OP_ADC, Rd: 1, Rr: 1}, ins)

	ins, _ = prog.Lookup(6)
	assert.Equal(uint16(0xff), ins.K)

	ins, _ = prog.Lookup(8)
	assert.Equal(uint16(0xf0), ins.K)

	ins, _ = prog.Lookup(10)
	assert.Equal(uint16(0x11), ins.K)
}

func TestAssemblerBranches(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"rjmp main",
		".org TIM0_OVF_vect",
		"reti",
		"main:",
		"sei",
		"rcall sub",
		"wait: brne wait",
		"breq .+2",
		"rjmp 0x0000",
		"sub: ret",
	}

	prog, err := assemble(t, program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := map[uint16]string{
		0x0000: "rjmp\t0x0008",
		0x0006: "reti",
		0x0008: "sei",
		0x000a: "rcall\t0x0012",
		0x000c: "brne\t0x000c",
		0x000e: "breq\t0x0012",
		0x0010: "rjmp\t0x0000",
		0x0012: "ret",
	}

	assert.Equal(len(expected), prog.Len())
	for address, ins := range prog.Codes() {
		assert.Equal(expected[address], ins.Render(address), "%04x", address)
	}
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		program []string
		err     error
		lineno  int
	}){
		{[]string{"nop"}, ErrInstructionInvalid, 1},
		{[]string{"sei", "ldi r1, 5"}, ErrRegisterInvalid, 2},
		{[]string{"ldi r16"}, ErrOpcodeMissing, 1},
		{[]string{"ret r16"}, ErrOpcodeExtraArgs, 1},
		{[]string{"ldi r16, 0x100"}, ErrOperandRange, 1},
		{[]string{"bst r1, 8"}, ErrOperandRange, 1},
		{[]string{"mov r1, r32"}, ErrParseRegister("r32"), 1},
		{[]string{"ldi r16, zzz"}, ErrParseNumber("zzz"), 1},
		{[]string{"a:", "a:"}, ErrLabelDuplicate, 2},
		{[]string{".equ A 1", ".equ A 2"}, ErrEquateDuplicate, 2},
		{[]string{".equ A"}, ErrEquateSyntax, 1},
		{[]string{".org 3"}, ErrOrgSyntax, 1},
		{[]string{"sei", ".org 0", "cli"}, ErrAddressOverlap, 3},
		{[]string{"rjmp nowhere"}, ErrLabelMissing("nowhere"), 1},
		{[]string{"breq .+200"}, ErrBranchRange, 1},
		{[]string{"breq .+3"}, ErrBranchRange, 1},
	}

	for _, entry := range table {
		_, err := assemble(t, entry.program)
		assert.ErrorIs(err, entry.err, "%v", entry.program)

		var serr *ErrSyntax
		if assert.True(errors.As(err, &serr), "%v", entry.program) {
			assert.Equal(entry.lineno, serr.LineNo, "%v", entry.program)
		}
	}
}
