package cpu

// Mnemonic is an instruction name.
//
//go:generate go tool stringer -linecomment -type=Mnemonic
type Mnemonic int

const (
	OP_INVALID = Mnemonic(0)  // invalid
	OP_ADC     = Mnemonic(1)  // adc
	OP_ADD     = Mnemonic(2)  // add
	OP_AND     = Mnemonic(3)  // and
	OP_ANDI    = Mnemonic(4)  // andi
	OP_BLD     = Mnemonic(5)  // bld
	OP_BRCC    = Mnemonic(6)  // brcc
	OP_BRCS    = Mnemonic(7)  // brcs
	OP_BREQ    = Mnemonic(8)  // breq
	OP_BRNE    = Mnemonic(9)  // brne
	OP_BST     = Mnemonic(10) // bst
	OP_CBI     = Mnemonic(11) // cbi
	OP_CLI     = Mnemonic(12) // cli
	OP_CLR     = Mnemonic(13) // clr
	OP_COM     = Mnemonic(14) // com
	OP_CPI     = Mnemonic(15) // cpi
	OP_DEC     = Mnemonic(16) // dec
	OP_EOR     = Mnemonic(17) // eor
	OP_IN      = Mnemonic(18) // in
	OP_LDI     = Mnemonic(19) // ldi
	OP_MOV     = Mnemonic(20) // mov
	OP_OR      = Mnemonic(21) // or
	OP_ORI     = Mnemonic(22) // ori
	OP_OUT     = Mnemonic(23) // out
	OP_POP     = Mnemonic(24) // pop
	OP_PUSH    = Mnemonic(25) // push
	OP_RCALL   = Mnemonic(26) // rcall
	OP_RET     = Mnemonic(27) // ret
	OP_RETI    = Mnemonic(28) // reti
	OP_RJMP    = Mnemonic(29) // rjmp
	OP_ROL     = Mnemonic(30) // rol
	OP_ROR     = Mnemonic(31) // ror
	OP_SBI     = Mnemonic(32) // sbi
	OP_SBIC    = Mnemonic(33) // sbic
	OP_SBRC    = Mnemonic(34) // sbrc
	OP_SBRS    = Mnemonic(35) // sbrs
	OP_SEI     = Mnemonic(36) // sei

	mnemonicCount = 37
)

// MnemonicByName returns the mnemonic with the given name.
func MnemonicByName(name string) (mn Mnemonic, ok bool) {
	for n := range mnemonicCount {
		mn = Mnemonic(n)
		if mn != OP_INVALID && mn.String() == name {
			ok = true
			return
		}
	}
	mn = OP_INVALID
	return
}

// Shape is the operand layout of an instruction.
type Shape int

const (
	SHAPE_NONE  = Shape(0)  // no operands
	SHAPE_RD    = Shape(1)  // rd
	SHAPE_RD_RR = Shape(2)  // rd, rr
	SHAPE_RD_K  = Shape(3)  // rd (r16-r31), K
	SHAPE_RD_B  = Shape(4)  // rd, b
	SHAPE_RR_B  = Shape(5)  // rr, b
	SHAPE_A_B   = Shape(6)  // A (0-31), b
	SHAPE_A_RR  = Shape(7)  // A (0-63), rr
	SHAPE_RD_A  = Shape(8)  // rd, A (0-63)
	SHAPE_K12   = Shape(9)  // 12 bit relative word offset
	SHAPE_K7    = Shape(10) // 7 bit relative word offset
)

// Width returns the bit width of a relative offset shape.
func (sh Shape) Width() uint {
	switch sh {
	case SHAPE_K12:
		return 12
	case SHAPE_K7:
		return 7
	}
	return 0
}

// Instruction is a decoded instruction. Which operand fields are valid
// depends on the Shape of the Mnemonic.
type Instruction struct {
	Mnemonic Mnemonic
	Rd       uint8  // Destination (or only) register.
	Rr       uint8  // Source register.
	K        uint16 // Immediate value, or relative offset magnitude field.
	A        uint8  // I/O address.
	B        uint8  // Bit index.
	Negative bool   // Relative offset sign.
}

// Shape returns the operand layout of the instruction.
func (ins Instruction) Shape() Shape {
	switch ins.Mnemonic {
	case OP_ADC, OP_ADD, OP_AND, OP_EOR, OP_MOV, OP_OR:
		return SHAPE_RD_RR
	case OP_ANDI, OP_CPI, OP_LDI, OP_ORI:
		return SHAPE_RD_K
	case OP_BLD, OP_BST:
		return SHAPE_RD_B
	case OP_SBRC, OP_SBRS:
		return SHAPE_RR_B
	case OP_CBI, OP_SBI, OP_SBIC:
		return SHAPE_A_B
	case OP_OUT:
		return SHAPE_A_RR
	case OP_IN:
		return SHAPE_RD_A
	case OP_CLR, OP_COM, OP_DEC, OP_POP, OP_PUSH, OP_ROL, OP_ROR:
		return SHAPE_RD
	case OP_RCALL, OP_RJMP:
		return SHAPE_K12
	case OP_BRCC, OP_BRCS, OP_BREQ, OP_BRNE:
		return SHAPE_K7
	}
	return SHAPE_NONE
}

// Offset returns the sign extended relative offset, in instruction words.
func (ins Instruction) Offset() int {
	offset := int(ins.K)
	if ins.Negative {
		offset -= 1 << ins.Shape().Width()
	}
	return offset
}

// Target returns the byte address a relative branch at address reaches.
func (ins Instruction) Target(address uint16) uint16 {
	return uint16(int(address) + 2*ins.Offset() + 2)
}

// Relative returns a relative branch built from a signed word offset.
func Relative(mn Mnemonic, offset int) (ins Instruction, err error) {
	ins.Mnemonic = mn
	width := ins.Shape().Width()
	if width == 0 {
		err = ErrInstructionInvalid
		return
	}
	limit := 1 << (width - 1)
	if offset < -limit || offset >= limit {
		err = ErrBranchRange
		return
	}
	if offset < 0 {
		ins.Negative = true
		offset += 1 << width
	}
	ins.K = uint16(offset)
	return
}
