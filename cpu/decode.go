package cpu

// encoding is a single entry of the instruction encoding table.
// A word matches when (word & Mask) == Value; the remaining bits are
// the operand fields of the Shape.
type encoding struct {
	Mnemonic Mnemonic
	Mask     uint16
	Value    uint16
	Shape    Shape
}

// encodings is searched in order, first match wins.
var encodings = [...]encoding{
	{OP_ADC, 0xfc00, 0x1c00, SHAPE_RD_RR}, // 0001 11rd dddd rrrr
	{OP_ADD, 0xfc00, 0x0c00, SHAPE_RD_RR}, // 0000 11rd dddd rrrr
	{OP_AND, 0xfc00, 0x2000, SHAPE_RD_RR}, // 0010 00rd dddd rrrr
	{OP_ANDI, 0xf000, 0x7000, SHAPE_RD_K}, // 0111 KKKK dddd KKKK
	{OP_BLD, 0xfe08, 0xf800, SHAPE_RD_B},  // 1111 100d dddd 0bbb
	{OP_BRCC, 0xfc07, 0xf400, SHAPE_K7},   // 1111 01kk kkkk k000
	{OP_BRCS, 0xfc07, 0xf000, SHAPE_K7},   // 1111 00kk kkkk k000
	{OP_BREQ, 0xfc07, 0xf001, SHAPE_K7},   // 1111 00kk kkkk k001
	{OP_BRNE, 0xfc07, 0xf401, SHAPE_K7},   // 1111 01kk kkkk k001
	{OP_BST, 0xfe08, 0xfa00, SHAPE_RD_B},  // 1111 101d dddd 0bbb
	{OP_CBI, 0xff00, 0x9800, SHAPE_A_B},   // 1001 1000 AAAA Abbb
	{OP_CLI, 0xffff, 0x94f8, SHAPE_NONE},  // 1001 0100 1111 1000
	{OP_COM, 0xfe0f, 0x9400, SHAPE_RD},    // 1001 010d dddd 0000
	{OP_CPI, 0xf000, 0x3000, SHAPE_RD_K},  // 0011 KKKK dddd KKKK
	{OP_DEC, 0xfe0f, 0x940a, SHAPE_RD},    // 1001 010d dddd 1010
	{OP_EOR, 0xfc00, 0x2400, SHAPE_RD_RR}, // 0010 01rd dddd rrrr
	{OP_IN, 0xf800, 0xb000, SHAPE_RD_A},   // 1011 0AAd dddd AAAA
	{OP_LDI, 0xf000, 0xe000, SHAPE_RD_K},  // 1110 KKKK dddd KKKK
	{OP_MOV, 0xfc00, 0x2c00, SHAPE_RD_RR}, // 0010 11rd dddd rrrr
	{OP_OR, 0xfc00, 0x2800, SHAPE_RD_RR},  // 0010 10rd dddd rrrr
	{OP_ORI, 0xf000, 0x6000, SHAPE_RD_K},  // 0110 KKKK dddd KKKK
	{OP_OUT, 0xf800, 0xb800, SHAPE_A_RR},  // 1011 1AAr rrrr AAAA
	{OP_POP, 0xfe0f, 0x900f, SHAPE_RD},    // 1001 000d dddd 1111
	{OP_PUSH, 0xfe0f, 0x920f, SHAPE_RD},   // 1001 001d dddd 1111
	{OP_RCALL, 0xf000, 0xd000, SHAPE_K12}, // 1101 kkkk kkkk kkkk
	{OP_RET, 0xffff, 0x9508, SHAPE_NONE},  // 1001 0101 0000 1000
	{OP_RETI, 0xffff, 0x9518, SHAPE_NONE}, // 1001 0101 0001 1000
	{OP_RJMP, 0xf000, 0xc000, SHAPE_K12},  // 1100 kkkk kkkk kkkk
	{OP_ROL, 0xfc00, 0x1c00, SHAPE_RD},    // 0001 11dd dddd dddd, shadowed by adc
	{OP_ROR, 0xfe0f, 0x9407, SHAPE_RD},    // 1001 010d dddd 0111
	{OP_SBI, 0xff00, 0x9a00, SHAPE_A_B},   // 1001 1010 AAAA Abbb
	{OP_SBIC, 0xff00, 0x9900, SHAPE_A_B},  // 1001 1001 AAAA Abbb
	{OP_SBRC, 0xfe08, 0xfc00, SHAPE_RR_B}, // 1111 110r rrrr 0bbb
	{OP_SBRS, 0xfe08, 0xfe00, SHAPE_RR_B}, // 1111 111r rrrr 0bbb
	{OP_SEI, 0xffff, 0x9478, SHAPE_NONE},  // 1001 0100 0111 1000
}

// Decode converts a code word at address into an Instruction.
func Decode(address uint16, word uint16) (ins Instruction, err error) {
	for _, enc := range encodings {
		if word&enc.Mask != enc.Value {
			continue
		}

		ins = decodeFields(enc.Mnemonic, enc.Shape, word)
		return
	}

	err = ErrDecode{Address: address, Word: word}
	return
}

// decodeFields extracts the operand fields of a word.
func decodeFields(mn Mnemonic, shape Shape, word uint16) (ins Instruction) {
	ins.Mnemonic = mn

	reg5 := uint8((word >> 4) & 0x1f)
	bit := uint8(word & 0x7)
	port6 := uint8(((word >> 5) & 0x30) | (word & 0xf))

	switch shape {
	case SHAPE_RD_RR:
		ins.Rd = reg5
		ins.Rr = uint8(((word >> 5) & 0x10) | (word & 0xf))
	case SHAPE_RD_K:
		ins.Rd = uint8((word>>4)&0xf) + 16
		ins.K = ((word >> 4) & 0xf0) | (word & 0xf)
	case SHAPE_RD_B:
		ins.Rd = reg5
		ins.B = bit
	case SHAPE_RR_B:
		ins.Rr = reg5
		ins.B = bit
	case SHAPE_A_B:
		ins.A = uint8((word >> 3) & 0x1f)
		ins.B = bit
	case SHAPE_A_RR:
		ins.A = port6
		ins.Rr = reg5
	case SHAPE_RD_A:
		ins.Rd = reg5
		ins.A = port6
	case SHAPE_RD:
		ins.Rd = reg5
	case SHAPE_K12:
		ins.K = word & 0xfff
		ins.Negative = (word & 0x800) != 0
	case SHAPE_K7:
		ins.K = (word >> 3) & 0x7f
		ins.Negative = (ins.K & 0x40) != 0
	case SHAPE_NONE:
	}

	return
}

// Synonym rewrites instructions that have a preferred alias.
// 'eor rd, rd' becomes 'clr rd'.
func Synonym(ins Instruction) Instruction {
	if ins.Mnemonic == OP_EOR && ins.Rd == ins.Rr {
		return Instruction{Mnemonic: OP_CLR, Rd: ins.Rd}
	}

	return ins
}
