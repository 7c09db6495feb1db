package cpu

// Encode converts an Instruction back into its code word.
//
// 'clr rd' encodes as 'eor rd, rd', and 'rol rd' as 'adc rd, rd', which
// are the words the hardware uses for those aliases.
func Encode(ins Instruction) (word uint16, err error) {
	mn := ins.Mnemonic
	switch mn {
	case OP_CLR:
		ins = Instruction{Mnemonic: OP_EOR, Rd: ins.Rd, Rr: ins.Rd}
	case OP_ROL:
		ins = Instruction{Mnemonic: OP_ADC, Rd: ins.Rd, Rr: ins.Rd}
	}

	var enc *encoding
	for n := range encodings {
		if encodings[n].Mnemonic == ins.Mnemonic {
			enc = &encodings[n]
			break
		}
	}
	if enc == nil {
		err = ErrMnemonicUnknown
		return
	}

	if err = ins.validate(); err != nil {
		return
	}

	word = enc.Value

	reg5 := func(r uint8) uint16 { return uint16(r) << 4 }
	port6 := func(a uint8) uint16 { return ((uint16(a) & 0x30) << 5) | (uint16(a) & 0xf) }

	switch enc.Shape {
	case SHAPE_RD_RR:
		word |= reg5(ins.Rd) | ((uint16(ins.Rr) & 0x10) << 5) | (uint16(ins.Rr) & 0xf)
	case SHAPE_RD_K:
		word |= (uint16(ins.Rd-16) << 4) | ((ins.K & 0xf0) << 4) | (ins.K & 0xf)
	case SHAPE_RD_B:
		word |= reg5(ins.Rd) | uint16(ins.B)
	case SHAPE_RR_B:
		word |= reg5(ins.Rr) | uint16(ins.B)
	case SHAPE_A_B:
		word |= (uint16(ins.A) << 3) | uint16(ins.B)
	case SHAPE_A_RR:
		word |= port6(ins.A) | reg5(ins.Rr)
	case SHAPE_RD_A:
		word |= port6(ins.A) | reg5(ins.Rd)
	case SHAPE_RD:
		word |= reg5(ins.Rd)
	case SHAPE_K12:
		word |= ins.K & 0xfff
	case SHAPE_K7:
		word |= (ins.K & 0x7f) << 3
	}

	return
}

// validate checks that every operand fits its encoding field.
func (ins Instruction) validate() (err error) {
	checkReg := func(r uint8) {
		if r >= REGISTER_COUNT {
			err = ErrRegisterInvalid
		}
	}

	switch ins.Shape() {
	case SHAPE_RD_RR:
		checkReg(ins.Rd)
		checkReg(ins.Rr)
	case SHAPE_RD_K:
		if ins.Rd < 16 || ins.Rd >= REGISTER_COUNT {
			err = ErrRegisterInvalid
		} else if ins.K > 0xff {
			err = ErrOperandRange
		}
	case SHAPE_RD_B, SHAPE_RR_B:
		checkReg(ins.Rd)
		checkReg(ins.Rr)
		if ins.B > 7 {
			err = ErrBitInvalid
		}
	case SHAPE_A_B:
		if ins.A > 0x1f {
			err = ErrOperandRange
		} else if ins.B > 7 {
			err = ErrBitInvalid
		}
	case SHAPE_A_RR, SHAPE_RD_A:
		checkReg(ins.Rd)
		checkReg(ins.Rr)
		if ins.A >= PORT_SPACE {
			err = ErrOperandRange
		}
	case SHAPE_RD:
		checkReg(ins.Rd)
	case SHAPE_K12, SHAPE_K7:
		width := ins.Shape().Width()
		if ins.K >= 1<<width {
			err = ErrOperandRange
		} else if ins.Negative != ((ins.K >> (width - 1)) != 0) {
			err = ErrOperandRange
		}
	}

	return
}
