package cpu

import (
	"errors"
	"log"
)

// Execute executes a single decoded instruction.
//
// Operands are validated before any state is modified, so a failing
// instruction leaves registers, ports, stack and PC as they were.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(ins), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %04x: %v", cpu.Pc, ins.Render(cpu.Pc))
	}

	if err = ins.validate(); err != nil {
		return
	}

	next_pc := cpu.Pc + 2
	reg := &cpu.Register

	switch ins.Mnemonic {
	case OP_ADD:
		reg[ins.Rd] = cpu.aluAdd(reg[ins.Rd], reg[ins.Rr], 0)
	case OP_ADC:
		reg[ins.Rd] = cpu.aluAdd(reg[ins.Rd], reg[ins.Rr], cpu.carry())
	case OP_AND:
		reg[ins.Rd] = cpu.aluLogic(reg[ins.Rd] & reg[ins.Rr])
	case OP_OR:
		reg[ins.Rd] = cpu.aluLogic(reg[ins.Rd] | reg[ins.Rr])
	case OP_EOR:
		reg[ins.Rd] = cpu.aluLogic(reg[ins.Rd] ^ reg[ins.Rr])
	case OP_ANDI:
		reg[ins.Rd] = cpu.aluLogic(reg[ins.Rd] & uint8(ins.K))
	case OP_ORI:
		reg[ins.Rd] = cpu.aluLogic(reg[ins.Rd] | uint8(ins.K))
	case OP_COM:
		reg[ins.Rd] = cpu.aluLogic(^reg[ins.Rd])
		cpu.SetFlag(FLAG_C, true)
	case OP_CPI:
		cpu.aluSub(reg[ins.Rd], uint8(ins.K))
	case OP_CLR:
		cpu.SetFlag(FLAG_Z, true)
		cpu.SetFlags(false, FLAG_N, FLAG_V, FLAG_S)
		reg[ins.Rd] = 0
	case OP_DEC:
		reg[ins.Rd] = cpu.aluDec(reg[ins.Rd])
	case OP_ROL:
		value := reg[ins.Rd]
		reg[ins.Rd] = cpu.aluRotate((value<<1)|(value>>7), CheckBit(value, 7))
	case OP_ROR:
		value := reg[ins.Rd]
		reg[ins.Rd] = cpu.aluRotate((value>>1)|(value<<7), CheckBit(value, 0))
	case OP_BLD:
		reg[ins.Rd] = PutBit(reg[ins.Rd], ins.B, cpu.Flag(FLAG_T))
	case OP_BST:
		cpu.SetFlag(FLAG_T, CheckBit(reg[ins.Rd], ins.B))
	case OP_MOV:
		reg[ins.Rd] = reg[ins.Rr]
	case OP_LDI:
		reg[ins.Rd] = uint8(ins.K)
	case OP_IN:
		var value uint8
		value, err = cpu.PortRead(ins.A)
		if err != nil {
			return
		}
		reg[ins.Rd] = value
	case OP_OUT:
		err = cpu.PortWrite(ins.A, reg[ins.Rr])
		if err != nil {
			return
		}
	case OP_PUSH:
		if !cpu.Stack.Push(uint16(reg[ins.Rd])) {
			err = ErrStackFull
			return
		}
	case OP_POP:
		value, ok := cpu.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
		reg[ins.Rd] = uint8(value)
	case OP_RJMP:
		next_pc = ins.Target(cpu.Pc)
	case OP_RCALL:
		if !cpu.Stack.Push(cpu.Pc) {
			err = ErrStackFull
			return
		}
		next_pc = ins.Target(cpu.Pc)
	case OP_RET:
		// rcall pushed its own address; resume after it.
		addr, ok := cpu.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
		next_pc = addr + 2
	case OP_RETI:
		// Interrupt entry pushed the address of an instruction that has
		// not run yet; resume exactly there.
		addr, ok := cpu.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
		cpu.SetFlag(FLAG_I, true)
		next_pc = addr
	case OP_BRCC:
		if !cpu.Flag(FLAG_C) {
			next_pc = ins.Target(cpu.Pc)
		}
	case OP_BRCS:
		if cpu.Flag(FLAG_C) {
			next_pc = ins.Target(cpu.Pc)
		}
	case OP_BREQ:
		if cpu.Flag(FLAG_Z) {
			next_pc = ins.Target(cpu.Pc)
		}
	case OP_BRNE:
		if !cpu.Flag(FLAG_Z) {
			next_pc = ins.Target(cpu.Pc)
		}
	case OP_CBI, OP_SBI:
		var value uint8
		value, err = cpu.PortRead(ins.A)
		if err != nil {
			return
		}
		cpu.Port[ins.A] = PutBit(value, ins.B, ins.Mnemonic == OP_SBI)
	case OP_SBIC:
		var value uint8
		value, err = cpu.PortRead(ins.A)
		if err != nil {
			return
		}
		if !CheckBit(value, ins.B) {
			next_pc += 2
		}
	case OP_SBRC:
		if !CheckBit(reg[ins.Rr], ins.B) {
			next_pc += 2
		}
	case OP_SBRS:
		if CheckBit(reg[ins.Rr], ins.B) {
			next_pc += 2
		}
	case OP_CLI:
		cpu.SetFlag(FLAG_I, false)
	case OP_SEI:
		cpu.SetFlag(FLAG_I, true)
	default:
		err = ErrMnemonicUnknown
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks++

	return
}
