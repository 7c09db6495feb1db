package cpu

// Status flag updates of the arithmetic and logic instructions.

// setNZS sets N and Z from the result, and S from N and the current V.
func (cpu *Cpu) setNZS(result uint8) {
	n := CheckBit(result, 7)
	cpu.SetFlag(FLAG_N, n)
	cpu.SetFlag(FLAG_Z, result == 0)
	cpu.SetFlag(FLAG_S, n != cpu.Flag(FLAG_V))
}

// aluAdd computes rd + rr + carry and updates H, V, N, Z, C, S.
func (cpu *Cpu) aluAdd(rd, rr, carry uint8) (result uint8) {
	sum := uint16(rd) + uint16(rr) + uint16(carry)
	result = uint8(sum)

	cpu.SetFlag(FLAG_H, (rd&0xf)+(rr&0xf)+carry > 0xf)
	cpu.SetFlag(FLAG_V, (^(rd^rr)&(rd^result)&0x80) != 0)
	cpu.SetFlag(FLAG_C, sum > 0xff)
	cpu.setNZS(result)

	return
}

// aluSub computes rd - k and updates H, V, N, Z, C, S.
func (cpu *Cpu) aluSub(rd, k uint8) (result uint8) {
	result = rd - k

	cpu.SetFlag(FLAG_H, (k&0xf) > (rd&0xf))
	cpu.SetFlag(FLAG_V, ((rd^k)&(rd^result)&0x80) != 0)
	cpu.SetFlag(FLAG_C, k > rd)
	cpu.setNZS(result)

	return
}

// aluLogic updates V, N, Z, S after a bitwise operation.
func (cpu *Cpu) aluLogic(result uint8) uint8 {
	cpu.SetFlag(FLAG_V, false)
	cpu.setNZS(result)
	return result
}

// aluDec decrements with wraparound; V is set when the result is 0x7f.
func (cpu *Cpu) aluDec(rd uint8) (result uint8) {
	result = rd - 1

	cpu.SetFlag(FLAG_V, result == 0x7f)
	cpu.setNZS(result)

	return
}

// aluRotate stores the rotated value, with carry taken from the bit that
// wrapped around.
func (cpu *Cpu) aluRotate(result uint8, carry bool) uint8 {
	cpu.SetFlag(FLAG_C, carry)
	n := CheckBit(result, 7)
	cpu.SetFlag(FLAG_V, n != carry)
	cpu.setNZS(result)
	return result
}
