package cpu

import (
	"fmt"
)

// String returns the assembly text of the instruction, with relative
// branches written as byte offsets from the following instruction.
func (ins Instruction) String() string {
	if ins.Shape() == SHAPE_K12 || ins.Shape() == SHAPE_K7 {
		return fmt.Sprintf("%v\t.%+d", ins.Mnemonic, 2*ins.Offset())
	}
	return ins.format()
}

// Render returns the assembly text of the instruction located at address.
// Relative branch targets are resolved to absolute addresses.
func (ins Instruction) Render(address uint16) string {
	if ins.Shape() == SHAPE_K12 || ins.Shape() == SHAPE_K7 {
		return fmt.Sprintf("%v\t0x%04x", ins.Mnemonic, ins.Target(address))
	}
	return ins.format()
}

func (ins Instruction) format() string {
	mn := ins.Mnemonic
	switch ins.Shape() {
	case SHAPE_RD_RR:
		return fmt.Sprintf("%v\tr%d, r%d", mn, ins.Rd, ins.Rr)
	case SHAPE_RD_K:
		return fmt.Sprintf("%v\tr%d, 0x%02x", mn, ins.Rd, ins.K)
	case SHAPE_RD_B:
		return fmt.Sprintf("%v\tr%d, %d", mn, ins.Rd, ins.B)
	case SHAPE_RR_B:
		return fmt.Sprintf("%v\tr%d, %d", mn, ins.Rr, ins.B)
	case SHAPE_A_B:
		return fmt.Sprintf("%v\t0x%02x, %d", mn, ins.A, ins.B)
	case SHAPE_A_RR:
		return fmt.Sprintf("%v\t0x%02x, r%d", mn, ins.A, ins.Rr)
	case SHAPE_RD_A:
		return fmt.Sprintf("%v\tr%d, 0x%02x", mn, ins.Rd, ins.A)
	case SHAPE_RD:
		return fmt.Sprintf("%v\tr%d", mn, ins.Rd)
	}
	return mn.String()
}
