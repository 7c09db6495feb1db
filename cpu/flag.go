package cpu

// Flag is a named SREG status bit.
//
//go:generate go tool stringer -linecomment -type=Flag
type Flag uint8

const (
	FLAG_C = Flag(0) // c
	FLAG_Z = Flag(1) // z
	FLAG_N = Flag(2) // n
	FLAG_V = Flag(3) // v
	FLAG_S = Flag(4) // s
	FLAG_H = Flag(5) // h
	FLAG_T = Flag(6) // t
	FLAG_I = Flag(7) // i

	flagCount = 8
)

// Flag returns the state of a status flag.
func (cpu *Cpu) Flag(fl Flag) bool {
	return CheckBit(cpu.Port[PORT_SREG], uint8(fl))
}

// SetFlag sets or clears a status flag.
func (cpu *Cpu) SetFlag(fl Flag, value bool) {
	cpu.Port[PORT_SREG] = PutBit(cpu.Port[PORT_SREG], uint8(fl), value)
}

// SetFlags sets or clears several status flags at once.
func (cpu *Cpu) SetFlags(value bool, fls ...Flag) {
	for _, fl := range fls {
		cpu.SetFlag(fl, value)
	}
}

// carry returns the C flag as an addend.
func (cpu *Cpu) carry() uint8 {
	if cpu.Flag(FLAG_C) {
		return 1
	}
	return 0
}

// Flags returns the SREG flags as a string, upper case when set.
func (cpu *Cpu) Flags() string {
	out := []byte("ithsvnzc")
	for n := range out {
		fl := Flag(7 - n)
		if cpu.Flag(fl) {
			out[n] -= 'a' - 'A'
		}
	}
	return string(out)
}
