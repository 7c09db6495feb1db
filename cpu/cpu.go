// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"strings"

	"github.com/ezrec/tiny13/internal"
)

const (
	REGISTER_COUNT = 32 // r0-r31
)

// Cpu is the architectural state of an ATtiny13 core.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [REGISTER_COUNT]uint8 // Register file.
	Port     [PORT_SPACE]uint8     // I/O space, SREG included.
	Stack    Stack                 // Call and data stack.
	Pc       uint16                // Program counter, in bytes.

	Ticks int // Executed instruction counter.
}

// NewCpu creates a new CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()
	return
}

// Defines returns the assembler symbols for the cpu: port addresses,
// SREG bit numbers, and interrupt vector addresses.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(portDefines(), flagDefines(), vectorDefines())
}

// flagDefines yields SREG_C .. SREG_I bit numbers.
func flagDefines() iter.Seq2[string, string] {
	return func(yield func(name, value string) bool) {
		for n := range flagCount {
			name := "SREG_" + strings.ToUpper(Flag(n).String())
			if !yield(name, fmt.Sprintf("%d", n)) {
				return
			}
		}
	}
}

// Reset the CPU state.
// - Clears the registers, ports and stack.
// - Sets the program counter to zero.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Port[:])
	cpu.Stack.Reset()
	cpu.Pc = 0
	cpu.Ticks = 0
}

// SetRegister sets a register by index.
func (cpu *Cpu) SetRegister(n int, value uint8) (err error) {
	if n < 0 || n >= REGISTER_COUNT {
		err = ErrRegisterInvalid
		return
	}
	cpu.Register[n] = value
	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("   pc: %04x\n", cpu.Pc)
	text += fmt.Sprintf(" sreg: %v\n", cpu.Flags())
	for row := range REGISTER_COUNT / 8 {
		var cols []string
		for col := range 8 {
			n := row*8 + col
			cols = append(cols, fmt.Sprintf("%02x", cpu.Register[n]))
		}
		text += fmt.Sprintf("  r%02d: %v\n", row*8, strings.Join(cols, " "))
	}
	top, ok := cpu.Stack.Peek()
	if ok {
		text += fmt.Sprintf("stack: %04x (%d)\n", top, len(cpu.Stack.Data))
	} else {
		text += "stack: ----\n"
	}

	return
}
