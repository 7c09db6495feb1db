// Package cpu implements the instruction set and core state of the
// ATtiny13 AVR microcontroller.
//
// The core consists of 32 8-bit registers (r0-r31), the I/O port space
// with the status register SREG at 0x3f, a call stack, and a byte
// addressed program counter. Code words are decoded once into
// Instructions, collected into a Program, and executed one at a time.
//
// The assembler accepts the same instruction subset, with labels,
// equates, and compile-time expression evaluation.
package cpu
