package cpu

import (
	"fmt"
	"iter"
	"log"
	"strings"

	"github.com/ezrec/tiny13/internal"
)

// Vector is the byte address of an interrupt handler.
type Vector uint16

const (
	VECTOR_TIM0_OVF = Vector(0x0006) // Timer/Counter0 overflow, word 3.
)

var vectorNames = map[string]Vector{
	"tim0_ovf": VECTOR_TIM0_OVF,
}

// VectorByName looks up a modeled interrupt source.
func VectorByName(name string) (vector Vector, ok bool) {
	vector, ok = vectorNames[name]
	return
}

// vectorDefines yields TIM0_OVF_vect style assembler symbols.
func vectorDefines() iter.Seq2[string, string] {
	return func(yield func(name, value string) bool) {
		for name, vector := range internal.SortedMap(vectorNames) {
			symbol := strings.ToUpper(name) + "_vect"
			if !yield(symbol, fmt.Sprintf("0x%04x", uint16(vector))) {
				return
			}
		}
	}
}

// Trigger raises an interrupt. When the global interrupt flag is set the
// current PC is pushed and execution continues at the vector; otherwise
// the state is left alone and ErrInterruptsDisabled is returned.
func (cpu *Cpu) Trigger(vector Vector) (err error) {
	if !cpu.Flag(FLAG_I) {
		err = ErrInterruptsDisabled
		return
	}

	if !cpu.Stack.Push(cpu.Pc) {
		err = ErrStackFull
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %04x: interrupt -> %04x", cpu.Pc, uint16(vector))
	}

	cpu.Pc = uint16(vector)

	return
}
