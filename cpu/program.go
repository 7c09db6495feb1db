package cpu

import (
	"iter"

	"github.com/ezrec/tiny13/internal"
)

// Program is the code table: decoded instructions keyed by byte address.
// It is built once by a loader or the assembler and only read afterwards.
type Program struct {
	Code  map[uint16]Instruction // Decoded instructions.
	Words map[uint16]uint16      // Raw code words, by the same address.
}

// Line is a single slot of a listing window.
type Line struct {
	Address     uint16
	Instruction Instruction
	Ok          bool // False when there is no code at the address.
}

// Set stores the decoded form of word at address, applying synonyms.
func (prog *Program) Set(address uint16, word uint16) (err error) {
	ins, err := Decode(address, word)
	if err != nil {
		return
	}

	if prog.Code == nil {
		prog.Code = make(map[uint16]Instruction)
		prog.Words = make(map[uint16]uint16)
	}

	prog.Code[address] = Synonym(ins)
	prog.Words[address] = word

	return
}

// Lookup returns the instruction at address.
func (prog *Program) Lookup(address uint16) (ins Instruction, ok bool) {
	ins, ok = prog.Code[address]
	return
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	return len(prog.Code)
}

// Codes iterates the program in address order.
func (prog *Program) Codes() iter.Seq2[uint16, Instruction] {
	return internal.SortedMap(prog.Code)
}

// Window returns count listing lines around pc, starting up to 8 words
// before it.
func (prog *Program) Window(pc uint16, count int) (lines []Line) {
	start := 0
	if int(pc) > 16 {
		start = int(pc) - 16
	}

	for n := range count {
		address := uint16(start + n*2)
		ins, ok := prog.Lookup(address)
		lines = append(lines, Line{Address: address, Instruction: ins, Ok: ok})
	}

	return
}
