// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/tiny13/cpu"
	"github.com/ezrec/tiny13/ihex"
	"github.com/ezrec/tiny13/internal"
)

const (
	FLASH_SIZE    = 1024 // Program memory, in bytes.
	LISTING_LINES = 16   // Default listing window height.
)

var _emulator_defines = map[string]string{
	"FLASHEND": "0x03ff",
	"RAMEND":   "0x009f",
}

// Emulator state. CPU + code table.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the loaded code table.

	Color   bool // If set, dumps highlight values changed by the last step.
	Listing int  // Listing window height.

	before cpu.Cpu // Register and port state before the last step.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
		Listing: LISTING_LINES,
	}

	emu.snapshot()

	return
}

// Defines returns an iterator over all of the assembler defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines), emu.Cpu.Defines())
}

// Load replaces the program with an Intel HEX image.
func (emu *Emulator) Load(input io.Reader) (err error) {
	ld := &ihex.Loader{Verbose: emu.Verbose}
	prog, err := ld.Load(input)
	if err != nil {
		return
	}

	return emu.install(prog)
}

// LoadFile replaces the program with the Intel HEX image at path.
func (emu *Emulator) LoadFile(path string) (err error) {
	ld := &ihex.Loader{Verbose: emu.Verbose}
	prog, err := ld.LoadFile(path)
	if err != nil {
		return
	}

	return emu.install(prog)
}

// Assemble replaces the program with assembled source.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for name, value := range _emulator_defines {
		asm.Predefine(name, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	return emu.install(prog)
}

// install replaces the program, if all code fits in program memory.
func (emu *Emulator) install(prog *cpu.Program) (err error) {
	for address := range prog.Codes() {
		if int(address) >= FLASH_SIZE {
			err = &ErrRuntime{Pc: address, Err: ErrFlashRange}
			return
		}
	}

	emu.Program = prog

	return
}

// Reset the processor state. The program is kept.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.snapshot()
}

func (emu *Emulator) snapshot() {
	emu.before.Register = emu.Cpu.Register
	emu.before.Port = emu.Cpu.Port
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Current returns the instruction at the program counter.
func (emu *Emulator) Current() (ins cpu.Instruction, err error) {
	ins, ok := emu.Program.Lookup(emu.Cpu.Pc)
	if !ok {
		err = &ErrRuntime{Pc: emu.Cpu.Pc, Err: ErrNoCode}
	}
	return
}

// Step executes the instruction at the program counter.
// On failure, the processor state is unchanged.
func (emu *Emulator) Step() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	ins, err := emu.Current()
	if err != nil {
		return
	}

	pc := emu.Cpu.Pc
	emu.snapshot()

	err = emu.Cpu.Execute(ins)
	if err != nil {
		err = &ErrRuntime{Pc: pc, Instruction: ins, Err: err}
		return
	}

	if emu.Verbose {
		log.Printf("emulator: %04x: %v\n%v", pc, ins.Render(pc), emu.Cpu)
	}

	return
}

// Run steps until an error occurs, or count instructions have executed.
func (emu *Emulator) Run(count int) (err error) {
	for range count {
		err = emu.Step()
		if err != nil {
			return
		}
	}
	return
}

// Trigger raises the named interrupt.
func (emu *Emulator) Trigger(name string) (err error) {
	vector, ok := cpu.VectorByName(name)
	if !ok {
		err = cpu.ErrVectorUnknown
		return
	}

	emu.snapshot()

	err = emu.Cpu.Trigger(vector)
	if err == nil && emu.Verbose {
		log.Printf("emulator: %v interrupt", name)
	}

	return
}

// SetRegister sets register n to value, which must fit in a byte.
func (emu *Emulator) SetRegister(n int, value int64) (err error) {
	if value < 0 || value > 0xff {
		err = ErrValueRange
		return
	}
	return emu.Cpu.SetRegister(n, uint8(value))
}

// SetPort sets the named port to value, which must fit in a byte.
func (emu *Emulator) SetPort(name string, value int64) (err error) {
	addr, ok := cpu.PortByName(name)
	if !ok {
		err = cpu.ErrPortUnknown
		return
	}
	if value < 0 || value > 0xff {
		err = ErrValueRange
		return
	}
	return emu.Cpu.PortWrite(addr, uint8(value))
}
