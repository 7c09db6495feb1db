package emulator

import (
	"fmt"
	"io"

	"github.com/mgutz/ansi"

	"github.com/ezrec/tiny13/cpu"
)

const (
	REGISTER_ROWS    = 8
	REGISTER_COLUMNS = cpu.REGISTER_COUNT / REGISTER_ROWS
)

var chSame = ansi.ColorCode("default:default")
var chNew = ansi.ColorCode("default+bu:default")
var chHere = ansi.ColorCode("default+b:default")

// paint wraps text in color, when color is enabled.
func (emu *Emulator) paint(text string, color string) string {
	if !emu.Color {
		return text
	}
	return color + text + ansi.Reset
}

// WriteCurrent writes the instruction at the program counter.
func (emu *Emulator) WriteCurrent(w io.Writer) (err error) {
	ins, ok := emu.Program.Lookup(emu.Cpu.Pc)
	if !ok {
		_, err = fmt.Fprintf(w, "%04x : %v\n", emu.Cpu.Pc, f("no code, press l"))
		return
	}

	_, err = fmt.Fprintf(w, "%04x : %v\n", emu.Cpu.Pc, ins.Render(emu.Cpu.Pc))
	return
}

// WriteRegisters writes the register file: r0-r7 down the first column,
// r8-r15 down the second, and so on.
func (emu *Emulator) WriteRegisters(w io.Writer) (err error) {
	for row := range REGISTER_ROWS {
		for col := range REGISTER_COLUMNS {
			n := col*REGISTER_ROWS + row
			value := emu.Cpu.Register[n]
			cell := fmt.Sprintf("r%02d = %4d : 0x%02x : %08b", n, value, value, value)
			color := chSame
			if value != emu.before.Register[n] {
				color = chNew
			}
			sep := "\t"
			if col == REGISTER_COLUMNS-1 {
				sep = "\n"
			}
			_, err = fmt.Fprint(w, emu.paint(cell, color), sep)
			if err != nil {
				return
			}
		}
	}

	_, err = fmt.Fprintln(w)
	return
}

// WritePorts writes every named I/O port, in address order.
func (emu *Emulator) WritePorts(w io.Writer) (err error) {
	for addr, name := range cpu.Ports() {
		value := emu.Cpu.Port[addr]
		line := fmt.Sprintf("%02x : %v\t= %4d : 0x%02x : %08b", addr, name, value, value, value)
		color := chSame
		if value != emu.before.Port[addr] {
			color = chNew
		}
		_, err = fmt.Fprintln(w, emu.paint(line, color))
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintln(w)
	return
}

// WriteListing writes the disassembly window around the program counter.
func (emu *Emulator) WriteListing(w io.Writer) (err error) {
	for _, line := range emu.Program.Window(emu.Cpu.Pc, emu.Listing) {
		var text string
		if line.Ok {
			text = fmt.Sprintf("%04x : %v", line.Address, line.Instruction.Render(line.Address))
		} else {
			text = fmt.Sprintf("%04x : --", line.Address)
		}
		if line.Address == emu.Cpu.Pc {
			text = emu.paint(text, chHere)
		}
		_, err = fmt.Fprintln(w, text)
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintln(w)
	return
}

// WriteStack writes the stack, top first.
func (emu *Emulator) WriteStack(w io.Writer) (err error) {
	for value := range emu.Cpu.Stack.Values() {
		_, err = fmt.Fprintf(w, "[ %d ]\n", value)
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintln(w)
	return
}
