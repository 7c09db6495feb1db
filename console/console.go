// Package console interprets the line oriented debugger commands.
package console

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tiny13/cpu"
	"github.com/ezrec/tiny13/emulator"
	"github.com/ezrec/tiny13/translate"
)

// Console runs commands against an emulator session.
type Console struct {
	Emu *emulator.Emulator // Session under control.
	Out io.Writer          // Destination of all dumps.
}

var (
	reSet     = regexp.MustCompile(`^set\s+([rp])([A-Za-z0-9_]+)\s*=\s*(.+)$`)
	reDecimal = regexp.MustCompile(`^[0-9]+$`)
	reNext    = regexp.MustCompile(`^n(?:ext)?\s+([0-9]+)$`)
)

var helpText = []string{
	"Usage",
	"\tr[egs]      - show registers",
	"\tp[orts]     - show ports",
	"\tl[ist]      - show scope",
	"\ts[tack]     - show stack",
	"\tn[ext]      - execute line",
	"\tn[ext] <n>  - execute n lines",
	"",
	"\tt|int timer - raise timer interrupt",
	"",
	"\tset r<regnum>=[0b|0x]<value> - set register's value",
	"\tset p<name>=[0b|0x]<value>   - set port's value",
	"\texamples:",
	"\t\tset r16=0b01010101 \tset r17=0x2a \t\tset r18=99",
	"\t\tset psreg=0b01010101 \tset pportb=0x2a \tset ppinb=99",
	"\t\tset r19=r16|r17",
	"",
	"\th[elp]      - this text",
	"\tq[uit]      - leave the emulator",
}

// Help writes the command summary.
func (con *Console) Help() (err error) {
	for _, line := range helpText {
		if len(line) == 0 {
			_, err = io.WriteString(con.Out, "\n")
		} else {
			_, err = translate.Fprintln(con.Out, line)
		}
		if err != nil {
			return
		}
	}
	return
}

// Exec runs a single command line. Unrecognized commands are ignored.
func (con *Console) Exec(line string) (quit bool, err error) {
	emu := con.Emu
	line = strings.TrimSpace(line)

	switch line {
	case "q", "quit":
		quit = true
	case "h", "help":
		err = con.Help()
	case "r", "regs":
		err = emu.WriteRegisters(con.Out)
	case "p", "ports":
		err = emu.WritePorts(con.Out)
	case "s", "stack":
		err = emu.WriteStack(con.Out)
	case "l", "list":
		err = emu.WriteListing(con.Out)
	case "t", "int timer":
		err = emu.Trigger("tim0_ovf")
	case "n", "next":
		err = emu.Step()
	default:
		if strings.HasPrefix(line, "set") {
			err = con.set(line)
		} else if match := reNext.FindStringSubmatch(line); match != nil {
			err = con.next(match[1])
		}
	}

	return
}

// next runs count instructions, stopping at the first failure.
func (con *Console) next(count string) (err error) {
	n, err := strconv.Atoi(count)
	if err != nil {
		err = ErrSetValue(count)
		return
	}

	return con.Emu.Run(n)
}

// set handles `set r<N>=<value>` and `set p<name>=<value>`.
func (con *Console) set(line string) (err error) {
	match := reSet.FindStringSubmatch(line)
	if match == nil {
		err = ErrSetSyntax(line)
		return
	}

	kind, target, expr := match[1], match[2], strings.TrimSpace(match[3])

	value, err := con.value(expr)
	if err != nil {
		return
	}

	switch kind {
	case "r":
		var n int
		n, err = strconv.Atoi(target)
		if err != nil {
			err = ErrSetRegister(target)
			return
		}
		err = con.Emu.SetRegister(n, value)
	case "p":
		err = con.Emu.SetPort(target, value)
	}

	return
}

// value parses a binary, hex or decimal literal, or evaluates an
// expression over the register and port names.
func (con *Console) value(expr string) (value int64, err error) {
	lower := strings.ToLower(expr)
	switch {
	case strings.HasPrefix(lower, "0b"):
		value, err = strconv.ParseInt(expr[2:], 2, 64)
	case strings.HasPrefix(lower, "0x"):
		value, err = strconv.ParseInt(expr[2:], 16, 64)
	case reDecimal.MatchString(expr):
		value, err = strconv.ParseInt(expr, 10, 64)
	default:
		return con.eval(expr)
	}

	if err != nil {
		err = ErrSetValue(expr)
	}

	return
}

// eval evaluates a starlark integer expression. Registers are named r0
// to r31, ports by their upper or lower case names.
func (con *Console) eval(expr string) (value int64, err error) {
	emu := con.Emu

	env := starlark.StringDict{}
	for n, reg := range emu.Cpu.Register {
		env["r"+strconv.Itoa(n)] = starlark.MakeInt(int(reg))
	}
	for addr, name := range cpu.Ports() {
		env[name] = starlark.MakeInt(int(emu.Cpu.Port[addr]))
		env[strings.ToLower(name)] = starlark.MakeInt(int(emu.Cpu.Port[addr]))
	}

	thread := &starlark.Thread{Name: "set"}
	opts := syntax.FileOptions{}
	dict, err := starlark.ExecFileOptions(&opts, thread, "set", "rc="+expr+"\n", env)
	if err != nil {
		err = ErrSetValue(expr)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrSetValue(expr)
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = ErrSetValue(expr)
		return
	}

	return
}
