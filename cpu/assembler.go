// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Opcode represents a line of assembled code with its source location.
type Opcode struct {
	LineNo      int
	Address     uint16
	Words       []string
	Instruction Instruction
	LinkLabel   string // Branch target label, resolved after parsing.
}

// Assembler is a two pass assembler for the ATtiny13 instruction subset.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]uint16 // Map of labels to byte addresses.
	Equate    map[string]string // Map of equates.

	address uint16 // Address of the next opcode.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	if equate, ok := asm.Equate[word]; ok {
		word = equate
	}
	invert := false
	if len(word) > 1 && word[0] == '~' {
		invert = true
		word = word[1:]
	}
	value, err = strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}
	if invert {
		value = ^value
	}
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key := range asm.Equate {
		var v int64
		v, err = asm.valueOf(key)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	for key, address := range asm.Label {
		pred[key] = starlark.MakeInt(int(address))
	}
	err = nil

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

var (
	reParen = regexp.MustCompile(`\$\([^\$]*\)`)
	reSplit = regexp.MustCompile(`[\s,]+`)
)

// parseLine handles expressions, directives and labels of a line, and
// returns the remaining instruction words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	for _, word := range reSplit.Split(strings.TrimSpace(line), -1) {
		if len(word) != 0 {
			words = append(words, word)
		}
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if _, ok := asm.Label[label]; ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.address
		words = words[1:]
	}

	if len(words) == 0 {
		return
	}

	switch words[0] {
	case ".equ":
		// .equ CONST VALUE
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		if _, ok := asm.Equate[words[1]]; ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = nil
	case ".org":
		// .org ADDRESS
		if len(words) != 2 {
			err = ErrOrgSyntax
			return
		}
		var value int64
		value, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		if value < 0 || value > 0xfffe || value&1 != 0 {
			err = ErrOrgSyntax
			return
		}
		asm.address = uint16(value)
		words = nil
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Label = make(map[string]uint16)
	asm.Equate = make(map[string]string)
	asm.address = 0
	for name, value := range (&Cpu{}).Defines() {
		asm.Equate[name] = value
	}
	maps.Copy(asm.Equate, asm.predefine)

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("asm: %v: %v", lineno, text)
		}

		line = strings.TrimSpace(strings.SplitN(text, ";", 2)[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}

	// Final linking of branch labels, and encoding.
	prog = &Program{}
	for n := range asm.Opcode {
		op := &asm.Opcode[n]
		lineno = op.LineNo
		line = strings.Join(op.Words, " ")

		if len(op.LinkLabel) != 0 {
			target, ok := asm.Label[op.LinkLabel]
			if !ok {
				err = ErrLabelMissing(op.LinkLabel)
				prog = nil
				return
			}
			op.Instruction, err = branchTo(op.Instruction.Mnemonic, op.Address, target)
			if err != nil {
				prog = nil
				return
			}
		}

		var word uint16
		word, err = Encode(op.Instruction)
		if err != nil {
			prog = nil
			return
		}
		if _, ok := prog.Lookup(op.Address); ok {
			err = ErrAddressOverlap
			prog = nil
			return
		}
		err = prog.Set(op.Address, word)
		if err != nil {
			prog = nil
			return
		}
	}

	return
}

// branchTo builds a relative branch from address to target.
func branchTo(mn Mnemonic, address, target uint16) (ins Instruction, err error) {
	delta := int(target) - int(address) - 2
	if delta&1 != 0 {
		err = ErrBranchRange
		return
	}
	return Relative(mn, delta/2)
}

// register parses a register operand.
func (asm *Assembler) register(word string) (reg uint8, err error) {
	if equate, ok := asm.Equate[word]; ok {
		word = equate
	}
	if len(word) < 2 || (word[0] != 'r' && word[0] != 'R') {
		err = ErrParseRegister(word)
		return
	}
	n, perr := strconv.ParseUint(word[1:], 10, 8)
	if perr != nil || n >= REGISTER_COUNT {
		err = ErrParseRegister(word)
		return
	}
	reg = uint8(n)
	return
}

// operand parses a numeric operand in the range [min, max].
func (asm *Assembler) operand(word string, min, max int64) (value int64, err error) {
	value, err = asm.valueOf(word)
	if err != nil {
		return
	}
	if value < min || value > max {
		err = ErrOperandRange
	}
	return
}

// parseWords assembles the words of a single instruction.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	mn, ok := MnemonicByName(strings.ToLower(words[0]))
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	ins := Instruction{Mnemonic: mn}
	args := words[1:]

	need := 2
	switch ins.Shape() {
	case SHAPE_NONE:
		need = 0
	case SHAPE_RD, SHAPE_K12, SHAPE_K7:
		need = 1
	}
	if len(args) < need {
		err = ErrOpcodeMissing
		return
	}
	if len(args) > need {
		err = ErrOpcodeExtraArgs
		return
	}

	var value int64
	var label string

	switch ins.Shape() {
	case SHAPE_RD_RR:
		if ins.Rd, err = asm.register(args[0]); err != nil {
			return
		}
		ins.Rr, err = asm.register(args[1])
	case SHAPE_RD_K:
		if ins.Rd, err = asm.register(args[0]); err != nil {
			return
		}
		if ins.Rd < 16 {
			err = ErrRegisterInvalid
			return
		}
		value, err = asm.operand(args[1], -128, 255)
		ins.K = uint16(uint8(value))
	case SHAPE_RD_B, SHAPE_RR_B:
		var reg uint8
		if reg, err = asm.register(args[0]); err != nil {
			return
		}
		if ins.Shape() == SHAPE_RD_B {
			ins.Rd = reg
		} else {
			ins.Rr = reg
		}
		value, err = asm.operand(args[1], 0, 7)
		ins.B = uint8(value)
	case SHAPE_A_B:
		if value, err = asm.operand(args[0], 0, 0x1f); err != nil {
			return
		}
		ins.A = uint8(value)
		value, err = asm.operand(args[1], 0, 7)
		ins.B = uint8(value)
	case SHAPE_A_RR:
		if value, err = asm.operand(args[0], 0, PORT_SPACE-1); err != nil {
			return
		}
		ins.A = uint8(value)
		ins.Rr, err = asm.register(args[1])
	case SHAPE_RD_A:
		if ins.Rd, err = asm.register(args[0]); err != nil {
			return
		}
		value, err = asm.operand(args[1], 0, PORT_SPACE-1)
		ins.A = uint8(value)
	case SHAPE_RD:
		ins.Rd, err = asm.register(args[0])
	case SHAPE_K12, SHAPE_K7:
		ins, label, err = asm.branch(mn, args[0])
	}
	if err != nil {
		return
	}

	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo:      lineno,
		Address:     asm.address,
		Words:       words,
		Instruction: ins,
		LinkLabel:   label,
	})
	asm.address += 2

	return
}

// branch parses a branch target: '.+N' or '.-N' byte offsets from the
// next instruction, an absolute address, or a label to link later.
func (asm *Assembler) branch(mn Mnemonic, word string) (ins Instruction, label string, err error) {
	ins.Mnemonic = mn

	if len(word) > 1 && word[0] == '.' && (word[1] == '+' || word[1] == '-') {
		var delta int64
		delta, err = strconv.ParseInt(word[1:], 0, 32)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		if delta&1 != 0 {
			err = ErrBranchRange
			return
		}
		ins, err = Relative(mn, int(delta/2))
		return
	}

	target, verr := asm.valueOf(word)
	if verr == nil {
		if target < 0 || target > 0xffff {
			err = ErrBranchRange
			return
		}
		ins, err = branchTo(mn, asm.address, uint16(target))
		return
	}

	label = word
	return
}
