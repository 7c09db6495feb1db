package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tiny13/cpu"
	"github.com/ezrec/tiny13/emulator"
)

func newConsole(t *testing.T, program []string) (con *Console, out *bytes.Buffer) {
	emu := emulator.NewEmulator()
	err := emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	emu.Reset()

	out = &bytes.Buffer{}
	con = &Console{Emu: emu, Out: out}
	return
}

func TestConsoleCommands(t *testing.T) {
	assert := assert.New(t)

	con, out := newConsole(t, []string{
		"ldi r16, 0x05",
		"out DDRB, r16",
		"push r16",
	})

	for _, cmd := range []string{"n", "next", "  n  "} {
		quit, err := con.Exec(cmd)
		assert.NoError(err, cmd)
		assert.False(quit, cmd)
	}
	assert.Equal(uint8(5), con.Emu.Cpu.Port[cpu.PORT_DDRB])
	assert.Equal(uint16(6), con.Emu.Pc)
	assert.Equal(0, out.Len())

	for _, cmd := range []string{"r", "regs"} {
		out.Reset()
		_, err := con.Exec(cmd)
		assert.NoError(err)
		assert.True(strings.HasPrefix(out.String(), "r00 ="), cmd)
	}

	for _, cmd := range []string{"p", "ports"} {
		out.Reset()
		_, err := con.Exec(cmd)
		assert.NoError(err)
		assert.Contains(out.String(), "17 : DDRB\t=    5", cmd)
	}

	for _, cmd := range []string{"s", "stack"} {
		out.Reset()
		_, err := con.Exec(cmd)
		assert.NoError(err)
		assert.Equal("[ 5 ]\n\n", out.String(), cmd)
	}

	for _, cmd := range []string{"l", "list"} {
		out.Reset()
		_, err := con.Exec(cmd)
		assert.NoError(err)
		assert.True(strings.HasPrefix(out.String(), "0000 : ldi\tr16, 0x05\n"), cmd)
	}

	for _, cmd := range []string{"h", "help"} {
		out.Reset()
		_, err := con.Exec(cmd)
		assert.NoError(err)
		assert.Contains(out.String(), "set r<regnum>=[0b|0x]<value>", cmd)
	}

	for _, cmd := range []string{"q", "quit"} {
		quit, err := con.Exec(cmd)
		assert.NoError(err)
		assert.True(quit, cmd)
	}
}

func TestConsoleIgnored(t *testing.T) {
	assert := assert.New(t)

	con, out := newConsole(t, []string{"sei"})

	for _, cmd := range []string{"", "bogus", "R", "quit now", "next two", "n -1"} {
		quit, err := con.Exec(cmd)
		assert.NoError(err, cmd)
		assert.False(quit, cmd)
	}

	assert.Equal(uint16(0), con.Emu.Pc)
	assert.Equal(0, out.Len())
}

func TestConsoleNextCount(t *testing.T) {
	assert := assert.New(t)

	con, _ := newConsole(t, []string{
		"ldi r16, 3",
		"loop: dec r16",
		"brne loop",
		"done: rjmp done",
	})

	quit, err := con.Exec("next 4")
	assert.NoError(err)
	assert.False(quit)
	assert.Equal(uint8(1), con.Emu.Cpu.Register[16])
	assert.Equal(uint16(4), con.Emu.Pc)
	assert.Equal(4, con.Emu.Ticks())

	_, err = con.Exec("n 10")
	assert.NoError(err)
	assert.Equal(uint8(0), con.Emu.Cpu.Register[16])
	assert.Equal(uint16(6), con.Emu.Pc)
	assert.Equal(14, con.Emu.Ticks())

	con, _ = newConsole(t, []string{"sei", "pop r1"})
	_, err = con.Exec("n 5")
	assert.ErrorIs(err, cpu.ErrStackEmpty)
	assert.Equal(uint16(2), con.Emu.Pc)
	assert.Equal(1, con.Emu.Ticks())
}

func TestConsoleStepErrors(t *testing.T) {
	assert := assert.New(t)

	con, _ := newConsole(t, []string{"pop r1"})

	_, err := con.Exec("n")
	assert.ErrorIs(err, cpu.ErrStackEmpty)
	assert.Equal(uint16(0), con.Emu.Pc)

	_, err = con.Exec("t")
	assert.ErrorIs(err, cpu.ErrInterruptsDisabled)

	con.Emu.Cpu.SetFlag(cpu.FLAG_I, true)
	_, err = con.Exec("int timer")
	assert.NoError(err)
	assert.Equal(uint16(cpu.VECTOR_TIM0_OVF), con.Emu.Pc)

	_, err = con.Exec("n")
	assert.ErrorIs(err, emulator.ErrNoCode)
}

func TestConsoleSet(t *testing.T) {
	assert := assert.New(t)

	con, _ := newConsole(t, []string{"sei"})
	reg := &con.Emu.Cpu.Register
	port := &con.Emu.Cpu.Port

	table := [](struct {
		cmd   string
		check func() bool
	}){
		{"set r16=0b01010101", func() bool { return reg[16] == 0x55 }},
		{"set r17=0x2a", func() bool { return reg[17] == 0x2a }},
		{"set r18=99", func() bool { return reg[18] == 99 }},
		{"set r19=010", func() bool { return reg[19] == 10 }},
		{"set r20 = 0X1F", func() bool { return reg[20] == 0x1f }},
		{"set psreg=0b01010101", func() bool { return port[cpu.PORT_SREG] == 0x55 }},
		{"set pportb=0x2a", func() bool { return port[cpu.PORT_PORTB] == 0x2a }},
		{"set pPINB=99", func() bool { return port[cpu.PORT_PINB] == 99 }},
		{"set r21=r16|r17", func() bool { return reg[21] == 0x7f }},
		{"set r22=PORTB + 1", func() bool { return reg[22] == 0x2b }},
		{"set pddrb=r18 & 0x0f", func() bool { return port[cpu.PORT_DDRB] == 3 }},
	}

	for _, entry := range table {
		quit, err := con.Exec(entry.cmd)
		assert.NoError(err, entry.cmd)
		assert.False(quit)
		assert.True(entry.check(), entry.cmd)
	}
}

func TestConsoleSetErrors(t *testing.T) {
	assert := assert.New(t)

	con, _ := newConsole(t, []string{"sei"})

	table := [](struct {
		cmd string
		err error
	}){
		{"set", ErrSetSyntax("set")},
		{"set x1=2", ErrSetSyntax("set x1=2")},
		{"set r16", ErrSetSyntax("set r16")},
		{"set rx=1", ErrSetRegister("x")},
		{"set r32=1", cpu.ErrRegisterInvalid},
		{"set r16=256", emulator.ErrValueRange},
		{"set r16=-1", emulator.ErrValueRange},
		{"set r16=0b2", ErrSetValue("0b2")},
		{"set r16=0xzz", ErrSetValue("0xzz")},
		{"set r16=nosuch", ErrSetValue("nosuch")},
		{"set r16='a'", ErrSetValue("'a'")},
		{"set pnope=1", cpu.ErrPortUnknown},
	}

	for _, entry := range table {
		quit, err := con.Exec(entry.cmd)
		assert.False(quit)
		assert.ErrorIs(err, entry.err, entry.cmd)
	}

	assert.Equal(uint8(0), con.Emu.Cpu.Register[16])
}
