package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tiny13/emulator"
)

var errClosed = errors.New("closed")

// limitWriter accepts a number of writes, then fails.
type limitWriter struct {
	writes int
}

func (lw *limitWriter) Write(p []byte) (n int, err error) {
	if lw.writes == 0 {
		err = errClosed
		return
	}
	lw.writes--
	n = len(p)
	return
}

func TestWriteHex(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator()
	assert.NoError(emu.Assemble(strings.NewReader("ldi r16, 0x05\nout DDRB, r16\n")))

	path := filepath.Join(t.TempDir(), "blink.hex")
	assert.NoError(writeHex(path, emu.Program))

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal(":0400000005E007BB55\n:00000001FF\n", string(data))

	again := emulator.NewEmulator()
	assert.NoError(again.LoadFile(path))
	assert.Equal(emu.Program.Code, again.Program.Code)
}

func TestGreet(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator()
	assert.NoError(emu.Assemble(strings.NewReader("ldi r16, 0x05\n")))
	emu.Reset()

	var out bytes.Buffer
	assert.NoError(greet(&out, emu))
	assert.True(strings.HasPrefix(out.String(), "The simplest ATtiny13 emulator. Type h for help.\n"))
	assert.Contains(out.String(), "0000 : ldi\tr16, 0x05")

	assert.ErrorIs(greet(&limitWriter{writes: 0}, emu), errClosed)
	assert.ErrorIs(greet(&limitWriter{writes: 1}, emu), errClosed)
}
