package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("stack empty", From("stack empty"))
	assert.Equal("0010: opcode", From("%04x: %v", 0x10, "opcode"))
}

func TestFprintln(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	_, err := Fprintln(&out, "line '%v'", "x")
	assert.NoError(err)
	assert.Equal("line 'x'\n", out.String())
}
