package cpu

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.False(s.Full())

	assert.True(s.Push(0x1234))
	assert.False(s.Empty())
	assert.Equal(1, len(s.Data))
	assert.Equal(uint16(0x1234), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x1234)
	s.Push(0xabcd)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(uint16(0xabcd), val)
	assert.Equal(1, len(s.Data))

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(uint16(0x1234), val)
	assert.Equal(0, len(s.Data))
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(uint16(0), val)

	_, ok = s.Peek()
	assert.False(ok)
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	for n := range STACK_LIMIT {
		assert.True(s.Push(uint16(n)))
	}
	assert.True(s.Full())
	assert.False(s.Push(0xffff))
	assert.Equal(STACK_LIMIT, len(s.Data))

	top, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint16(STACK_LIMIT-1), top)

	s.Reset()
	assert.True(s.Empty())
}

func TestStack_Values(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(1)
	s.Push(2)
	s.Push(3)

	assert.Equal([]uint16{3, 2, 1}, slices.Collect(s.Values()))
}
