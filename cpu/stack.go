package cpu

import (
	"iter"
)

const (
	STACK_LIMIT = 64 // Maximum stack depth, the size of the ATtiny13 SRAM.
)

// Stack holds return addresses and saved register values.
type Stack struct {
	Data []uint16
}

func (s *Stack) Push(value uint16) (ok bool) {
	if s.Full() {
		return
	}
	s.Data = append(s.Data, value)
	return true
}

func (s *Stack) Pop() (value uint16, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) >= STACK_LIMIT
}

func (s *Stack) Peek() (value uint16, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// Values iterates from the top of the stack to the bottom.
func (s *Stack) Values() iter.Seq[uint16] {
	return func(yield func(value uint16) bool) {
		for n := len(s.Data) - 1; n >= 0; n-- {
			if !yield(s.Data[n]) {
				return
			}
		}
	}
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
