package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// I/O space of the ATtiny13.
const (
	PORT_SPACE = 0x40

	PORT_ADCSRB = 0x03
	PORT_ADCL   = 0x04
	PORT_ADCH   = 0x05
	PORT_ADCSRA = 0x06
	PORT_ADMUX  = 0x07
	PORT_ACSR   = 0x08
	PORT_DIDR0  = 0x14
	PORT_PCMSK  = 0x15
	PORT_PINB   = 0x16
	PORT_DDRB   = 0x17
	PORT_PORTB  = 0x18
	PORT_EECR   = 0x1c
	PORT_EEDR   = 0x1d
	PORT_CLKPR  = 0x26
	PORT_GTCCR  = 0x28
	PORT_TCNT0  = 0x32
	PORT_TIMSK0 = 0x39
	PORT_SPL    = 0x3d
	PORT_SREG   = 0x3f
)

var portNames = [PORT_SPACE]string{
	PORT_ADCSRB: "ADCSRB",
	PORT_ADCL:   "ADCL",
	PORT_ADCH:   "ADCH",
	PORT_ADCSRA: "ADCSRA",
	PORT_ADMUX:  "ADMUX",
	PORT_ACSR:   "ACSR",
	PORT_DIDR0:  "DIDR0",
	PORT_PCMSK:  "PCMSK",
	PORT_PINB:   "PINB",
	PORT_DDRB:   "DDRB",
	PORT_PORTB:  "PORTB",
	PORT_EECR:   "EECR",
	PORT_EEDR:   "EEDR",
	PORT_CLKPR:  "CLKPR",
	PORT_GTCCR:  "GTCCR",
	PORT_TCNT0:  "TCNT0",
	PORT_TIMSK0: "TIMSK0",
	PORT_SPL:    "SPL",
	PORT_SREG:   "SREG",
}

// PortName returns the name of an I/O address, if it is a known port.
func PortName(addr uint8) (name string, ok bool) {
	if int(addr) >= len(portNames) {
		return
	}
	name = portNames[addr]
	ok = len(name) != 0
	return
}

// PortByName returns the I/O address of a named port, ignoring case.
func PortByName(name string) (addr uint8, ok bool) {
	for n, port := range portNames {
		if len(port) != 0 && strings.EqualFold(port, name) {
			return uint8(n), true
		}
	}
	return
}

// Ports iterates over the known I/O addresses and names in address order.
func Ports() iter.Seq2[uint8, string] {
	return func(yield func(addr uint8, name string) bool) {
		for n, name := range portNames {
			if len(name) == 0 {
				continue
			}
			if !yield(uint8(n), name) {
				return
			}
		}
	}
}

// portDefines yields the assembler symbols for the I/O ports.
func portDefines() iter.Seq2[string, string] {
	return func(yield func(name, value string) bool) {
		for addr, name := range Ports() {
			if !yield(name, fmt.Sprintf("0x%02x", addr)) {
				return
			}
		}
	}
}

// PortRead returns the value of a known port.
func (cpu *Cpu) PortRead(addr uint8) (value uint8, err error) {
	if _, ok := PortName(addr); !ok {
		err = ErrPortUnknown
		return
	}
	value = cpu.Port[addr]
	return
}

// PortWrite sets the value of a known port.
func (cpu *Cpu) PortWrite(addr uint8, value uint8) (err error) {
	if _, ok := PortName(addr); !ok {
		err = ErrPortUnknown
		return
	}
	cpu.Port[addr] = value
	return
}
