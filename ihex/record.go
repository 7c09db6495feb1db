// Package ihex reads and writes Intel HEX firmware images.
package ihex

import (
	"encoding/hex"
	"regexp"
	"strings"
)

// RecordType is the type byte of a record.
//
//go:generate go tool stringer -linecomment -type=RecordType
type RecordType uint8

const (
	RECORD_DATA          = RecordType(0x00) // Data
	RECORD_EOF           = RecordType(0x01) // End of File
	RECORD_SEGMENT       = RecordType(0x02) // Extended Segment Address
	RECORD_START_SEGMENT = RecordType(0x03) // Start Segment Address
	RECORD_LINEAR        = RecordType(0x04) // Extended Linear Address
	RECORD_START_LINEAR  = RecordType(0x05) // Start Linear Address
)

// Record is a single line of an Intel HEX file.
type Record struct {
	Address uint16
	Type    RecordType
	Data    []byte
}

var reRecord = regexp.MustCompile(`^:([0-9A-Fa-f]{2})([0-9A-Fa-f]{4})([0-9A-Fa-f]{2})((?:[0-9A-Fa-f]{2})*)([0-9A-Fa-f]{2})$`)

// ParseRecord parses and verifies a single record line.
// The checksum is the two's complement of the sum of all other bytes, so
// the sum of every byte of a record is zero modulo 256.
func ParseRecord(line string) (rec Record, err error) {
	if !reRecord.MatchString(line) {
		err = ErrRecordSyntax
		return
	}

	raw, err := hex.DecodeString(line[1:])
	if err != nil {
		err = ErrRecordSyntax
		return
	}

	var sum uint8
	for _, b := range raw {
		sum += b
	}
	if sum != 0 {
		err = ErrChecksum
		return
	}

	count := int(raw[0])
	data := raw[4 : len(raw)-1]
	if count != len(data) {
		err = ErrRecordLength
		return
	}

	rec = Record{
		Address: uint16(raw[1])<<8 | uint16(raw[2]),
		Type:    RecordType(raw[3]),
		Data:    data,
	}

	return
}

// String formats the record as a line of text, checksum included.
func (rec Record) String() string {
	raw := []byte{uint8(len(rec.Data)), uint8(rec.Address >> 8), uint8(rec.Address), uint8(rec.Type)}
	raw = append(raw, rec.Data...)

	var sum uint8
	for _, b := range raw {
		sum += b
	}
	raw = append(raw, -sum)

	return ":" + strings.ToUpper(hex.EncodeToString(raw))
}
