package ihex

import (
	"bufio"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/ezrec/tiny13/cpu"
)

// Loader builds a code table from an Intel HEX image.
type Loader struct {
	Verbose bool // If set, logs every record.
}

// LoadFile loads the firmware image at path.
func (ld *Loader) LoadFile(path string) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = errors.Wrap(err, f("firmware"))
		return
	}
	defer inf.Close()

	prog, err = ld.Load(inf)
	if err != nil {
		err = errors.Wrap(err, path)
	}

	return
}

// Load reads records until the end of file record, decoding every data
// word into the returned program. Any error discards the whole image.
//
// Data records hold little endian code words. An extended segment
// address record sets the base (segment * 16) of the data records that
// follow it. Other record types are ignored.
func (ld *Loader) Load(input io.Reader) (prog *cpu.Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrLine{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	prog = &cpu.Program{}
	var base uint32

	for scanner.Scan() {
		lineno++
		line = scanner.Text()
		text := strings.TrimSpace(line)
		if len(text) == 0 {
			continue
		}

		var rec Record
		rec, err = ParseRecord(text)
		if err != nil {
			return
		}

		if ld.Verbose {
			log.Printf("ihex: %d: %v @%04x [%d]", lineno, rec.Type, rec.Address, len(rec.Data))
		}

		switch rec.Type {
		case RECORD_DATA:
			start := base + uint32(rec.Address)
			for n := 0; n+1 < len(rec.Data); n += 2 {
				address := start + uint32(n)
				if address > 0xffff {
					err = ErrAddressRange
					return
				}
				word := uint16(rec.Data[n]) | uint16(rec.Data[n+1])<<8
				err = prog.Set(uint16(address), word)
				if err != nil {
					return
				}
			}
		case RECORD_SEGMENT:
			if len(rec.Data) != 2 {
				err = ErrSegmentSyntax
				return
			}
			base = (uint32(rec.Data[0])<<8 | uint32(rec.Data[1])) << 4
		case RECORD_EOF:
			return
		default:
			// Not used by the emulator.
		}
	}

	err = scanner.Err()

	return
}
