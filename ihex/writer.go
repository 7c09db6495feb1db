package ihex

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/ezrec/tiny13/cpu"
	"github.com/ezrec/tiny13/internal"
)

const (
	WRITE_RECORD_BYTES = 16 // Data bytes per record written.
)

// Write emits the code words of a program as data records, followed by
// the end of file record. Contiguous words share a record.
func Write(output io.Writer, prog *cpu.Program) (err error) {
	var pending *Record

	flush := func() (err error) {
		if pending == nil {
			return
		}
		_, err = fmt.Fprintln(output, pending.String())
		pending = nil
		return
	}

	for address, word := range internal.SortedMap(prog.Words) {
		if pending != nil {
			next := uint32(pending.Address) + uint32(len(pending.Data))
			if next != uint32(address) || len(pending.Data) >= WRITE_RECORD_BYTES {
				if err = flush(); err != nil {
					return errors.Wrap(err, f("write"))
				}
			}
		}
		if pending == nil {
			pending = &Record{Address: address, Type: RECORD_DATA}
		}
		pending.Data = append(pending.Data, uint8(word), uint8(word>>8))
	}

	if err = flush(); err != nil {
		return errors.Wrap(err, f("write"))
	}

	_, err = fmt.Fprintln(output, Record{Type: RECORD_EOF}.String())
	if err != nil {
		err = errors.Wrap(err, f("write"))
	}

	return
}
