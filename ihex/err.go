package ihex

import (
	"github.com/pkg/errors"

	"github.com/ezrec/tiny13/translate"
)

var f = translate.From

var (
	ErrRecordSyntax  = errors.New(f("not an Intel HEX record"))
	ErrRecordLength  = errors.New(f("record length mismatch"))
	ErrChecksum      = errors.New(f("checksum doesn't match"))
	ErrSegmentSyntax = errors.New(f("segment record needs two data bytes"))
	ErrAddressRange  = errors.New(f("address out of range"))
)

// ErrLine indicates the location of a load error.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
