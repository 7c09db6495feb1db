package console

import (
	"github.com/ezrec/tiny13/translate"
)

var f = translate.From

type ErrSetSyntax string

func (err ErrSetSyntax) Error() string {
	return f("malformed set command '%v'", string(err))
}

type ErrSetRegister string

func (err ErrSetRegister) Error() string {
	return f("'%v' is not a register number", string(err))
}

type ErrSetValue string

func (err ErrSetValue) Error() string {
	return f("'%v' is not a value", string(err))
}
