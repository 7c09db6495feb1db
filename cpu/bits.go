package cpu

// SetBit returns x with bit n set.
func SetBit(x uint8, n uint8) uint8 {
	return x | (1 << n)
}

// ClearBit returns x with bit n cleared.
func ClearBit(x uint8, n uint8) uint8 {
	return x &^ (1 << n)
}

// CheckBit reports whether bit n of x is set.
func CheckBit(x uint8, n uint8) bool {
	return (x & (1 << n)) != 0
}

// PutBit returns x with bit n set to value.
func PutBit(x uint8, n uint8, value bool) uint8 {
	if value {
		return SetBit(x, n)
	}
	return ClearBit(x, n)
}
