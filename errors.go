package bignum

import "fmt"

var (
	// ErrEmptyString is returned when the input string is empty.
	ErrEmptyString = fmt.Errorf("can't parse empty string")

	// ErrInvalidFormat is returned when the input string is not a valid
	// signed decimal integer, i.e. it doesn't match -?[0-9]+.
	ErrInvalidFormat = fmt.Errorf("invalid format")

	// ErrInvalidBinaryData is returned when unmarshalling invalid binary
	// data. The binary data should follow the format described in
	// MarshalBinary.
	ErrInvalidBinaryData = fmt.Errorf("invalid binary data")

	// ErrDivideByZero is the panic value used when Div or Rem is called
	// with a zero divisor. Per spec.md §7, division by zero passed to the
	// arithmetic core is a caller contract violation, not a recoverable
	// error: the external calculator front-end (cmd/bigcalc) is
	// responsible for catching a literal zero divisor before ever calling
	// Div/Rem.
	ErrDivideByZero = fmt.Errorf("bignum: division by zero")
)
