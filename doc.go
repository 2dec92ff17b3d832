// Package bignum provides an arbitrary-precision signed integer, built on
// classical schoolbook arithmetic (Knuth TAOCP 4.3.1). It includes
// construction from limbs or decimal text, decimal string conversion, and
// the five basic arithmetic operations: addition, subtraction,
// multiplication, division, and remainder, along with negation and
// comparison.
//
// There is no fixed width: an Int grows to whatever size its value
// requires, at the cost of an allocation per operation. Division and
// remainder truncate toward zero; the remainder carries the sign of the
// dividend.
//
// # How it works
//
// An Int is composed of a sign and a magnitude, where the magnitude is a
// little-endian sequence of unsigned 32-bit limbs with no trailing zero
// limb:
//
//	value = (neg ? -1 : 1) * sum(mag[i] * 2^(32*i))
//
// Fields:
//   - neg: true if the value is negative. Zero is always non-negative.
//   - mag: the magnitude, normalized (no trailing zero limb). The empty
//     magnitude represents zero.
//
// Every arithmetic method returns a new Int; values are never mutated in
// place.
//
// # Codec
//
// The bignum package supports encoding and decoding mechanisms for
// integrating with common storage and transmission formats:
//
//   - Marshal/UnmarshalText: string
//   - Marshal/UnmarshalJSON: json (as a quoted decimal string; a bare
//     JSON integer is also accepted on unmarshal)
//   - Marshal/UnmarshalBinary: gob
//   - SQL: Int implements sql.Scanner and driver.Valuer.
//   - DynamoDB: Int marshals to/from a DynamoDB Number attribute value
//     (and accepts a String attribute value on unmarshal).
//
// For more details, see the documentation for each method.
package bignum
