package bignum

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	_ fmt.Stringer             = (*Int)(nil)
	_ sql.Scanner              = (*Int)(nil)
	_ driver.Valuer            = (*Int)(nil)
	_ encoding.TextMarshaler   = (*Int)(nil)
	_ encoding.TextUnmarshaler = (*Int)(nil)
	_ json.Marshaler           = (*Int)(nil)
	_ json.Unmarshaler         = (*Int)(nil)
)

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(data []byte) error {
	v, err := FromDecimal(string(data))
	if err != nil {
		return err
	}

	*x = v
	return nil
}

// MarshalJSON implements json.Marshaler. Int is encoded as a quoted
// decimal string (not a bare JSON number) because JSON numbers lose
// precision past 2^53, which an arbitrary-precision integer routinely
// exceeds — the same reasoning the teacher applies to its big.Int overflow
// fallback (codec.go's stringBigInt path, always quoted).
func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting either a quoted
// decimal string or a bare JSON integer literal.
func (x *Int) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}

	return x.UnmarshalText(data)
}

// MarshalBinary implements encoding.BinaryMarshaler with a simple tagged
// format: [sign byte][limb count, as a uvarint][limbs, little-endian
// 32-bit each]. Grounded on the teacher's tagged-header binary format
// (codec.go's MarshalBinary), simplified because Int has no fixed-width
// fast path to flag.
func (x Int) MarshalBinary() ([]byte, error) {
	var sign byte
	if x.neg {
		sign = 1
	}

	header := make([]byte, 1+binary.MaxVarintLen64)
	header[0] = sign
	n := binary.PutUvarint(header[1:], uint64(len(x.mag)))

	buf := make([]byte, 1+n+len(x.mag)*4)
	copy(buf, header[:1+n])

	off := 1 + n
	for _, l := range x.mag {
		binary.LittleEndian.PutUint32(buf[off:], l)
		off += 4
	}

	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return ErrInvalidBinaryData
	}

	sign := data[0]
	if sign > 1 {
		return ErrInvalidBinaryData
	}

	count, n := binary.Uvarint(data[1:])
	if n <= 0 {
		return ErrInvalidBinaryData
	}

	off := 1 + n
	if uint64(len(data)-off) != count*4 {
		return ErrInvalidBinaryData
	}

	mag := make([]limb, count)
	for i := range mag {
		mag[i] = binary.LittleEndian.Uint32(data[off:])
		off += 4
	}

	*x = newInt(sign == 1, mag)
	return nil
}

// ToBigInt converts x to a *big.Int, for interop with the standard
// library's arbitrary-precision type. Conversion goes through big-endian
// bytes (as the teacher's u128.ToBigInt does) rather than big.Int.SetBits,
// since big.Word's width is platform-dependent (32 or 64 bits) while a
// limb here is always 32 bits.
func (x Int) ToBigInt() *big.Int {
	buf := make([]byte, len(x.mag)*4)
	for i, l := range x.mag {
		binary.BigEndian.PutUint32(buf[(len(x.mag)-1-i)*4:], l)
	}

	b := new(big.Int).SetBytes(buf)
	if x.neg {
		b.Neg(b)
	}
	return b
}

// FromBigInt converts a *big.Int to an Int.
func FromBigInt(b *big.Int) Int {
	bs := new(big.Int).Abs(b).Bytes()

	pad := (4 - len(bs)%4) % 4
	padded := make([]byte, pad+len(bs))
	copy(padded[pad:], bs)

	mag := make([]limb, len(padded)/4)
	for i := range mag {
		off := len(padded) - (i+1)*4
		mag[i] = binary.BigEndian.Uint32(padded[off:])
	}

	return newInt(b.Sign() < 0, mag)
}

// Scan implements sql.Scanner.
func (x *Int) Scan(src any) error {
	var err error
	switch v := src.(type) {
	case []byte:
		*x, err = FromDecimal(string(v))
	case string:
		*x, err = FromDecimal(v)
	case int64:
		*x = FromInt64(v)
	case uint64:
		*x = FromUint64(v)
	case int:
		*x = FromInt64(int64(v))
	case *big.Int:
		*x = FromBigInt(v)
	case nil:
		err = fmt.Errorf("can't scan nil to Int")
	default:
		err = fmt.Errorf("can't scan %T to Int: %T is not supported", src, src)
	}

	return err
}

// Value implements driver.Valuer.
func (x Int) Value() (driver.Value, error) {
	return x.String(), nil
}

// NullInt is a nullable Int, for use with database/sql where the column
// may be NULL.
type NullInt struct {
	Int   Int
	Valid bool
}

// Scan implements sql.Scanner.
func (n *NullInt) Scan(src any) error {
	if src == nil {
		n.Int, n.Valid = Int{}, false
		return nil
	}

	n.Valid = true
	return n.Int.Scan(src)
}

// Value implements driver.Valuer.
func (n NullInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}

	return n.Int.String(), nil
}

// MarshalDynamoDBAttributeValue encodes x as a DynamoDB Number attribute
// value. DynamoDB numbers are themselves decimal text under the hood, so
// this round-trips losslessly regardless of magnitude.
func (x Int) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: x.String()}, nil
}

// UnmarshalDynamoDBAttributeValue decodes a DynamoDB Number or String
// attribute value into x.
func (x *Int) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		return x.UnmarshalText([]byte(v.Value))
	case *types.AttributeValueMemberS:
		return x.UnmarshalText([]byte(v.Value))
	default:
		return fmt.Errorf("can't unmarshal %T to Int: %T is not supported", av, av)
	}
}
