package fixnum

import (
	"fmt"
	"math/big"
)

// U1024 is an unsigned 1024-bit integer made of U1024Words 64-bit words, least
// significant first. Arithmetic wraps modulo 2^1024; only division by zero
// panics.
type U1024 struct {
	w [U1024Words]uint64
}

// U1024FromWords wraps a word array without copying or validation; every word
// pattern is a valid value.
func U1024FromWords(w [U1024Words]uint64) U1024 { return U1024{w: w} }

func U1024From64(v uint64) U1024 { return U1024{w: [U1024Words]uint64{v}} }
func U1024From32(v uint32) U1024 { return U1024From64(uint64(v)) }
func U1024From16(v uint16) U1024 { return U1024From64(uint64(v)) }
func U1024From8(v uint8) U1024   { return U1024From64(uint64(v)) }

// U1024FromRaw128 widens a 128-bit value given as two halves.
func U1024FromRaw128(hi, lo uint64) U1024 { return U1024{w: [U1024Words]uint64{lo, hi}} }

func U1024FromWordSlice(w []uint64) (out U1024, err error) {
	if len(w) != U1024Words {
		return out, &ParseLengthError{Actual: len(w), Expected: U1024Words}
	}
	copy(out.w[:], w)
	return out, nil
}

func U1024FromBEBytes(b [U1024Bytes]byte) (out U1024) {
	wordsFromBE(out.w[:], b[:])
	return out
}

func U1024FromLEBytes(b [U1024Bytes]byte) (out U1024) {
	wordsFromLE(out.w[:], b[:])
	return out
}

// U1024FromBESlice decodes exactly U1024Bytes big-endian bytes.
func U1024FromBESlice(b []byte) (out U1024, err error) {
	if len(b) != U1024Bytes {
		return out, &ParseLengthError{Actual: len(b), Expected: U1024Bytes}
	}
	wordsFromBE(out.w[:], b)
	return out, nil
}

// U1024FromLESlice decodes exactly U1024Bytes little-endian bytes.
func U1024FromLESlice(b []byte) (out U1024, err error) {
	if len(b) != U1024Bytes {
		return out, &ParseLengthError{Actual: len(b), Expected: U1024Bytes}
	}
	wordsFromLE(out.w[:], b)
	return out, nil
}

// U1024FromHex parses exactly 2*U1024Bytes hex characters, most significant first.
func U1024FromHex(s string) (out U1024, err error) {
	if err := wordsFromHex(out.w[:], s); err != nil {
		return U1024{}, err
	}
	return out, nil
}

// U1024FromString creates a U1024 from a decimal string. Overflow truncates to
// MaxU1024 and sets accurate to 'false'.
func U1024FromString(s string) (out U1024, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("fixnum: u1024 string %q invalid", s)
	}
	out, accurate = U1024FromBigInt(b)
	return out, accurate, nil
}

// U1024FromBigInt creates a U1024 from a big.Int. Overflow truncates to MaxU1024
// and sets inRange to 'false'.
func U1024FromBigInt(v *big.Int) (out U1024, inRange bool) {
	inRange = wordsFromBigInt(out.w[:], v)
	return out, inRange
}

// RandU1024 generates an unsigned 1024-bit random integer from an external source.
func RandU1024(source RandSource) (out U1024) {
	for i := range out.w {
		out.w[i] = source.Uint64()
	}
	return out
}

// Words returns the underlying words, least significant first.
func (u U1024) Words() [U1024Words]uint64 { return u.w }

func (u U1024) Word(i int) uint64 { return u.w[i] }

// AsUint32 truncates the U1024 to its lowest 32 bits.
func (u U1024) AsUint32() uint32 { return uint32(u.w[0]) }

// AsUint64 truncates the U1024 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U1024) AsUint64() uint64 { return u.w[0] }

// IsUint64 reports whether u can be represented as a uint64.
func (u U1024) IsUint64() bool { return bitLen(u.w[:]) <= 64 }

func (u U1024) IsZero() bool { return u == ZeroU1024 }

func (u U1024) Add(n U1024) (v U1024) {
	addWords(v.w[:], u.w[:], n.w[:])
	return v
}

func (u U1024) Sub(n U1024) (v U1024) {
	subWords(v.w[:], u.w[:], n.w[:])
	return v
}

// Mul32 multiplies by a 32-bit value.
func (u U1024) Mul32(n uint32) (v U1024) {
	mul32Words(v.w[:], u.w[:], n)
	return v
}

func (u U1024) Mul(n U1024) (v U1024) {
	mulWords(v.w[:], u.w[:], n.w[:])
	return v
}

func (u U1024) Quo(by U1024) (q U1024) {
	q, _ = u.QuoRem(by)
	return q
}

func (u U1024) Rem(by U1024) (r U1024) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient and remainder for by != 0, such that
// u == q*by + r and r < by.
func (u U1024) QuoRem(by U1024) (q, r U1024) {
	if by.IsZero() {
		panic("fixnum: u1024 division by zero")
	}
	quoRemWords(q.w[:], r.w[:], u.w[:], by.w[:])
	return q, r
}

// Inc adds one. MaxU1024.Inc() wraps to zero.
func (u U1024) Inc() U1024 {
	incWords(u.w[:])
	return u
}

// Dec subtracts one. ZeroU1024.Dec() wraps to MaxU1024.
func (u U1024) Dec() U1024 {
	decWords(u.w[:])
	return u
}

func (u U1024) And(n U1024) U1024 {
	andWords(u.w[:], u.w[:], n.w[:])
	return u
}

func (u U1024) AndNot(n U1024) U1024 {
	andNotWords(u.w[:], u.w[:], n.w[:])
	return u
}

func (u U1024) Or(n U1024) U1024 {
	orWords(u.w[:], u.w[:], n.w[:])
	return u
}

func (u U1024) Xor(n U1024) U1024 {
	xorWords(u.w[:], u.w[:], n.w[:])
	return u
}

func (u U1024) Not() U1024 {
	notWords(u.w[:], u.w[:])
	return u
}

func (u U1024) Lsh(n uint) U1024 {
	shlWords(u.w[:], u.w[:], n)
	return u
}

func (u U1024) Rsh(n uint) U1024 {
	shrWords(u.w[:], u.w[:], n)
	return u
}

func (u U1024) Cmp(n U1024) int { return cmpWords(u.w[:], n.w[:]) }

func (u U1024) Equal(n U1024) bool            { return u == n }
func (u U1024) GreaterThan(n U1024) bool      { return u.Cmp(n) > 0 }
func (u U1024) GreaterOrEqualTo(n U1024) bool { return u.Cmp(n) >= 0 }
func (u U1024) LessThan(n U1024) bool         { return u.Cmp(n) < 0 }
func (u U1024) LessOrEqualTo(n U1024) bool    { return u.Cmp(n) <= 0 }

// Bit reports whether bit i is set. It panics if i >= U1024Bits.
func (u U1024) Bit(i uint) bool { return bitWords(u.w[:], i) }

// BitLen returns the number of bits required to represent u; 0 for zero.
func (u U1024) BitLen() int { return bitLen(u.w[:]) }

func (u U1024) LeadingZeros() uint { return uint(U1024Bits - bitLen(u.w[:])) }

func (u U1024) TrailingZeros() uint { return trailingZeros(u.w[:]) }

// Mask clears every bit at or above position n.
func (u U1024) Mask(n uint) U1024 {
	maskWords(u.w[:], u.w[:], n)
	return u
}

// BitSlice returns bits [start, end) shifted down to position 0.
func (u U1024) BitSlice(start, end uint) U1024 {
	if end < start {
		panic("fixnum: u1024 bit slice end before start")
	}
	return u.Rsh(start).Mask(end - start)
}

func (u U1024) BEBytes() (out [U1024Bytes]byte) {
	putWordsBE(out[:], u.w[:])
	return out
}

func (u U1024) LEBytes() (out [U1024Bytes]byte) {
	putWordsLE(out[:], u.w[:])
	return out
}

func (u U1024) AppendBEBytes(dst []byte) []byte {
	b := u.BEBytes()
	return append(dst, b[:]...)
}

// Hex returns 2*U1024Bytes lowercase hex characters, most significant first.
func (u U1024) Hex() string { return hexWords(u.w[:]) }

func (u U1024) String() string { return "0x" + u.Hex() }

// Format supports %s and %v via String; other verbs are handed to big.Int.
func (u U1024) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		fmt.Fprint(s, u.String())
	default:
		u.AsBigInt().Format(s, c)
	}
}

func (u U1024) IntoBigInt(b *big.Int) { wordsIntoBigInt(b, u.w[:]) }

func (u U1024) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U1024) MarshalText() ([]byte, error) {
	return []byte(u.Hex()), nil
}

func (u *U1024) UnmarshalText(bts []byte) (err error) {
	v, err := U1024FromHex(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U1024) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.Hex() + `"`), nil
}

// UnmarshalJSON accepts a quoted hex string. null leaves u unchanged.
func (u *U1024) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	ln := len(bts)
	if ln < 2 || bts[0] != '"' || bts[ln-1] != '"' {
		return fmt.Errorf("fixnum: u1024 invalid JSON %q", string(bts))
	}
	return u.UnmarshalText(bts[1 : ln-1])
}

// MarshalBinary returns the big-endian encoding, always U1024Bytes long.
func (u U1024) MarshalBinary() ([]byte, error) {
	return u.AppendBEBytes(make([]byte, 0, U1024Bytes)), nil
}

func (u *U1024) UnmarshalBinary(bts []byte) error {
	v, err := U1024FromBESlice(bts)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
