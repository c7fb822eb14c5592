package fixnum

import (
	"fmt"
	"math/big"
)

// U512 is an unsigned 512-bit integer made of U512Words 64-bit words, least
// significant first. Arithmetic wraps modulo 2^512; only division by zero
// panics.
type U512 struct {
	w [U512Words]uint64
}

// U512FromWords wraps a word array without copying or validation; every word
// pattern is a valid value.
func U512FromWords(w [U512Words]uint64) U512 { return U512{w: w} }

func U512From64(v uint64) U512 { return U512{w: [U512Words]uint64{v}} }
func U512From32(v uint32) U512 { return U512From64(uint64(v)) }
func U512From16(v uint16) U512 { return U512From64(uint64(v)) }
func U512From8(v uint8) U512   { return U512From64(uint64(v)) }

// U512FromRaw128 widens a 128-bit value given as two halves.
func U512FromRaw128(hi, lo uint64) U512 { return U512{w: [U512Words]uint64{lo, hi}} }

func U512FromWordSlice(w []uint64) (out U512, err error) {
	if len(w) != U512Words {
		return out, &ParseLengthError{Actual: len(w), Expected: U512Words}
	}
	copy(out.w[:], w)
	return out, nil
}

func U512FromBEBytes(b [U512Bytes]byte) (out U512) {
	wordsFromBE(out.w[:], b[:])
	return out
}

func U512FromLEBytes(b [U512Bytes]byte) (out U512) {
	wordsFromLE(out.w[:], b[:])
	return out
}

func U512FromBESlice(b []byte) (out U512, err error) {
	if len(b) != U512Bytes {
		return out, &ParseLengthError{Actual: len(b), Expected: U512Bytes}
	}
	wordsFromBE(out.w[:], b)
	return out, nil
}

func U512FromLESlice(b []byte) (out U512, err error) {
	if len(b) != U512Bytes {
		return out, &ParseLengthError{Actual: len(b), Expected: U512Bytes}
	}
	wordsFromLE(out.w[:], b)
	return out, nil
}

// U512FromHex parses exactly 2*U512Bytes hex characters, most significant first.
func U512FromHex(s string) (out U512, err error) {
	if err := wordsFromHex(out.w[:], s); err != nil {
		return U512{}, err
	}
	return out, nil
}

// U512FromString creates a U512 from a decimal string. Overflow truncates to
// MaxU512 and sets accurate to 'false'.
func U512FromString(s string) (out U512, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("fixnum: u512 string %q invalid", s)
	}
	out, accurate = U512FromBigInt(b)
	return out, accurate, nil
}

// U512FromBigInt creates a U512 from a big.Int. Overflow truncates to MaxU512
// and sets inRange to 'false'.
func U512FromBigInt(v *big.Int) (out U512, inRange bool) {
	inRange = wordsFromBigInt(out.w[:], v)
	return out, inRange
}

// RandU512 generates an unsigned 512-bit random integer from an external source.
func RandU512(source RandSource) (out U512) {
	for i := range out.w {
		out.w[i] = source.Uint64()
	}
	return out
}

// Words returns the underlying words, least significant first.
func (u U512) Words() [U512Words]uint64 { return u.w }

func (u U512) Word(i int) uint64 { return u.w[i] }

// AsUint32 truncates the U512 to its lowest 32 bits.
func (u U512) AsUint32() uint32 { return uint32(u.w[0]) }

// AsUint64 truncates the U512 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U512) AsUint64() uint64 { return u.w[0] }

// IsUint64 reports whether u can be represented as a uint64.
func (u U512) IsUint64() bool { return bitLen(u.w[:]) <= 64 }

func (u U512) IsZero() bool { return u == ZeroU512 }

func (u U512) Add(n U512) (v U512) {
	addWords(v.w[:], u.w[:], n.w[:])
	return v
}

func (u U512) Sub(n U512) (v U512) {
	subWords(v.w[:], u.w[:], n.w[:])
	return v
}

// Mul32 multiplies by a 32-bit value.
func (u U512) Mul32(n uint32) (v U512) {
	mul32Words(v.w[:], u.w[:], n)
	return v
}

func (u U512) Mul(n U512) (v U512) {
	mulWords(v.w[:], u.w[:], n.w[:])
	return v
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U512) Quo(by U512) (q U512) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder u%by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U512) Rem(by U512) (r U512) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient and remainder for by != 0, such that
// u == q*by + r and r < by.
func (u U512) QuoRem(by U512) (q, r U512) {
	if by.IsZero() {
		panic("fixnum: u512 division by zero")
	}
	quoRemWords(q.w[:], r.w[:], u.w[:], by.w[:])
	return q, r
}

// Inc adds one. MaxU512.Inc() wraps to zero.
func (u U512) Inc() U512 {
	incWords(u.w[:])
	return u
}

// Dec subtracts one. ZeroU512.Dec() wraps to MaxU512.
func (u U512) Dec() U512 {
	decWords(u.w[:])
	return u
}

func (u U512) And(n U512) U512 {
	andWords(u.w[:], u.w[:], n.w[:])
	return u
}

func (u U512) AndNot(n U512) U512 {
	andNotWords(u.w[:], u.w[:], n.w[:])
	return u
}

func (u U512) Or(n U512) U512 {
	orWords(u.w[:], u.w[:], n.w[:])
	return u
}

func (u U512) Xor(n U512) U512 {
	xorWords(u.w[:], u.w[:], n.w[:])
	return u
}

func (u U512) Not() U512 {
	notWords(u.w[:], u.w[:])
	return u
}

func (u U512) Lsh(n uint) U512 {
	shlWords(u.w[:], u.w[:], n)
	return u
}

func (u U512) Rsh(n uint) U512 {
	shrWords(u.w[:], u.w[:], n)
	return u
}

func (u U512) Cmp(n U512) int { return cmpWords(u.w[:], n.w[:]) }

func (u U512) Equal(n U512) bool            { return u == n }
func (u U512) GreaterThan(n U512) bool      { return u.Cmp(n) > 0 }
func (u U512) GreaterOrEqualTo(n U512) bool { return u.Cmp(n) >= 0 }
func (u U512) LessThan(n U512) bool         { return u.Cmp(n) < 0 }
func (u U512) LessOrEqualTo(n U512) bool    { return u.Cmp(n) <= 0 }

// Bit reports whether bit i is set. It panics if i >= U512Bits.
func (u U512) Bit(i uint) bool { return bitWords(u.w[:], i) }

// BitLen returns the number of bits required to represent u; 0 for zero.
func (u U512) BitLen() int { return bitLen(u.w[:]) }

func (u U512) LeadingZeros() uint { return uint(U512Bits - bitLen(u.w[:])) }

func (u U512) TrailingZeros() uint { return trailingZeros(u.w[:]) }

func (u U512) Mask(n uint) U512 {
	maskWords(u.w[:], u.w[:], n)
	return u
}

// BitSlice returns bits [start, end) shifted down to position 0.
func (u U512) BitSlice(start, end uint) U512 {
	if end < start {
		panic("fixnum: u512 bit slice end before start")
	}
	return u.Rsh(start).Mask(end - start)
}

func (u U512) BEBytes() (out [U512Bytes]byte) {
	putWordsBE(out[:], u.w[:])
	return out
}

func (u U512) LEBytes() (out [U512Bytes]byte) {
	putWordsLE(out[:], u.w[:])
	return out
}

// AppendBEBytes appends the big-endian encoding of u to dst.
func (u U512) AppendBEBytes(dst []byte) []byte {
	b := u.BEBytes()
	return append(dst, b[:]...)
}

// Hex returns 2*U512Bytes lowercase hex characters, most significant first.
func (u U512) Hex() string { return hexWords(u.w[:]) }

func (u U512) String() string { return "0x" + u.Hex() }

// Format supports %s and %v via String; other verbs are handed to big.Int.
func (u U512) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		fmt.Fprint(s, u.String())
	default:
		u.AsBigInt().Format(s, c)
	}
}

func (u U512) IntoBigInt(b *big.Int) { wordsIntoBigInt(b, u.w[:]) }

func (u U512) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U512) MarshalText() ([]byte, error) {
	return []byte(u.Hex()), nil
}

func (u *U512) UnmarshalText(bts []byte) (err error) {
	v, err := U512FromHex(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U512) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.Hex() + `"`), nil
}

// UnmarshalJSON accepts a quoted hex string. null leaves u unchanged.
func (u *U512) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	ln := len(bts)
	if ln < 2 || bts[0] != '"' || bts[ln-1] != '"' {
		return fmt.Errorf("fixnum: u512 invalid JSON %q", string(bts))
	}
	return u.UnmarshalText(bts[1 : ln-1])
}

// MarshalBinary returns the big-endian encoding, always U512Bytes long.
func (u U512) MarshalBinary() ([]byte, error) {
	return u.AppendBEBytes(make([]byte, 0, U512Bytes)), nil
}

func (u *U512) UnmarshalBinary(bts []byte) error {
	v, err := U512FromBESlice(bts)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
