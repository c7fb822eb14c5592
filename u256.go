package fixnum

import (
	"fmt"
	"math/big"
)

// U256 is an unsigned 256-bit integer made of U256Words 64-bit words, least
// significant first. Arithmetic wraps modulo 2^256; only division by zero
// panics.
type U256 struct {
	w [U256Words]uint64
}

// U256FromWords wraps a word array without copying or validation; every word
// pattern is a valid value.
func U256FromWords(w [U256Words]uint64) U256 { return U256{w: w} }

func U256From64(v uint64) U256 { return U256{w: [U256Words]uint64{v}} }
func U256From32(v uint32) U256 { return U256From64(uint64(v)) }
func U256From16(v uint16) U256 { return U256From64(uint64(v)) }
func U256From8(v uint8) U256   { return U256From64(uint64(v)) }

// U256FromRaw128 widens a 128-bit value given as two halves.
func U256FromRaw128(hi, lo uint64) U256 { return U256{w: [U256Words]uint64{lo, hi}} }

func U256FromWordSlice(w []uint64) (out U256, err error) {
	if len(w) != U256Words {
		return out, &ParseLengthError{Actual: len(w), Expected: U256Words}
	}
	copy(out.w[:], w)
	return out, nil
}

func U256FromBEBytes(b [U256Bytes]byte) (out U256) {
	wordsFromBE(out.w[:], b[:])
	return out
}

func U256FromLEBytes(b [U256Bytes]byte) (out U256) {
	wordsFromLE(out.w[:], b[:])
	return out
}

// U256FromBESlice decodes exactly U256Bytes big-endian bytes.
func U256FromBESlice(b []byte) (out U256, err error) {
	if len(b) != U256Bytes {
		return out, &ParseLengthError{Actual: len(b), Expected: U256Bytes}
	}
	wordsFromBE(out.w[:], b)
	return out, nil
}

// U256FromLESlice decodes exactly U256Bytes little-endian bytes.
func U256FromLESlice(b []byte) (out U256, err error) {
	if len(b) != U256Bytes {
		return out, &ParseLengthError{Actual: len(b), Expected: U256Bytes}
	}
	wordsFromLE(out.w[:], b)
	return out, nil
}

// U256FromHex parses exactly 2*U256Bytes hex characters, most significant first.
func U256FromHex(s string) (out U256, err error) {
	if err := wordsFromHex(out.w[:], s); err != nil {
		return U256{}, err
	}
	return out, nil
}

// U256FromString creates a U256 from a decimal string. Overflow truncates to
// MaxU256 and sets accurate to 'false'.
func U256FromString(s string) (out U256, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("fixnum: u256 string %q invalid", s)
	}
	out, accurate = U256FromBigInt(b)
	return out, accurate, nil
}

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets inRange to 'false'.
func U256FromBigInt(v *big.Int) (out U256, inRange bool) {
	inRange = wordsFromBigInt(out.w[:], v)
	return out, inRange
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	for i := range out.w {
		out.w[i] = source.Uint64()
	}
	return out
}

// Words returns the underlying words, least significant first.
func (u U256) Words() [U256Words]uint64 { return u.w }

func (u U256) Word(i int) uint64 { return u.w[i] }

// AsUint32 truncates the U256 to its lowest 32 bits.
func (u U256) AsUint32() uint32 { return uint32(u.w[0]) }

// AsUint64 truncates the U256 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U256) AsUint64() uint64 { return u.w[0] }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return bitLen(u.w[:]) <= 64 }

func (u U256) IsZero() bool { return u == ZeroU256 }

func (u U256) Add(n U256) (v U256) {
	addWords(v.w[:], u.w[:], n.w[:])
	return v
}

func (u U256) Sub(n U256) (v U256) {
	subWords(v.w[:], u.w[:], n.w[:])
	return v
}

// Mul32 multiplies by a 32-bit value.
func (u U256) Mul32(n uint32) (v U256) {
	mul32Words(v.w[:], u.w[:], n)
	return v
}

func (u U256) Mul(n U256) (v U256) {
	mulWords(v.w[:], u.w[:], n.w[:])
	return v
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U256) Quo(by U256) (q U256) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder u%by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U256) Rem(by U256) (r U256) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient and remainder for by != 0, such that
// u == q*by + r and r < by.
func (u U256) QuoRem(by U256) (q, r U256) {
	if by.IsZero() {
		panic("fixnum: u256 division by zero")
	}
	quoRemWords(q.w[:], r.w[:], u.w[:], by.w[:])
	return q, r
}

// Inc adds one. MaxU256.Inc() wraps to zero.
func (u U256) Inc() U256 {
	incWords(u.w[:])
	return u
}

// Dec subtracts one. ZeroU256.Dec() wraps to MaxU256.
func (u U256) Dec() U256 {
	decWords(u.w[:])
	return u
}

func (u U256) And(n U256) U256 {
	andWords(u.w[:], u.w[:], n.w[:])
	return u
}

func (u U256) AndNot(n U256) U256 {
	andNotWords(u.w[:], u.w[:], n.w[:])
	return u
}

func (u U256) Or(n U256) U256 {
	orWords(u.w[:], u.w[:], n.w[:])
	return u
}

func (u U256) Xor(n U256) U256 {
	xorWords(u.w[:], u.w[:], n.w[:])
	return u
}

func (u U256) Not() U256 {
	notWords(u.w[:], u.w[:])
	return u
}

func (u U256) Lsh(n uint) U256 {
	shlWords(u.w[:], u.w[:], n)
	return u
}

func (u U256) Rsh(n uint) U256 {
	shrWords(u.w[:], u.w[:], n)
	return u
}

func (u U256) Cmp(n U256) int { return cmpWords(u.w[:], n.w[:]) }

func (u U256) Equal(n U256) bool            { return u == n }
func (u U256) GreaterThan(n U256) bool      { return u.Cmp(n) > 0 }
func (u U256) GreaterOrEqualTo(n U256) bool { return u.Cmp(n) >= 0 }
func (u U256) LessThan(n U256) bool         { return u.Cmp(n) < 0 }
func (u U256) LessOrEqualTo(n U256) bool    { return u.Cmp(n) <= 0 }

// Bit reports whether bit i is set. It panics if i >= U256Bits.
func (u U256) Bit(i uint) bool { return bitWords(u.w[:], i) }

// BitLen returns the number of bits required to represent u; 0 for zero.
func (u U256) BitLen() int { return bitLen(u.w[:]) }

func (u U256) LeadingZeros() uint { return uint(U256Bits - bitLen(u.w[:])) }

func (u U256) TrailingZeros() uint { return trailingZeros(u.w[:]) }

// Mask clears every bit at or above position n.
func (u U256) Mask(n uint) U256 {
	maskWords(u.w[:], u.w[:], n)
	return u
}

// BitSlice returns bits [start, end) shifted down to position 0.
func (u U256) BitSlice(start, end uint) U256 {
	if end < start {
		panic("fixnum: u256 bit slice end before start")
	}
	return u.Rsh(start).Mask(end - start)
}

func (u U256) BEBytes() (out [U256Bytes]byte) {
	putWordsBE(out[:], u.w[:])
	return out
}

func (u U256) LEBytes() (out [U256Bytes]byte) {
	putWordsLE(out[:], u.w[:])
	return out
}

// AppendBEBytes appends the big-endian encoding of u to dst.
func (u U256) AppendBEBytes(dst []byte) []byte {
	b := u.BEBytes()
	return append(dst, b[:]...)
}

// Hex returns 2*U256Bytes lowercase hex characters, most significant first.
func (u U256) Hex() string { return hexWords(u.w[:]) }

func (u U256) String() string { return "0x" + u.Hex() }

// Format supports %s and %v via String; other verbs are handed to big.Int.
func (u U256) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		fmt.Fprint(s, u.String())
	default:
		u.AsBigInt().Format(s, c)
	}
}

func (u U256) IntoBigInt(b *big.Int) { wordsIntoBigInt(b, u.w[:]) }

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U256) MarshalText() ([]byte, error) {
	return []byte(u.Hex()), nil
}

func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, err := U256FromHex(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.Hex() + `"`), nil
}

// UnmarshalJSON accepts a quoted hex string. null leaves u unchanged.
func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	ln := len(bts)
	if ln < 2 || bts[0] != '"' || bts[ln-1] != '"' {
		return fmt.Errorf("fixnum: u256 invalid JSON %q", string(bts))
	}
	return u.UnmarshalText(bts[1 : ln-1])
}

// MarshalBinary returns the big-endian encoding, always U256Bytes long.
func (u U256) MarshalBinary() ([]byte, error) {
	return u.AppendBEBytes(make([]byte, 0, U256Bytes)), nil
}

func (u *U256) UnmarshalBinary(bts []byte) error {
	v, err := U256FromBESlice(bts)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
