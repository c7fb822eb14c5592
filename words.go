package fixnum

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"math/bits"
)

// The functions in this file implement the arithmetic shared by U256, U512
// and U1024. Words are least significant first. Every function works on
// slices of equal length; dst may alias any of the inputs.

// maxWords is the word count of the widest type. Scratch arrays are sized to
// it so they stay on the stack.
const maxWords = U1024Words

func addWords(dst, a, b []uint64) {
	n := len(dst)

	var xs, ys [maxWords]uint64
	x, y := xs[:n], ys[:n]
	copy(x, a)
	copy(y, b)

	for {
		var cs [maxWords]uint64
		carry := cs[:n]
		carried := false

		for i := 0; i < n; i++ {
			x[i] += y[i]
			// Overflow out of the top word is dropped.
			if i < n-1 && x[i] < y[i] {
				carry[i+1] = 1
				carried = true
			}
		}
		if !carried {
			break
		}
		copy(y, carry)
	}

	copy(dst, x)
}

// subWords computes a - b as a + ^b + 1.
func subWords(dst, a, b []uint64) {
	n := len(dst)

	var nb, one [maxWords]uint64
	notWords(nb[:n], b)
	one[0] = 1

	addWords(dst, a, nb[:n])
	addWords(dst, dst, one[:n])
}

// mul32Words multiplies a by a 32-bit value. Each word is split into 32-bit
// halves so no intermediate product needs more than 64 bits.
func mul32Words(dst, a []uint64, m uint32) {
	n := len(dst)

	var rs, cs [maxWords]uint64
	ret, carry := rs[:n], cs[:n]

	mv := uint64(m)
	for i := 0; i < n; i++ {
		last := i == n-1
		upper := mv * (a[i] >> 32)
		lower := mv * (a[i] & 0xFFFFFFFF)
		if !last {
			carry[i+1] += upper >> 32
		}
		sum, c := bits.Add64(lower, upper<<32, 0)
		ret[i] = sum
		if c != 0 && !last {
			carry[i+1]++
		}
	}

	addWords(dst, ret, carry)
}

func mulWords(dst, a, b []uint64) {
	n := len(dst)

	var acc, part [maxWords]uint64
	for i := 0; i < 2*n; i++ {
		chunk := uint32(b[i/2] >> (32 * uint(i%2)))
		if chunk == 0 {
			continue
		}
		mul32Words(part[:n], a, chunk)
		shlWords(part[:n], part[:n], uint(32*i))
		addWords(acc[:n], acc[:n], part[:n])
	}

	copy(dst, acc[:n])
}

// quoRemWords performs bitwise long division. The caller must ensure b is
// not zero.
func quoRemWords(q, r, a, b []uint64) {
	n := len(a)

	var quo, rem, div [maxWords]uint64
	copy(rem[:n], a)
	copy(div[:n], b)

	aBits, bBits := bitLen(a), bitLen(b)
	if aBits < bBits {
		copy(q, quo[:n])
		copy(r, rem[:n])
		return
	}

	shift := aBits - bBits
	shlWords(div[:n], div[:n], uint(shift))
	for {
		if cmpWords(rem[:n], div[:n]) >= 0 {
			quo[shift/64] |= 1 << uint(shift%64)
			subWords(rem[:n], rem[:n], div[:n])
		}
		shrWords(div[:n], div[:n], 1)
		if shift == 0 {
			break
		}
		shift--
	}

	copy(q, quo[:n])
	copy(r, rem[:n])
}

// incWords adds one in place, stopping at the first word that does not wrap.
func incWords(w []uint64) {
	for i := range w {
		w[i]++
		if w[i] != 0 {
			return
		}
	}
}

func decWords(w []uint64) {
	for i := range w {
		w[i]--
		if w[i] != maxUint64 {
			return
		}
	}
}

func notWords(dst, a []uint64) {
	for i := range dst {
		dst[i] = ^a[i]
	}
}

func andWords(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func andNotWords(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] &^ b[i]
	}
}

func orWords(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func xorWords(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func shlWords(dst, a []uint64, shift uint) {
	n := len(dst)

	var rs [maxWords]uint64
	ret := rs[:n]

	if shift < uint(n*64) {
		wordShift := int(shift / 64)
		bitShift := shift % 64
		for i := 0; i+wordShift < n; i++ {
			ret[i+wordShift] |= a[i] << bitShift
			// Guard bitShift == 0: a[i] >> 64 would be a full-width shift.
			if bitShift > 0 && i+wordShift+1 < n {
				ret[i+wordShift+1] |= a[i] >> (64 - bitShift)
			}
		}
	}

	copy(dst, ret)
}

func shrWords(dst, a []uint64, shift uint) {
	n := len(dst)

	var rs [maxWords]uint64
	ret := rs[:n]

	if shift < uint(n*64) {
		wordShift := int(shift / 64)
		bitShift := shift % 64
		for i := wordShift; i < n; i++ {
			ret[i-wordShift] |= a[i] >> bitShift
			if bitShift > 0 && i < n-1 {
				ret[i-wordShift] |= a[i+1] << (64 - bitShift)
			}
		}
	}

	copy(dst, ret)
}

// cmpWords compares from the most significant word down. The storage order is
// the reverse, so a lexicographic compare of the arrays would be wrong.
func cmpWords(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] > b[i] {
			return 1
		} else if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// bitLen returns the number of significant bits, 0 for zero.
func bitLen(a []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return 64*(i+1) - bits.LeadingZeros64(a[i])
		}
	}
	return 0
}

// trailingZeros returns len(a)*64 for zero.
func trailingZeros(a []uint64) uint {
	n := len(a)
	for i := 0; i < n-1; i++ {
		if a[i] != 0 {
			return uint(64*i + bits.TrailingZeros64(a[i]))
		}
	}
	return uint(64*(n-1) + bits.TrailingZeros64(a[n-1]))
}

func bitWords(a []uint64, idx uint) bool {
	return a[idx/64]&(1<<(idx%64)) != 0
}

// maskWords clears every bit at or above position n.
func maskWords(dst, a []uint64, n uint) {
	for i := range dst {
		lo := uint(64 * i)
		if n >= lo+64 {
			dst[i] = a[i]
		} else if n > lo {
			dst[i] = a[i] & (1<<(n-lo) - 1)
		} else {
			dst[i] = 0
		}
	}
}

func putWordsBE(dst []byte, w []uint64) {
	n := len(w)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint64(dst[i*8:], w[n-1-i])
	}
}

func putWordsLE(dst []byte, w []uint64) {
	for i := range w {
		binary.LittleEndian.PutUint64(dst[i*8:], w[i])
	}
}

// wordsFromBE reverses the word order while decoding each 8-byte chunk.
func wordsFromBE(dst []uint64, b []byte) {
	n := len(dst)
	for i := 0; i < n; i++ {
		dst[n-1-i] = binary.BigEndian.Uint64(b[i*8:])
	}
}

func wordsFromLE(dst []uint64, b []byte) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
}

func hexWords(w []uint64) string {
	var buf [maxWords * 8]byte
	n := len(w) * 8
	putWordsBE(buf[:n], w)
	return hex.EncodeToString(buf[:n])
}

// wordsFromHex accepts exactly 16 characters per word in either case. dst is
// left untouched on error.
func wordsFromHex(dst []uint64, s string) error {
	n := len(dst) * 8
	if len(s) != n*2 {
		return &ParseLengthError{Actual: len(s), Expected: n * 2}
	}

	var buf [maxWords * 8]byte
	if _, err := hex.Decode(buf[:n], []byte(s)); err != nil {
		return fmt.Errorf("%w string %q", ErrInvalidHex, s)
	}
	wordsFromBE(dst, buf[:n])
	return nil
}

// wordsFromBigInt clamps to the maximum value and returns false if v is
// negative or does not fit.
func wordsFromBigInt(dst []uint64, v *big.Int) (inRange bool) {
	if v.Sign() < 0 {
		for i := range dst {
			dst[i] = 0
		}
		return false
	}

	n := len(dst) * 8
	if v.BitLen() > n*8 {
		for i := range dst {
			dst[i] = maxUint64
		}
		return false
	}

	var buf [maxWords * 8]byte
	v.FillBytes(buf[:n])
	wordsFromBE(dst, buf[:n])
	return true
}

func wordsIntoBigInt(b *big.Int, w []uint64) {
	var buf [maxWords * 8]byte
	n := len(w) * 8
	putWordsBE(buf[:n], w)
	b.SetBytes(buf[:n])
}
