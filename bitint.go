package fixnum

import (
	"fmt"
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

// width is implemented by the zero-size marker types that carry the bit size
// of a Uint.
type width interface {
	bits() uint
}

type (
	width2  struct{}
	width3  struct{}
	width4  struct{}
	width5  struct{}
	width6  struct{}
	width7  struct{}
	width24 struct{}
)

func (width2) bits() uint  { return 2 }
func (width3) bits() uint  { return 3 }
func (width4) bits() uint  { return 4 }
func (width5) bits() uint  { return 5 }
func (width6) bits() uint  { return 6 }
func (width7) bits() uint  { return 7 }
func (width24) bits() uint { return 24 }

// Uint is an unsigned integer of W bits stored in the primitive T. The value
// is always in the range [0, 2^W-1].
//
// Construction from an out-of-range value returns a *ValueOverflow. Arithmetic
// that leaves the range is treated as a programming error and panics; it
// never wraps. This is unlike U256 and friends, which wrap silently.
type Uint[W width, T constraints.Unsigned] struct {
	v T
}

type (
	U2  = Uint[width2, uint8]
	U3  = Uint[width3, uint8]
	U4  = Uint[width4, uint8]
	U5  = Uint[width5, uint8]
	U6  = Uint[width6, uint8]
	U7  = Uint[width7, uint8]
	U24 = Uint[width24, uint32]
)

func U2From8(v uint8) (U2, error)    { return newUint[width2, uint8](uint64(v)) }
func U3From8(v uint8) (U3, error)    { return newUint[width3, uint8](uint64(v)) }
func U4From8(v uint8) (U4, error)    { return newUint[width4, uint8](uint64(v)) }
func U5From8(v uint8) (U5, error)    { return newUint[width5, uint8](uint64(v)) }
func U6From8(v uint8) (U6, error)    { return newUint[width6, uint8](uint64(v)) }
func U7From8(v uint8) (U7, error)    { return newUint[width7, uint8](uint64(v)) }
func U24From32(v uint32) (U24, error) { return newUint[width24, uint32](uint64(v)) }

// MustU2 and the other Must* constructors panic if v is out of range. They
// are meant for values that are known to be valid, such as literals.
func MustU2(v uint8) U2    { return mustUint[width2, uint8](uint64(v)) }
func MustU3(v uint8) U3    { return mustUint[width3, uint8](uint64(v)) }
func MustU4(v uint8) U4    { return mustUint[width4, uint8](uint64(v)) }
func MustU5(v uint8) U5    { return mustUint[width5, uint8](uint64(v)) }
func MustU6(v uint8) U6    { return mustUint[width6, uint8](uint64(v)) }
func MustU7(v uint8) U7    { return mustUint[width7, uint8](uint64(v)) }
func MustU24(v uint32) U24 { return mustUint[width24, uint32](uint64(v)) }

// ParseU2 and the other Parse* functions parse a decimal string. Text that is
// malformed, too large for the storage type, or out of range fails.
func ParseU2(s string) (U2, error)   { return parseUint[width2, uint8](s) }
func ParseU3(s string) (U3, error)   { return parseUint[width3, uint8](s) }
func ParseU4(s string) (U4, error)   { return parseUint[width4, uint8](s) }
func ParseU5(s string) (U5, error)   { return parseUint[width5, uint8](s) }
func ParseU6(s string) (U6, error)   { return parseUint[width6, uint8](s) }
func ParseU7(s string) (U7, error)   { return parseUint[width7, uint8](s) }
func ParseU24(s string) (U24, error) { return parseUint[width24, uint32](s) }

func maxOf[W width]() uint64 {
	var w W
	return 1<<w.bits() - 1
}

func newUint[W width, T constraints.Unsigned](v uint64) (out Uint[W, T], err error) {
	if max := maxOf[W](); v > max {
		return out, &ValueOverflow{Max: max, Value: v}
	}
	out.v = T(v)
	return out, nil
}

func mustUint[W width, T constraints.Unsigned](v uint64) Uint[W, T] {
	out, err := newUint[W, T](v)
	if err != nil {
		panic(fmt.Errorf("fixnum: provided value exceeds max: %w", err))
	}
	return out
}

func parseUint[W width, T constraints.Unsigned](s string) (out Uint[W, T], err error) {
	size := bits.Len64(uint64(^T(0)))
	v, err := strconv.ParseUint(s, 10, size)
	if err != nil {
		var w W
		return out, fmt.Errorf("fixnum: u%d string %q invalid: %w", w.bits(), s, err)
	}
	return newUint[W, T](v)
}

// Bits returns the bit size of the type.
func (u Uint[W, T]) Bits() uint {
	var w W
	return w.bits()
}

// Raw returns the value as its storage primitive.
func (u Uint[W, T]) Raw() T { return u.v }

func (u Uint[W, T]) AsUint64() uint64 { return uint64(u.v) }

func (u Uint[W, T]) IsZero() bool { return u.v == 0 }

// Set replaces the value in place. u is unchanged if v is out of range.
func (u *Uint[W, T]) Set(v T) error {
	n, err := newUint[W, T](uint64(v))
	if err != nil {
		return err
	}
	*u = n
	return nil
}

// result validates the outcome of an operation. Results are computed in
// uint64, so a subtraction underflow shows up as a huge value and fails here
// too.
func (u Uint[W, T]) result(op string, v uint64) Uint[W, T] {
	out, err := newUint[W, T](v)
	if err != nil {
		panic(fmt.Errorf("fixnum: integer overflow during %s: %w", op, err))
	}
	return out
}

func (u Uint[W, T]) checkDivisor(n T) {
	if n == 0 {
		panic(fmt.Sprintf("fixnum: u%d division by zero", u.Bits()))
	}
}

func (u Uint[W, T]) Add(n Uint[W, T]) Uint[W, T] { return u.AddRaw(n.v) }
func (u Uint[W, T]) Sub(n Uint[W, T]) Uint[W, T] { return u.SubRaw(n.v) }
func (u Uint[W, T]) Mul(n Uint[W, T]) Uint[W, T] { return u.MulRaw(n.v) }
func (u Uint[W, T]) Quo(n Uint[W, T]) Uint[W, T] { return u.QuoRaw(n.v) }
func (u Uint[W, T]) Rem(n Uint[W, T]) Uint[W, T] { return u.RemRaw(n.v) }
func (u Uint[W, T]) And(n Uint[W, T]) Uint[W, T] { return u.AndRaw(n.v) }
func (u Uint[W, T]) Or(n Uint[W, T]) Uint[W, T]  { return u.OrRaw(n.v) }
func (u Uint[W, T]) Xor(n Uint[W, T]) Uint[W, T] { return u.XorRaw(n.v) }

func (u Uint[W, T]) AddRaw(n T) Uint[W, T] { return u.result("add", uint64(u.v)+uint64(n)) }
func (u Uint[W, T]) SubRaw(n T) Uint[W, T] { return u.result("sub", uint64(u.v)-uint64(n)) }
func (u Uint[W, T]) MulRaw(n T) Uint[W, T] { return u.result("mul", uint64(u.v)*uint64(n)) }

func (u Uint[W, T]) QuoRaw(n T) Uint[W, T] {
	u.checkDivisor(n)
	return u.result("quo", uint64(u.v)/uint64(n))
}

func (u Uint[W, T]) RemRaw(n T) Uint[W, T] {
	u.checkDivisor(n)
	return u.result("rem", uint64(u.v)%uint64(n))
}

func (u Uint[W, T]) AndRaw(n T) Uint[W, T] { return u.result("and", uint64(u.v)&uint64(n)) }
func (u Uint[W, T]) OrRaw(n T) Uint[W, T]  { return u.result("or", uint64(u.v)|uint64(n)) }
func (u Uint[W, T]) XorRaw(n T) Uint[W, T] { return u.result("xor", uint64(u.v)^uint64(n)) }

// Lsh panics if any set bit is shifted past the top of the type.
func (u Uint[W, T]) Lsh(n uint) Uint[W, T] {
	v := uint64(u.v)
	if v != 0 && n > uint(bits.LeadingZeros64(v)) {
		// Bits would fall off the top of the uint64; saturate so the range
		// check still fails.
		v = maxUint64
	} else {
		v <<= n
	}
	return u.result("lsh", v)
}

// Rsh never panics; shifting by the bit size or more yields zero.
func (u Uint[W, T]) Rsh(n uint) Uint[W, T] { return u.result("rsh", uint64(u.v)>>n) }

func (u Uint[W, T]) Inc() Uint[W, T] { return u.AddRaw(1) }
func (u Uint[W, T]) Dec() Uint[W, T] { return u.SubRaw(1) }

func (u Uint[W, T]) Cmp(n Uint[W, T]) int {
	if u.v > n.v {
		return 1
	} else if u.v < n.v {
		return -1
	}
	return 0
}

func (u Uint[W, T]) Equal(n Uint[W, T]) bool            { return u.v == n.v }
func (u Uint[W, T]) GreaterThan(n Uint[W, T]) bool      { return u.v > n.v }
func (u Uint[W, T]) GreaterOrEqualTo(n Uint[W, T]) bool { return u.v >= n.v }
func (u Uint[W, T]) LessThan(n Uint[W, T]) bool         { return u.v < n.v }
func (u Uint[W, T]) LessOrEqualTo(n Uint[W, T]) bool    { return u.v <= n.v }

func (u Uint[W, T]) String() string {
	return strconv.FormatUint(uint64(u.v), 10)
}

// Format passes the verb through to the raw value, so %x, %08b and so on
// behave as they do for the primitive. %s prints the decimal form.
func (u Uint[W, T]) Format(s fmt.State, c rune) {
	if c == 's' {
		c = 'd'
	}
	fmt.Fprintf(s, fmt.FormatString(s, c), u.v)
}

func (u Uint[W, T]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint[W, T]) UnmarshalText(bts []byte) (err error) {
	v, err := parseUint[W, T](string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint[W, T]) MarshalJSON() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalJSON accepts a bare number or a quoted decimal string. null
// leaves u unchanged.
func (u *Uint[W, T]) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("fixnum: u%d invalid JSON %q", u.Bits(), string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
