package fixnum

type RandSource interface {
	Uint64() uint64
}

// BigUint is the set of operations shared by U256, U512 and U1024.
type BigUint[T any] interface {
	comparable

	Add(n T) T
	Sub(n T) T
	Mul(n T) T
	Quo(by T) T
	Rem(by T) T
	QuoRem(by T) (q, r T)
	Inc() T
	Dec() T

	And(n T) T
	AndNot(n T) T
	Or(n T) T
	Xor(n T) T
	Not() T
	Lsh(n uint) T
	Rsh(n uint) T

	Cmp(n T) int
	BitLen() int
	IsZero() bool
}

var (
	_ = Sum[U256]
	_ = Sum[U512]
	_ = Sum[U1024]
)

// Difference subtracts the smaller of a and b from the larger.
func Difference[T BigUint[T]](a, b T) T {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger[T BigUint[T]](a, b T) T {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func Smaller[T BigUint[T]](a, b T) T {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Pow raises x to the power n by repeated squaring. Intermediate results wrap
// like every other operation, so the result is x^n modulo 2^bits.
func Pow[T BigUint[T]](x T, n uint) T {
	var zero T
	out := zero.Inc()
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(x)
		}
		x = x.Mul(x)
		n >>= 1
	}
	return out
}

// Sum adds vs together with wraparound. The sum of nothing is zero.
func Sum[T BigUint[T]](vs ...T) (out T) {
	for _, v := range vs {
		out = out.Add(v)
	}
	return out
}
