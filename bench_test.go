package fixnum

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchIntResult    int
	BenchStringResult string
	BenchU256Result   U256
	BenchU512Result   U512
	BenchU1024Result  U1024
	BenchU5Result     U5
	BenchUint64Result uint64
	BenchBytesResult  [U256Bytes]byte
	BenchErrorResult  error

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917
)

func BenchmarkUint64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 * BenchUint642
	}
}

func BenchmarkUint64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 + BenchUint642
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	top := maxBig(U256Bits)
	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Mul(top, top)
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	top := maxBig(U256Bits)
	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Add(top, top)
	}
}

func BenchmarkBigIntDiv(b *testing.B) {
	u := maxBig(U256Bits)
	by := new(big.Int).SetUint64(121525124)
	for i := 0; i < b.N; i++ {
		var z big.Int
		z.Div(u, by)
	}
}

func BenchmarkU5Add(b *testing.B) {
	u, n := MustU5(10), MustU5(20)
	for i := 0; i < b.N; i++ {
		BenchU5Result = u.Add(n)
	}
}

func BenchmarkU5Mul(b *testing.B) {
	u, n := MustU5(5), MustU5(6)
	for i := 0; i < b.N; i++ {
		BenchU5Result = u.Mul(n)
	}
}

func BenchmarkU256Add(b *testing.B) {
	u := U256FromWords(testWords256)
	for i := 0; i < b.N; i++ {
		BenchU256Result = u.Add(u)
	}
}

func BenchmarkU256Sub(b *testing.B) {
	u := U256FromWords(testWords256)
	for i := 0; i < b.N; i++ {
		BenchU256Result = ZeroU256.Sub(u)
	}
}

func BenchmarkU256Mul(b *testing.B) {
	u := U256FromWords(testWords256)
	for i := 0; i < b.N; i++ {
		BenchU256Result = u.Mul(u)
	}
}

func BenchmarkU256Mul32(b *testing.B) {
	u := U256FromWords(testWords256)
	for i := 0; i < b.N; i++ {
		BenchU256Result = u.Mul32(0xdeadbeef)
	}
}

func BenchmarkU256Cmp(b *testing.B) {
	b.Run("equal", func(b *testing.B) {
		u := U256FromWords(testWords256)
		n := U256FromWords(testWords256)
		for i := 0; i < b.N; i++ {
			BenchIntResult = u.Cmp(n)
		}
	})
	b.Run("low", func(b *testing.B) {
		u := U256From64(1)
		n := U256From64(2)
		for i := 0; i < b.N; i++ {
			BenchIntResult = u.Cmp(n)
		}
	})
}

func BenchmarkU256Lsh(b *testing.B) {
	for _, tc := range []struct {
		in U256
		sh uint
	}{
		{u256From64(maxUint64), 1},
		{u256From64(maxUint64), 64},
		{u256From64(maxUint64), 200},
		{MaxU256, 1},
		{MaxU256, 63},
		{MaxU256, 255},
		{MaxU256, 256},
	} {
		b.Run(fmt.Sprintf("%s<<%d", tc.in, tc.sh), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU256Result = tc.in.Lsh(tc.sh)
			}
		})
	}
}

var benchHexInput = MaxU256.Hex()

var benchQuoCases = []struct {
	dividend U256
	divisor  U256
}{
	// Divide by 1, which runs every step of the long division:
	{MaxU256, u256From64(1)},

	// Divisor wider than the dividend, which returns immediately:
	{u256From64(2), MaxU256},

	// Divisor the same width as the dividend:
	{U256FromWords(testWords256), U256FromWords(testWords256).Rsh(1)},

	{u256s("0x123456789012345678901234567890"), u256s("0xFF0000000000000000000")},
}

func BenchmarkU256QuoRem(b *testing.B) {
	for idx, bc := range benchQuoCases {
		b.Run(fmt.Sprint(idx), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU256Result, _ = bc.dividend.QuoRem(bc.divisor)
			}
		})
	}
}

func BenchmarkU256String(b *testing.B) {
	u := U256FromWords(testWords256)
	for i := 0; i < b.N; i++ {
		BenchStringResult = u.String()
	}
}

func BenchmarkU256FromHex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result, BenchErrorResult = U256FromHex(benchHexInput)
	}
}

func BenchmarkU256BEBytes(b *testing.B) {
	u := U256FromWords(testWords256)
	for i := 0; i < b.N; i++ {
		BenchBytesResult = u.BEBytes()
	}
}

func BenchmarkU256AsBigInt(b *testing.B) {
	u := U256FromWords(testWords256)
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = u.AsBigInt()
	}
}

func BenchmarkU256FromBigInt(b *testing.B) {
	v := U256FromWords(testWords256).AsBigInt()
	for i := 0; i < b.N; i++ {
		BenchU256Result, BenchBoolResult = U256FromBigInt(v)
	}
}

func BenchmarkU512Mul(b *testing.B) {
	u := MaxU512.Rsh(3)
	for i := 0; i < b.N; i++ {
		BenchU512Result = u.Mul(u)
	}
}

func BenchmarkU512QuoRem(b *testing.B) {
	u, by := MaxU512, MaxU512.Rsh(256)
	for i := 0; i < b.N; i++ {
		BenchU512Result, _ = u.QuoRem(by)
	}
}

func BenchmarkU1024Mul(b *testing.B) {
	u := MaxU1024.Rsh(3)
	for i := 0; i < b.N; i++ {
		BenchU1024Result = u.Mul(u)
	}
}

func BenchmarkU1024QuoRem(b *testing.B) {
	u, by := MaxU1024, MaxU1024.Rsh(512)
	for i := 0; i < b.N; i++ {
		BenchU1024Result, _ = u.QuoRem(by)
	}
}

func BenchmarkPowU256(b *testing.B) {
	x := u256From64(3)
	for i := 0; i < b.N; i++ {
		BenchU256Result = Pow(x, 161)
	}
}
