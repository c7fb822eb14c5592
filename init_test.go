package fixnum

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzOpsActive   = allFuzzOps
	fuzzTypesActive = allFuzzTypes
	fuzzSeed        int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList
	var types StringList

	flag.IntVar(&fuzzIterations, "fixnum.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "fixnum.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "fixnum.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&types, "fixnum.fuzztype", "Fuzz type (u256, u512, u1024) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(types) > 0 {
		fuzzTypesActive = nil
		for _, t := range types {
			fuzzTypesActive = append(fuzzTypesActive, fuzzType(t))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("active types:", fuzzTypesActive)
	log.Println("iterations:", fuzzIterations)

	code := m.Run()
	os.Exit(code)
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

var (
	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)
)

// wrapBig returns 1 << bits, used to simulate over/underflow.
func wrapBig(bits int) *big.Int {
	return new(big.Int).Lsh(big1, uint(bits))
}

// maxBig returns (1 << bits) - 1.
func maxBig(bits int) *big.Int {
	return new(big.Int).Sub(wrapBig(bits), big1)
}

func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("fixnum: string %q invalid", s))
	}
	return b
}

func u256s(s string) U256 {
	out, acc := U256FromBigInt(bigs(s))
	if !acc {
		panic(fmt.Errorf("fixnum: inaccurate u256 %s", s))
	}
	return out
}

func u512s(s string) U512 {
	out, acc := U512FromBigInt(bigs(s))
	if !acc {
		panic(fmt.Errorf("fixnum: inaccurate u512 %s", s))
	}
	return out
}

func u1024s(s string) U1024 {
	out, acc := U1024FromBigInt(bigs(s))
	if !acc {
		panic(fmt.Errorf("fixnum: inaccurate u1024 %s", s))
	}
	return out
}

// expectPanic runs fn and returns the recovered value, or nil if fn did not
// panic.
func expectPanic(fn func()) (rec interface{}) {
	defer func() {
		rec = recover()
	}()
	fn()
	return nil
}
