/*
Package fixnum provides fixed-width unsigned integers: bounded integers
narrower than their storage (U2 to U7 in a uint8, U24 in a uint32), and
multi-word integers U256, U512 and U1024 built from 64-bit words.

All types are values; all operations return new values.

The two families fail differently. Bounded integers check every result:

	u, err := U3From8(8)   // err is *ValueOverflow{Max: 7, Value: 8}
	u = MustU3(7).SubRaw(1) // 6
	u = u.AddRaw(2)         // panics: integer overflow during add

Multi-word integers wrap like machine words, and only panic on division by
zero:

	v := ZeroU256.Sub(OneU256)
	fmt.Println(v == MaxU256)
	// Output: true

U256, U512 and U1024 can be created from a variety of sources:

	U256FromWords(w [4]uint64) U256
	U256From64(v uint64) U256
	U256FromRaw128(hi, lo uint64) U256
	U256FromBEBytes(b [32]byte) U256
	U256FromLEBytes(b [32]byte) U256
	U256FromBESlice(b []byte) (U256, error)
	U256FromLESlice(b []byte) (U256, error)
	U256FromHex(s string) (U256, error)
	U256FromString(s string) (out U256, accurate bool, err error)
	U256FromBigInt(v *big.Int) (out U256, inRange bool)

Their text form is fixed-length lowercase hex, most significant byte first;
their binary form is fixed-length big-endian bytes. Both sides implement:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

and the multi-word types also implement encoding.BinaryMarshaler and
encoding.BinaryUnmarshaler.
*/
package fixnum
