package fixnum

const (
	maxUint64 = 1<<64 - 1
)

const (
	U256Words = 4
	U256Bytes = U256Words * 8
	U256Bits  = U256Words * 64

	U512Words = 8
	U512Bytes = U512Words * 8
	U512Bits  = U512Words * 64

	U1024Words = 16
	U1024Bytes = U1024Words * 8
	U1024Bits  = U1024Words * 64
)

var (
	ZeroU256 U256
	OneU256  = U256From64(1)
	MinU256  = ZeroU256
	MaxU256  = ZeroU256.Not()

	ZeroU512 U512
	OneU512  = U512From64(1)
	MinU512  = ZeroU512
	MaxU512  = ZeroU512.Not()

	ZeroU1024 U1024
	OneU1024  = U1024From64(1)
	MinU1024  = ZeroU1024
	MaxU1024  = ZeroU1024.Not()
)

var (
	MinU2, MaxU2, OneU2 = U2{}, U2{v: 1<<2 - 1}, U2{v: 1}
	MinU3, MaxU3, OneU3 = U3{}, U3{v: 1<<3 - 1}, U3{v: 1}
	MinU4, MaxU4, OneU4 = U4{}, U4{v: 1<<4 - 1}, U4{v: 1}
	MinU5, MaxU5, OneU5 = U5{}, U5{v: 1<<5 - 1}, U5{v: 1}
	MinU6, MaxU6, OneU6 = U6{}, U6{v: 1<<6 - 1}, U6{v: 1}
	MinU7, MaxU7, OneU7 = U7{}, U7{v: 1<<7 - 1}, U7{v: 1}

	MinU24, MaxU24, OneU24 = U24{}, U24{v: 1<<24 - 1}, U24{v: 1}
)
