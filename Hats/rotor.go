package Hats

import (
	"unsafe"
)

// at returns the address of slot i of the sub-block headed by b.
func at[T any](b *T, i uint) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(b), unsafe.Sizeof(*new(T))*uintptr(i)))
}

// rotor is the directory triple shared by both variants. mid[0:mLen] holds the
// owning pointers to the live sub-blocks; low and high mirror its first lLen and
// hLen entries. len(low)=max(1,mCap/2), len(mid)=mCap, len(high)=2*mCap, with mCap
// always a power of 2. The mirrors are strictly non-owning: teardown releases each
// sub-block exactly once, through mid.
//
// push and retire advance the mirrors by at most 2 entries per call. Between
// rotations mid gains mCap/2 blocks while high must cover mCap entries, a debt of
// exactly 2 per push; mid loses mCap/2 blocks while low must cover mCap/2 entries,
// a debt of 1 per retire. So high is always complete when mid fills and low is
// always complete when mid drains to half. Rotations only swap directory pointers.
type rotor[T any] struct {
	low, mid, high   []*T
	lLen, mLen, hLen uint
}

func makeRotor[T any]() rotor[T] {
	return rotor[T]{low: make([]*T, 1), mid: make([]*T, 1), high: make([]*T, 2)}
}

func (u *rotor[T]) mCap() uint {
	return uint(len(u.mid))
}

// push appends sub-block b to mid, rotating up first if mid is full, then advances
// the high mirror. The replacement high is allocated before anything is mutated.
func (u *rotor[T]) push(b *T) {
	if u.mLen == uint(len(u.mid)) {
		nh := make([]*T, 4*len(u.mid))
		u.low, u.lLen = u.mid, u.mLen
		u.mid = u.high
		u.high, u.hLen = nh, 0
	}
	u.mid[u.mLen] = b
	u.mLen++
	for n := 0; n < 2 && u.hLen < u.mLen; n++ {
		u.high[u.hLen] = u.mid[u.hLen]
		u.hLen++
	}
}

// retire drops the last sub-block of mid, rotating down at the half-full mark, then
// advances the low mirror. Vacated mirror entries are nilled along with the mid
// entry, keeping the mirrors exact under pointer equality and the block
// collectable.
func (u *rotor[T]) retire() {
	var nl []*T
	if half := uint(len(u.mid)) / 2; u.mLen-1 == half && half > 0 {
		nl = make([]*T, max(1, len(u.low)/2))
	}
	u.mLen--
	u.mid[u.mLen] = nil
	if u.hLen > u.mLen {
		u.hLen = u.mLen
		u.high[u.hLen] = nil
	}
	if nl != nil {
		u.high, u.hLen = u.mid, u.mLen
		u.mid, u.mLen = u.low, u.lLen
		u.low, u.lLen = nl, 0
	}
	for n := 0; n < 2 && u.lLen < uint(len(u.mid))/2; n++ {
		u.low[u.lLen] = u.mid[u.lLen]
		u.lLen++
	}
}
