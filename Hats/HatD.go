package Hats

import (
	Go_Hats "github.com/g-m-twostay/go-hats"
)

// HatD is the size-doubling hashed array tree: sub-block i holds 2^i slots, so a
// container of n elements owns O(log n) sub-blocks and, apart from the empty last
// block that Pop may keep for one extra call, wastes less than half of its storage,
// like a doubling vector but with no reallocation spike. Element index k
// maps to block floor(log2(k+1)), slot k+1-2^block.
type HatD[T any] struct {
	rotor[T]
	len uint
}

// MakeHatD returns an empty HatD. All three directories are allocated up front, so
// the first Append only pays for its sub-block.
func MakeHatD[T any]() *HatD[T] {
	return &HatD[T]{rotor: makeRotor[T]()}
}

// FromSliceD builds a HatD holding a copy of sli.
func FromSliceD[T any](sli []T) *HatD[T] {
	u := MakeHatD[T]()
	for i := range sli {
		u.Append(sli[i])
	}
	return u
}

var _ Hat[int] = (*HatD[int])(nil)

func locateD(k uint) (bi, si uint) {
	w := k + 1
	bi = Go_Hats.Log2(w)
	return bi, w - 1<<bi
}

func (u *HatD[T]) Len() uint {
	return u.len
}

// High is the index of the last element. Only meaningful when u isn't empty.
func (u *HatD[T]) High() uint {
	return u.len - 1
}

func (u *HatD[T]) Low() uint {
	return 0
}

func (u *HatD[T]) Empty() bool {
	return u.len == 0
}

func (u *HatD[T]) Get(i uint) (*T, error) {
	if checked && i >= u.len {
		return nil, &OutOfBoundsError{i, u.len}
	}
	bi, si := locateD(i)
	return at(u.mid[bi], si), nil
}

func (u *HatD[T]) Set(i uint, v T) error {
	if checked && i >= u.len {
		return &OutOfBoundsError{i, u.len}
	}
	bi, si := locateD(i)
	*at(u.mid[bi], si) = v
	return nil
}

// Peek returns the address of the element at High.
func (u *HatD[T]) Peek() (*T, error) {
	if checked && u.len == 0 {
		return nil, &OutOfBoundsError{0, 0}
	}
	bi, si := locateD(u.len - 1)
	return at(u.mid[bi], si), nil
}

// Append stores v at index Len. If the slot's sub-block doesn't exist yet it is
// allocated, sized 2^bi, before any counter moves, so an aborted allocation leaves
// u untouched.
func (u *HatD[T]) Append(v T) {
	bi, si := locateD(u.len)
	if bi == u.mLen {
		u.push(Go_Hats.Uninit[T](1 << bi))
	}
	*at(u.mid[bi], si) = v
	u.len++
}

// Pop removes and returns the element at High. The vacated slot is zeroed so its
// references are released immediately. A sub-block is retired one Pop after it
// empties; the lag keeps an Append/Pop oscillation at a block boundary from
// allocating.
func (u *HatD[T]) Pop() (T, error) {
	if checked && u.len == 0 {
		return *new(T), &OutOfBoundsError{0, 0}
	}
	bi, si := locateD(u.len - 1)
	p := at(u.mid[bi], si)
	v := *p
	if bi+1 < u.mLen {
		u.retire()
	}
	*p = *new(T)
	u.len--
	return v, nil
}

// Range calls f on each element in index order until f returns false. Each
// sub-block's directory entry is read once, not once per element.
func (u *HatD[T]) Range(f func(uint, *T) bool) {
	for i, bi := uint(0), uint(0); i < u.len; bi++ {
		b := u.mid[bi]
		for si, n := uint(0), uint(1)<<bi; si < n && i < u.len; si++ {
			if !f(i, at(b, si)) {
				return
			}
			i++
		}
	}
}

// Transform replaces each element with f of it, in index order, over the same
// block-cached walk as Range.
func (u *HatD[T]) Transform(f func(T) T) {
	for i, bi := uint(0), uint(0); i < u.len; bi++ {
		b := u.mid[bi]
		for si, n := uint(0), uint(1)<<bi; si < n && i < u.len; si++ {
			p := at(b, si)
			*p = f(*p)
			i++
		}
	}
}

// Clear resets u to a fresh empty container. Old storage is dropped, not reused.
func (u *HatD[T]) Clear() {
	u.rotor, u.len = makeRotor[T](), 0
}

// Free tears u down. Every owned sub-block is released exactly once, through mid;
// low and high only hold mirrors. Idempotent: a freed container (mid == nil) is
// only good for Free, Clear and CopyFrom.
func (u *HatD[T]) Free() {
	if u.mid == nil {
		return
	}
	u.rotor, u.len = rotor[T]{}, 0
}

// CopyFrom makes u a deep copy of o, tearing u down and rebuilding it by appending
// each element of o. The two containers share no heap storage afterwards. O(o.Len).
func (u *HatD[T]) CopyFrom(o *HatD[T]) {
	u.Free()
	u.rotor = makeRotor[T]()
	o.Range(func(_ uint, v *T) bool {
		u.Append(*v)
		return true
	})
}
