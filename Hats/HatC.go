package Hats

import (
	Go_Hats "github.com/g-m-twostay/go-hats"
)

// HatC is the constant-size hashed array tree: every sub-block holds 2^s slots for
// a per-container exponent s, so index math is a shift and a mask and allocation
// happens in uniform chunks. Space overhead is one directory entry per 2^s elements
// plus at most one partially filled block.
//
// s is a runtime field; Go has no numeric type parameters to fix it at compile
// time. Typical values are 2..8.
type HatC[T any] struct {
	rotor[T]
	len uint
	s   byte
}

// MakeHatC returns an empty HatC with sub-blocks of 2^s slots.
func MakeHatC[T any](s byte) *HatC[T] {
	return &HatC[T]{rotor: makeRotor[T](), s: s}
}

// FromSliceC builds a HatC with sub-blocks of 2^s slots holding a copy of sli.
func FromSliceC[T any](s byte, sli []T) *HatC[T] {
	u := MakeHatC[T](s)
	for i := range sli {
		u.Append(sli[i])
	}
	return u
}

var _ Hat[int] = (*HatC[int])(nil)

func (u *HatC[T]) locate(k uint) (bi, si uint) {
	return k >> u.s, k & (1<<u.s - 1)
}

func (u *HatC[T]) Len() uint {
	return u.len
}

// High is the index of the last element. Only meaningful when u isn't empty.
func (u *HatC[T]) High() uint {
	return u.len - 1
}

func (u *HatC[T]) Low() uint {
	return 0
}

func (u *HatC[T]) Empty() bool {
	return u.len == 0
}

func (u *HatC[T]) Get(i uint) (*T, error) {
	if checked && i >= u.len {
		return nil, &OutOfBoundsError{i, u.len}
	}
	return at(u.mid[i>>u.s], i&(1<<u.s-1)), nil
}

func (u *HatC[T]) Set(i uint, v T) error {
	if checked && i >= u.len {
		return &OutOfBoundsError{i, u.len}
	}
	*at(u.mid[i>>u.s], i&(1<<u.s-1)) = v
	return nil
}

// Peek returns the address of the element at High.
func (u *HatC[T]) Peek() (*T, error) {
	if checked && u.len == 0 {
		return nil, &OutOfBoundsError{0, 0}
	}
	bi, si := u.locate(u.len - 1)
	return at(u.mid[bi], si), nil
}

// Append stores v at index Len, allocating the 2^s-slot sub-block first when the
// slot falls in a block that doesn't exist yet.
func (u *HatC[T]) Append(v T) {
	bi, si := u.locate(u.len)
	if bi == u.mLen {
		u.push(Go_Hats.Uninit[T](1 << u.s))
	}
	*at(u.mid[bi], si) = v
	u.len++
}

// Pop removes and returns the element at High, zeroing the vacated slot. Like
// HatD.Pop, sub-block retirement lags one Pop behind the block emptying.
func (u *HatC[T]) Pop() (T, error) {
	if checked && u.len == 0 {
		return *new(T), &OutOfBoundsError{0, 0}
	}
	bi, si := u.locate(u.len - 1)
	p := at(u.mid[bi], si)
	v := *p
	if bi+1 < u.mLen {
		u.retire()
	}
	*p = *new(T)
	u.len--
	return v, nil
}

// Range calls f on each element in index order until f returns false, reading each
// sub-block's directory entry once.
func (u *HatC[T]) Range(f func(uint, *T) bool) {
	n := uint(1) << u.s
	for i, bi := uint(0), uint(0); i < u.len; bi++ {
		b := u.mid[bi]
		for si := uint(0); si < n && i < u.len; si++ {
			if !f(i, at(b, si)) {
				return
			}
			i++
		}
	}
}

// Transform replaces each element with f of it, in index order.
func (u *HatC[T]) Transform(f func(T) T) {
	n := uint(1) << u.s
	for i, bi := uint(0), uint(0); i < u.len; bi++ {
		b := u.mid[bi]
		for si := uint(0); si < n && i < u.len; si++ {
			p := at(b, si)
			*p = f(*p)
			i++
		}
	}
}

// Clear resets u to a fresh empty container with the same block size.
func (u *HatC[T]) Clear() {
	u.rotor, u.len = makeRotor[T](), 0
}

// Free tears u down; see HatD.Free. Idempotent.
func (u *HatC[T]) Free() {
	if u.mid == nil {
		return
	}
	u.rotor, u.len = rotor[T]{}, 0
}

// CopyFrom makes u a deep copy of o, adopting o's block size. The two containers
// share no heap storage afterwards. O(o.Len).
func (u *HatC[T]) CopyFrom(o *HatC[T]) {
	u.Free()
	u.rotor, u.s = makeRotor[T](), o.s
	o.Range(func(_ uint, v *T) bool {
		u.Append(*v)
		return true
	})
}
