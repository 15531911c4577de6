package Go_Hats

import (
	"reflect"
	_ "runtime"
	"unsafe"
)

//go:linkname malloc runtime.mallocgc
func malloc(size uintptr, typ unsafe.Pointer, zero bool) unsafe.Pointer

// leading fields of the runtime type descriptor, enough to read the pointer footprint.
type rtype struct {
	size, ptrBytes uintptr
}

// typePtr extracts the runtime type descriptor of T from its reflect.Type header.
func typePtr[T any]() unsafe.Pointer {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return (*struct {
		_     uintptr
		Value unsafe.Pointer
	})(unsafe.Pointer(&t)).Value
}

// Uninit allocates storage for n contiguous values of T, returning the address of slot 0.
// Pointer-free types get uninitialised memory straight from the runtime allocator;
// pointer-carrying types are zeroed so the collector never scans junk. There is no
// matching free: dropping every reference to the block releases it.
func Uninit[T any](n uint) *T {
	if t := typePtr[T](); (*rtype)(t).ptrBytes == 0 {
		return (*T)(malloc(unsafe.Sizeof(*new(T))*uintptr(n), t, false))
	}
	return unsafe.SliceData(make([]T, n))
}
