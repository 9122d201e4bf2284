package id

import (
	"strconv"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"
)

const cacheLinePadSize = unsafe.Sizeof(cpu.CacheLinePad{})

// monotonicNonZeroID only increases, if it overflows, it will be reset to 1.
// A fresh generator always starts from 1, so traces that allocate their
// record ids from their own generator are reproducible.
type monotonicNonZeroID struct {
	_   [cacheLinePadSize - unsafe.Sizeof(*new(uint64))]byte // avoid false sharing
	val uint64
	_   [cacheLinePadSize - unsafe.Sizeof(*new(uint64))]byte
}

func (id *monotonicNonZeroID) next() uint64 {
	var v uint64
	if v = atomic.AddUint64(&id.val, 1); v == 0 {
		v = atomic.AddUint64(&id.val, 1)
	}
	return v
}

func MonotonicNonZeroID() Generator {
	return MonotonicNonZeroIDFrom(0)
}

// MonotonicNonZeroIDFrom continues an id sequence, the first number
// returned is offset+1.
func MonotonicNonZeroIDFrom(offset uint64) Generator {
	src := &monotonicNonZeroID{val: offset}
	id := new(defaultID)
	id.number = func() uint64 {
		return src.next()
	}
	id.str = func() string {
		return strconv.FormatUint(src.next(), 10)
	}
	return id
}
