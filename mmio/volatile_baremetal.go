//go:build baremetal

package mmio

import (
	"runtime/volatile"
	"unsafe"

	"litex-pac-go/reg"
)

// Volatile dereferences addresses directly.
type Volatile struct{}

func (Volatile) Load(addr uintptr, w reg.Width) uint64 {
	p := unsafe.Pointer(addr)
	switch w {
	case reg.W8:
		return uint64(volatile.LoadUint8((*uint8)(p)))
	case reg.W16:
		return uint64(volatile.LoadUint16((*uint16)(p)))
	case reg.W32:
		return uint64(volatile.LoadUint32((*uint32)(p)))
	case reg.W64:
		return volatile.LoadUint64((*uint64)(p))
	}
	panic("mmio: invalid width")
}

func (Volatile) Store(addr uintptr, w reg.Width, v uint64) {
	p := unsafe.Pointer(addr)
	switch w {
	case reg.W8:
		volatile.StoreUint8((*uint8)(p), uint8(v))
	case reg.W16:
		volatile.StoreUint16((*uint16)(p), uint16(v))
	case reg.W32:
		volatile.StoreUint32((*uint32)(p), uint32(v))
	case reg.W64:
		volatile.StoreUint64((*uint64)(p), v)
	default:
		panic("mmio: invalid width")
	}
}

// Default returns the memory real peripherals live in.
func Default() Memory { return Volatile{} }
