// Package mmio performs the raw, unchecked register loads and stores that
// sit underneath a peripheral handle. Nothing here validates addresses or
// access modes; callers are expected to have done so.
package mmio

import "litex-pac-go/reg"

// Memory performs exactly one access of exactly w bits per call.
type Memory interface {
	Load(addr uintptr, w reg.Width) uint64
	Store(addr uintptr, w reg.Width, v uint64)
}
