// Package periph hands out single-owner handles to memory-mapped peripherals
// and routes every register access through descriptor checks.
//
// Each peripheral is declared once as a *Type. Take succeeds exactly once per
// Type for the life of the process; every later call reports AlreadyTaken.
// There is no way to give a handle back.
package periph

import (
	"sync"
	"sync/atomic"

	"litex-pac-go/errcode"
	"litex-pac-go/mmio"
	"litex-pac-go/reg"
)

// Type is one peripheral instance: its descriptor, the memory it lives in
// and the flag recording whether its handle has been handed out.
type Type struct {
	desc  *reg.Peripheral
	mem   mmio.Memory
	taken atomic.Bool
}

// Define declares a peripheral. It panics if desc overlaps an address range
// already claimed by another Type on the same memory, since two Types over
// the same registers would each hand out a handle.
func Define(desc *reg.Peripheral, mem mmio.Memory) *Type {
	if desc == nil || mem == nil {
		panic("periph: Define needs a descriptor and a memory")
	}
	claim(desc, mem)
	return &Type{desc: desc, mem: mem}
}

// Take returns the peripheral's handle the first time it is called and an
// AlreadyTaken error every time after. The check and the set are a single
// compare-and-swap, so concurrent callers cannot both win.
func (t *Type) Take() (*Handle, error) {
	if !t.taken.CompareAndSwap(false, true) {
		return nil, &errcode.E{C: errcode.AlreadyTaken, Op: "take", Msg: t.desc.Name()}
	}
	return &Handle{t: t}, nil
}

// Taken reports whether the handle has been handed out.
func (t *Type) Taken() bool { return t.taken.Load() }

func (t *Type) Name() string                { return t.desc.Name() }
func (t *Type) Descriptor() *reg.Peripheral { return t.desc }

// ---- address-range claims ----

type span struct {
	mem    mmio.Memory
	lo, hi uintptr
	name   string
}

var claims struct {
	mu    sync.Mutex
	spans []span
}

func claim(desc *reg.Peripheral, mem mmio.Memory) {
	lo, hi := desc.Span()
	if lo == hi {
		return
	}
	claims.mu.Lock()
	defer claims.mu.Unlock()
	for _, s := range claims.spans {
		if s.mem == mem && lo < s.hi && s.lo < hi {
			panic("periph: " + desc.Name() + " overlaps " + s.name)
		}
	}
	claims.spans = append(claims.spans, span{mem: mem, lo: lo, hi: hi, name: desc.Name()})
}
