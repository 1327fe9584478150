package mmio

import (
	"sync"

	"litex-pac-go/reg"
)

// Device models a register with side effects: reads that consume FIFOs,
// writes that kick off transfers, status bits that change on their own.
type Device interface {
	Load(w reg.Width) uint64
	Store(w reg.Width, v uint64)
}

// Sim is a simulated, little-endian address space. Plain addresses behave as
// RAM; addresses mapped to a Device forward to it.
type Sim struct {
	mu      sync.Mutex
	mem     map[uintptr]byte
	devs    map[uintptr]Device
	loads   int
	stores  int
	lastOp  Access
	history []Access
	record  bool
}

// Access is one recorded memory operation.
type Access struct {
	Write bool
	Addr  uintptr
	Width reg.Width
	Value uint64
}

func NewSim() *Sim {
	return &Sim{
		mem:  make(map[uintptr]byte),
		devs: make(map[uintptr]Device),
	}
}

// Map attaches d at addr. Accesses must start exactly at addr.
func (s *Sim) Map(addr uintptr, d Device) {
	s.mu.Lock()
	s.devs[addr] = d
	s.mu.Unlock()
}

// Record turns access history on or off; turning it on clears the history.
func (s *Sim) Record(on bool) {
	s.mu.Lock()
	s.record = on
	s.history = nil
	s.mu.Unlock()
}

// History returns a copy of the recorded accesses.
func (s *Sim) History() []Access {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Access(nil), s.history...)
}

// Load reads RAM or asks the mapped device. A device is called without the
// lock held, so it may Peek and Poke; the access is noted once with the value
// it returned.
func (s *Sim) Load(addr uintptr, w reg.Width) uint64 {
	s.mu.Lock()
	d := s.devs[addr]
	if d == nil {
		v := s.peek(addr, w)
		s.loads++
		s.note(Access{Addr: addr, Width: w, Value: v})
		s.mu.Unlock()
		return v
	}
	s.mu.Unlock()

	v := d.Load(w) & w.Mask()
	s.mu.Lock()
	s.loads++
	s.note(Access{Addr: addr, Width: w, Value: v})
	s.mu.Unlock()
	return v
}

func (s *Sim) Store(addr uintptr, w reg.Width, v uint64) {
	v &= w.Mask()
	s.mu.Lock()
	s.stores++
	d := s.devs[addr]
	if d == nil {
		s.poke(addr, w, v)
	}
	s.note(Access{Write: true, Addr: addr, Width: w, Value: v})
	s.mu.Unlock()

	if d != nil {
		d.Store(w, v)
	}
}

// Peek reads memory without counting an access or touching devices.
func (s *Sim) Peek(addr uintptr, w reg.Width) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peek(addr, w)
}

// Poke writes memory without counting an access or touching devices.
func (s *Sim) Poke(addr uintptr, w reg.Width, v uint64) {
	s.mu.Lock()
	s.poke(addr, w, v&w.Mask())
	s.mu.Unlock()
}

// Counts returns the number of loads and stores performed through Memory.
func (s *Sim) Counts() (loads, stores int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads, s.stores
}

// Last returns the most recent access.
func (s *Sim) Last() Access {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOp
}

// caller holds lock
func (s *Sim) note(a Access) {
	s.lastOp = a
	if s.record {
		s.history = append(s.history, a)
	}
}

// caller holds lock
func (s *Sim) peek(addr uintptr, w reg.Width) uint64 {
	var v uint64
	for i := uintptr(0); i < w.Bytes(); i++ {
		v |= uint64(s.mem[addr+i]) << (8 * i)
	}
	return v
}

// caller holds lock
func (s *Sim) poke(addr uintptr, w reg.Width, v uint64) {
	for i := uintptr(0); i < w.Bytes(); i++ {
		s.mem[addr+i] = byte(v >> (8 * i))
	}
}

var _ Memory = (*Sim)(nil)

// Funcs adapts a pair of functions to Device. A nil function reads as zero
// or ignores the store.
type Funcs struct {
	OnLoad  func(w reg.Width) uint64
	OnStore func(w reg.Width, v uint64)
}

func (f Funcs) Load(w reg.Width) uint64 {
	if f.OnLoad == nil {
		return 0
	}
	return f.OnLoad(w)
}

func (f Funcs) Store(w reg.Width, v uint64) {
	if f.OnStore != nil {
		f.OnStore(w, v)
	}
}
