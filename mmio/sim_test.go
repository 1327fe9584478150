package mmio

import (
	"sync"
	"testing"

	"litex-pac-go/reg"
)

func TestSimLittleEndianRAM(t *testing.T) {
	s := NewSim()
	s.Store(0x1000, reg.W32, 0x11223344)

	if got := s.Peek(0x1000, reg.W8); got != 0x44 {
		t.Fatalf("low byte = %#x, want 0x44", got)
	}
	if got := s.Peek(0x1002, reg.W16); got != 0x1122 {
		t.Fatalf("high half = %#x, want 0x1122", got)
	}
	if got := s.Load(0x1000, reg.W32); got != 0x11223344 {
		t.Fatalf("Load = %#x", got)
	}
	if l, st := s.Counts(); l != 1 || st != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", l, st)
	}
}

func TestSimStoreTruncatesToWidth(t *testing.T) {
	s := NewSim()
	s.Poke(0x10, reg.W32, 0xFFFFFFFF)
	s.Store(0x10, reg.W8, 0x1AB)

	if got := s.Peek(0x10, reg.W32); got != 0xFFFFFFAB {
		t.Fatalf("neighbouring bytes disturbed: %#x", got)
	}
	if got := s.Last(); !got.Write || got.Value != 0xAB || got.Width != reg.W8 {
		t.Fatalf("Last = %+v", got)
	}
}

func TestSimDevices(t *testing.T) {
	s := NewSim()
	var fifo []uint64
	s.Map(0x20, Funcs{
		OnLoad: func(reg.Width) uint64 {
			if len(fifo) == 0 {
				return 0
			}
			v := fifo[0]
			fifo = fifo[1:]
			return v
		},
		OnStore: func(_ reg.Width, v uint64) { fifo = append(fifo, v) },
	})

	s.Record(true)
	s.Store(0x20, reg.W32, 7)
	s.Store(0x20, reg.W32, 9)
	if s.Peek(0x20, reg.W32) != 0 {
		t.Fatal("device store leaked into RAM")
	}
	if a, b := s.Load(0x20, reg.W32), s.Load(0x20, reg.W32); a != 7 || b != 9 {
		t.Fatalf("fifo order %d,%d", a, b)
	}

	h := s.History()
	if len(h) != 4 || !h[0].Write || h[3].Write || h[3].Value != 9 {
		t.Fatalf("history = %+v", h)
	}
}

func TestSimDeviceMayStartRecording(t *testing.T) {
	s := NewSim()
	s.Map(0x30, Funcs{OnLoad: func(reg.Width) uint64 {
		s.Record(true)
		return 5
	}})
	if got := s.Load(0x30, reg.W32); got != 5 {
		t.Fatalf("Load = %d", got)
	}
	if h := s.History(); len(h) != 1 || h[0].Value != 5 || h[0].Addr != 0x30 {
		t.Fatalf("history = %+v", h)
	}
}

func TestSimConcurrentDeviceLoads(t *testing.T) {
	s := NewSim()
	for a := uintptr(0x40); a < 0x50; a += 4 {
		v := uint64(a)
		s.Map(a, Funcs{OnLoad: func(reg.Width) uint64 { return v }})
	}
	s.Record(true)

	var wg sync.WaitGroup
	for a := uintptr(0x40); a < 0x50; a += 4 {
		wg.Add(1)
		go func(a uintptr) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				s.Load(a, reg.W32)
			}
		}(a)
	}
	wg.Wait()

	h := s.History()
	if len(h) != 4*200 {
		t.Fatalf("history has %d entries", len(h))
	}
	for _, a := range h {
		if a.Value != uint64(a.Addr) {
			t.Fatalf("access %+v carries another device's value", a)
		}
	}
	if l, _ := s.Counts(); l != 800 {
		t.Fatalf("loads = %d", l)
	}
}

func TestFuncsNil(t *testing.T) {
	var f Funcs
	f.Store(reg.W8, 1)
	if f.Load(reg.W8) != 0 {
		t.Fatal("nil OnLoad should read zero")
	}
}
