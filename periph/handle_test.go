package periph

import (
	"errors"
	"testing"

	"litex-pac-go/errcode"
	"litex-pac-go/mmio"
	"litex-pac-go/reg"
)

// spiLike mirrors the shape of a LiteX SPIMaster block.
func spiLike(t *testing.T) (*Handle, *mmio.Sim) {
	t.Helper()
	sim := mmio.NewSim()
	desc := reg.MustDescribe("SPI", 0xF000_4800, reg.Layout{},
		reg.Register{Name: "CONTROL", Offset: 0x00, Width: reg.W32, Access: reg.ReadWrite, Fields: []reg.Field{
			{Name: "START", Offset: 0, Width: 1},
			{Name: "LENGTH", Offset: 8, Width: 8},
		}},
		reg.Register{Name: "STATUS", Offset: 0x04, Width: reg.W32, Access: reg.ReadOnly, Fields: []reg.Field{
			{Name: "DONE", Offset: 0, Width: 1},
		}},
		reg.Register{Name: "CS", Offset: 0x10, Width: reg.W32, Access: reg.ReadWrite, Reset: 0x1, Fields: []reg.Field{
			{Name: "SEL", Offset: 0, Width: 16},
			{Name: "MODE", Offset: 16, Width: 1},
		}},
		reg.Register{Name: "KICK", Offset: 0x14, Width: reg.W32, Access: reg.WriteOnly, Fields: []reg.Field{
			{Name: "GO", Offset: 0, Width: 1},
		}},
	)
	h, err := Define(desc, sim).Take()
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	return h, sim
}

func TestWriteFieldsZeroesOthers(t *testing.T) {
	h, sim := spiLike(t)
	sim.Poke(0xF000_4800, reg.W32, 0xFFFF_FFFF)

	if err := h.WriteFields("CONTROL", F("LENGTH", 8), F("START", 1)); err != nil {
		t.Fatalf("WriteFields: %v", err)
	}
	if got := sim.Peek(0xF000_4800, reg.W32); got != 0x0801 {
		t.Fatalf("CONTROL = %#x, want 0x801", got)
	}
	if l, s := sim.Counts(); l != 0 || s != 1 {
		t.Fatalf("WriteFields should be one store, got loads=%d stores=%d", l, s)
	}
}

func TestModifyPreservesOtherFields(t *testing.T) {
	h, sim := spiLike(t)
	sim.Poke(0xF000_4810, reg.W32, 0x0001_0005)

	if err := h.Modify("CS", F("SEL", 2)); err != nil {
		t.Fatalf("Modify: %v", err)
	}
	if got := sim.Peek(0xF000_4810, reg.W32); got != 0x0001_0002 {
		t.Fatalf("CS = %#x, want 0x10002", got)
	}
	if err := h.Modify("STATUS", F("DONE", 1)); !errors.Is(err, errcode.AccessDenied) {
		t.Fatalf("modify read-only: want AccessDenied, got %v", err)
	}
	if err := h.Modify("KICK", F("GO", 1)); !errors.Is(err, errcode.AccessDenied) {
		t.Fatalf("modify write-only: want AccessDenied, got %v", err)
	}
}

func TestFieldErrorsTouchNothing(t *testing.T) {
	h, sim := spiLike(t)

	if err := h.WriteFields("CONTROL", F("LENGTH", 256)); !errors.Is(err, errcode.ValueOutOfRange) {
		t.Fatalf("want ValueOutOfRange, got %v", err)
	}
	if err := h.Modify("CS", F("MODE", 1), F("BOGUS", 1)); !errors.Is(err, errcode.NotFound) {
		t.Fatalf("want NotFound, got %v", err)
	}
	if _, err := h.ReadField("CONTROL", "BOGUS"); !errors.Is(err, errcode.NotFound) {
		t.Fatalf("want NotFound, got %v", err)
	}
	if _, err := h.ReadField("KICK", "GO"); !errors.Is(err, errcode.AccessDenied) {
		t.Fatalf("read of write-only field: want AccessDenied, got %v", err)
	}
	if l, s := sim.Counts(); l != 0 || s != 0 {
		t.Fatalf("rejected field ops touched memory: loads=%d stores=%d", l, s)
	}
}

func TestReadField(t *testing.T) {
	h, sim := spiLike(t)
	sim.Poke(0xF000_4804, reg.W32, 0x1)

	done, err := h.ReadField("STATUS", "DONE")
	if err != nil || done != 1 {
		t.Fatalf("DONE = %d, %v", done, err)
	}
	sim.Poke(0xF000_4800, reg.W32, 0x2A00)
	if n, _ := h.ReadField("CONTROL", "LENGTH"); n != 0x2A {
		t.Fatalf("LENGTH = %#x", n)
	}
}

func TestReset(t *testing.T) {
	h, sim := spiLike(t)
	sim.Poke(0xF000_4810, reg.W32, 0xFFFF)

	if err := h.Reset("CS"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := sim.Peek(0xF000_4810, reg.W32); got != 0x1 {
		t.Fatalf("CS after reset = %#x", got)
	}
}

func TestPreResolvedRegister(t *testing.T) {
	h, sim := spiLike(t)
	cs, err := h.Register("CS")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if cs.Address() != 0xF000_4810 || cs.Descriptor().Name != "CS" {
		t.Fatalf("unexpected accessor %#x %q", cs.Address(), cs.Descriptor().Name)
	}
	if err := cs.Write(0x1_0000); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if v, _ := cs.Read(); v != 0x1_0000 || sim.Peek(0xF000_4810, reg.W32) != 0x1_0000 {
		t.Fatalf("round trip = %#x", v)
	}

	st, _ := h.Register("STATUS")
	if err := st.Write(1); !errors.Is(err, errcode.AccessDenied) {
		t.Fatalf("want AccessDenied, got %v", err)
	}
}

func TestTypedBind(t *testing.T) {
	h, sim := spiLike(t)

	if _, err := Bind[uint8](h, "CS"); !errors.Is(err, errcode.InvalidWidth) {
		t.Fatalf("want InvalidWidth, got %v", err)
	}
	if _, err := Bind[uint32](h, "NOPE"); !errors.Is(err, errcode.NotFound) {
		t.Fatalf("want NotFound, got %v", err)
	}

	cs, err := Bind[uint32](h, "CS")
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := cs.Write(0xDEADBEEF); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, _ := cs.Read(); got != 0xDEADBEEF {
		t.Fatalf("Read = %#x", got)
	}
	if sim.Peek(0xF000_4810, reg.W32) != 0xDEADBEEF {
		t.Fatal("typed write did not reach memory")
	}

	status, _ := Bind[uint32](h, "STATUS")
	if err := status.Write(1); !errors.Is(err, errcode.AccessDenied) {
		t.Fatalf("want AccessDenied, got %v", err)
	}
	kick, _ := Bind[uint32](h, "KICK")
	if _, err := kick.Read(); !errors.Is(err, errcode.AccessDenied) {
		t.Fatalf("want AccessDenied, got %v", err)
	}
}
