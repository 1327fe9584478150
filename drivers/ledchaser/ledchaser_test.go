package ledchaser

import (
	"errors"
	"testing"
	"time"

	"litex-pac-go/errcode"
	"litex-pac-go/mmio"
	"litex-pac-go/pac/feather"
	"litex-pac-go/periph"
	"litex-pac-go/reg"
)

const (
	outAddr    = 0xF000_1800
	enableAddr = 0xF000_1804
	widthAddr  = 0xF000_1808
	periodAddr = 0xF000_180C
)

func newLeds(t *testing.T) (*Device, *mmio.Sim) {
	t.Helper()
	sim := mmio.NewSim()
	h, err := periph.Define(feather.LEDSDesc, sim).Take()
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	d, err := New(h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d, sim
}

func TestSetGetToggle(t *testing.T) {
	d, sim := newLeds(t)
	if d.Count() != 3 || !d.HasPWM() {
		t.Fatalf("count=%d pwm=%v", d.Count(), d.HasPWM())
	}
	if err := d.Set(5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := sim.Peek(outAddr, reg.W32); got != 5 {
		t.Fatalf("OUT = %#x", got)
	}
	if err := d.Toggle(0b011); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got, _ := d.Get(); got != 0b110 {
		t.Fatalf("after toggle = %#b", got)
	}
	if err := d.Set(8); !errors.Is(err, errcode.ValueOutOfRange) {
		t.Fatalf("4th LED: want ValueOutOfRange, got %v", err)
	}
}

func TestChase(t *testing.T) {
	d, sim := newLeds(t)
	sim.Record(true)

	steps := 0
	err := d.Chase(func(time.Duration) bool {
		steps++
		return steps < 5
	}, time.Millisecond)
	if err != nil {
		t.Fatalf("Chase: %v", err)
	}
	var seen []uint64
	for _, a := range sim.History() {
		if a.Write && a.Addr == outAddr {
			seen = append(seen, a.Value)
		}
	}
	want := []uint64{1, 2, 4, 1, 2, 0}
	if len(seen) != len(want) {
		t.Fatalf("writes = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("writes = %v, want %v", seen, want)
		}
	}
}

func TestBrightness(t *testing.T) {
	d, sim := newLeds(t)
	if err := d.EnablePWM(true); err != nil {
		t.Fatalf("EnablePWM: %v", err)
	}
	if sim.Peek(enableAddr, reg.W32) != 1 {
		t.Fatal("PWM not enabled")
	}
	if err := d.SetBrightness(300, 1000); err != nil {
		t.Fatalf("SetBrightness: %v", err)
	}
	if sim.Peek(widthAddr, reg.W32) != 300 || sim.Peek(periodAddr, reg.W32) != 1000 {
		t.Fatal("PWM registers not written")
	}
	if w, p, err := d.Brightness(); err != nil || w != 300 || p != 1000 {
		t.Fatalf("Brightness = %d/%d, %v", w, p, err)
	}
	for _, c := range [][2]uint32{{1001, 1000}, {0, 0}} {
		if err := d.SetBrightness(c[0], c[1]); !errors.Is(err, errcode.ValueOutOfRange) {
			t.Fatalf("SetBrightness(%d, %d): want ValueOutOfRange, got %v", c[0], c[1], err)
		}
	}
}

func TestFade(t *testing.T) {
	d, sim := newLeds(t)
	_ = d.SetBrightness(0, 100)

	ticks := 0
	err := d.Fade(1000, 40*time.Millisecond, 4, func(time.Duration) bool {
		ticks++
		return true
	})
	if err != nil {
		t.Fatalf("Fade: %v", err)
	}
	if ticks != 4 {
		t.Fatalf("ticks = %d", ticks)
	}
	if got := sim.Peek(widthAddr, reg.W32); got != 100 {
		t.Fatalf("width = %d, want clamp to period 100", got)
	}
}

func TestWithoutPWM(t *testing.T) {
	sim := mmio.NewSim()
	desc := reg.MustDescribe("LEDS", 0x100, reg.Layout{},
		reg.Register{Name: "OUT", Width: reg.W8},
	)
	h, _ := periph.Define(desc, sim).Take()
	d, err := New(h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Count() != 8 || d.HasPWM() {
		t.Fatalf("count=%d pwm=%v", d.Count(), d.HasPWM())
	}
	if err := d.Set(0xFF); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := d.EnablePWM(true); !errors.Is(err, errcode.NotFound) {
		t.Fatalf("EnablePWM: want NotFound, got %v", err)
	}
	if err := d.Fade(1, time.Second, 2, nil); !errors.Is(err, errcode.NotFound) {
		t.Fatalf("Fade: want NotFound, got %v", err)
	}
}

func TestWideBankClampsToMask(t *testing.T) {
	sim := mmio.NewSim()
	desc := reg.MustDescribe("LEDS", 0x1000, reg.Layout{AddressBits: 64, BusWidth: reg.W64},
		reg.Register{Name: "OUT", Width: reg.W64},
	)
	h, _ := periph.Define(desc, sim).Take()
	d, err := New(h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Count() != 32 {
		t.Fatalf("count = %d, want 32", d.Count())
	}

	sim.Record(true)
	steps := 0
	err = d.Chase(func(time.Duration) bool {
		steps++
		return steps < 40
	}, time.Millisecond)
	if err != nil {
		t.Fatalf("Chase: %v", err)
	}
	var seen []uint64
	for _, a := range sim.History() {
		if a.Write && a.Addr == 0x1000 {
			seen = append(seen, a.Value)
		}
	}
	if len(seen) != 41 || seen[31] != 1<<31 || seen[32] != 1 || seen[40] != 0 {
		t.Fatalf("chase writes = %#x", seen)
	}
	for i, v := range seen[:40] {
		if v == 0 {
			t.Fatalf("step %d wrote an empty mask", i)
		}
	}
}

func TestNewNeedsOut(t *testing.T) {
	desc := reg.MustDescribe("X", 0x200, reg.Layout{}, reg.Register{Name: "IN", Width: reg.W8})
	h, _ := periph.Define(desc, mmio.NewSim()).Take()
	if _, err := New(h); !errors.Is(err, errcode.NotFound) {
		t.Fatalf("want NotFound, got %v", err)
	}
}
