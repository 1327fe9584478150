//go:build !baremetal

package feather

import (
	"errors"
	"testing"

	"litex-pac-go/errcode"
	"litex-pac-go/mmio"
	"litex-pac-go/reg"
)

func TestLedsDemo(t *testing.T) {
	leds, err := LEDS.Take()
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if err := leds.Write("OUT", 5); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := mmio.HostSim().Peek(0xF000_1800, reg.W32); got != 5 {
		t.Fatalf("LEDS.OUT = %#x, want 5", got)
	}
	if _, err := LEDS.Take(); !errors.Is(err, errcode.AlreadyTaken) {
		t.Fatalf("second Take: want AlreadyTaken, got %v", err)
	}
}

func TestMemoryMap(t *testing.T) {
	cases := []struct {
		desc *reg.Peripheral
		base uintptr
		regs int
	}{
		{CTRLDesc, 0xF000_0000, 3},
		{LEDSDesc, 0xF000_1800, 4},
		{TIMER0Desc, 0xF000_2800, 8},
		{FEATHER_UART_PHYDesc, 0xF000_3000, 1},
		{FEATHER_UARTDesc, 0xF000_3800, 8},
		{SPIDesc, 0xF000_4000, 9},
		{BETRUSTED_I2CDesc, 0xF000_4800, 9},
	}
	for _, c := range cases {
		if c.desc.Base() != c.base || c.desc.Len() != c.regs {
			t.Fatalf("%s: base=%#x regs=%d", c.desc.Name(), c.desc.Base(), c.desc.Len())
		}
		if _, hi := c.desc.Span(); uint64(hi) > 1<<32 {
			t.Fatalf("%s: ends past the address space", c.desc.Name())
		}
	}

	r, _ := FEATHER_UARTDesc.Resolve("TXFULL")
	if r.Access != reg.ReadOnly {
		t.Fatal("TXFULL should be read-only")
	}
	ev, _ := FEATHER_UARTDesc.Resolve("EV_STATUS")
	if f, _ := ev.Field("RX"); f.Access != reg.ReadOnly {
		t.Fatal("EV_STATUS fields should inherit read-only")
	}
	tw, _ := FEATHER_UART_PHYDesc.Resolve("TUNING_WORD")
	if tw.Reset != 0x9D4951 {
		t.Fatalf("TUNING_WORD reset = %#x", tw.Reset)
	}
	st, _ := BETRUSTED_I2CDesc.Resolve("STATUS")
	if f, err := st.Field("TIP"); err != nil || f.Offset != 1 || st.Access != reg.ReadOnly {
		t.Fatalf("I2C STATUS.TIP = %+v", f)
	}
	cs, _ := SPIDesc.Resolve("CS")
	if cs.Reset != 1 || FEATHER_UART.Name() != "FEATHER_UART" {
		t.Fatalf("CS reset = %#x", cs.Reset)
	}
}
