// Package litexi2c drives the OpenCores-derived RTLI2C master that LiteX
// exposes as betrusted_i2c.
//
// Device implements tinygo.org/x/drivers.I2C. A Tx with both w and r writes
// w, then issues a repeated start and reads r without releasing the bus.
package litexi2c

import (
	"tinygo.org/x/drivers"

	"litex-pac-go/errcode"
	"litex-pac-go/periph"
	"litex-pac-go/x/conv"
)

// COMMAND bits.
const (
	cmdIACK = 1 << 0
	cmdACK  = 1 << 3 // on RD: answer NACK
	cmdWR   = 1 << 4
	cmdRD   = 1 << 5
	cmdSTO  = 1 << 6
	cmdSTA  = 1 << 7
)

// STATUS bits.
const (
	stTIP     = 1 << 1
	stARBLOST = 1 << 5
	stRXACK   = 1 << 7
)

// Config controls bus timing. All fields are optional.
type Config struct {
	// ClockHz is the core clock. Default 48 MHz, the FeatherSoC sys_clk.
	ClockHz uint32
	// Frequency is the SCL rate. Default 100 kHz.
	Frequency uint32
	// SpinBudget bounds how many times a byte polls STATUS.TIP before
	// giving up with errcode.Timeout. Default 10000.
	SpinBudget int
}

// Device wraps a taken BETRUSTED_I2C handle.
type Device struct {
	h       *periph.Handle
	txr     periph.Reg
	rxr     periph.Reg
	command periph.Reg
	status  periph.Reg
	cfg     Config
}

var _ drivers.I2C = (*Device)(nil)

// New binds the driver to h. It does not touch the hardware.
func New(h *periph.Handle) (*Device, error) {
	d := &Device{h: h, cfg: Config{ClockHz: 48_000_000, Frequency: 100_000, SpinBudget: 10000}}
	var err error
	if d.txr, err = h.Register("TXR"); err != nil {
		return nil, err
	}
	if d.rxr, err = h.Register("RXR"); err != nil {
		return nil, err
	}
	if d.command, err = h.Register("COMMAND"); err != nil {
		return nil, err
	}
	if d.status, err = h.Register("STATUS"); err != nil {
		return nil, err
	}
	for _, name := range []string{"PRESCALE", "CONTROL", "EV_ENABLE"} {
		if _, err := h.Register(name); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Prescale returns the PRESCALE value for a core clock and SCL rate.
func Prescale(clockHz, frequency uint32) (uint16, error) {
	div := 5 * uint64(frequency)
	if div == 0 || uint64(clockHz) < div {
		return 0, errcode.New(errcode.ValueOutOfRange, "litexi2c", "scl "+conv.Uint(uint64(frequency))+"Hz too fast for clock")
	}
	p := uint64(clockHz)/div - 1
	if p > 0xFFFF {
		return 0, errcode.New(errcode.ValueOutOfRange, "litexi2c", "scl "+conv.Uint(uint64(frequency))+"Hz too slow for clock")
	}
	return uint16(p), nil
}

// Configure programs the prescaler with the core disabled, then enables it
// with interrupts off.
func (d *Device) Configure(cfgs ...Config) error {
	c := d.cfg
	if len(cfgs) > 0 {
		if cfgs[0].ClockHz != 0 {
			c.ClockHz = cfgs[0].ClockHz
		}
		if cfgs[0].Frequency != 0 {
			c.Frequency = cfgs[0].Frequency
		}
		if cfgs[0].SpinBudget > 0 {
			c.SpinBudget = cfgs[0].SpinBudget
		}
	}
	p, err := Prescale(c.ClockHz, c.Frequency)
	if err != nil {
		return err
	}
	d.cfg = c
	if err := d.h.Write("EV_ENABLE", 0); err != nil {
		return err
	}
	if err := d.h.Write("CONTROL", 0); err != nil {
		return err
	}
	if err := d.h.WriteFields("PRESCALE", periph.F("PRESCALE", uint64(p))); err != nil {
		return err
	}
	return d.h.WriteFields("CONTROL", periph.F("EN", 1))
}

// Tx addresses the 7-bit target addr, writes w, then reads len(r) bytes.
// An empty w and r only addresses the target, which is enough to scan for it.
// A target that does not acknowledge its address yields errcode.NotFound.
func (d *Device) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7F {
		return errcode.New(errcode.ValueOutOfRange, "litexi2c", "address "+conv.Hex(uint64(addr)))
	}
	if len(w) > 0 || len(r) == 0 {
		if err := d.start(addr, 0, len(w) == 0 && len(r) == 0); err != nil {
			return err
		}
		for i, b := range w {
			cmd := uint64(cmdWR)
			if i == len(w)-1 && len(r) == 0 {
				cmd |= cmdSTO
			}
			if err := d.send(b, cmd); err != nil {
				return err
			}
		}
	}
	if len(r) == 0 {
		return nil
	}
	if err := d.start(addr, 1, false); err != nil {
		return err
	}
	for i := range r {
		cmd := uint64(cmdRD)
		if i == len(r)-1 {
			cmd |= cmdACK | cmdSTO
		}
		if err := d.command.Write(cmd); err != nil {
			return err
		}
		if _, err := d.wait(); err != nil {
			return err
		}
		v, err := d.rxr.Read()
		if err != nil {
			return err
		}
		r[i] = byte(v)
	}
	return nil
}

// start issues START (or a repeated start) with the address byte.
func (d *Device) start(addr uint16, rw byte, stop bool) error {
	cmd := uint64(cmdSTA | cmdWR)
	if stop {
		cmd |= cmdSTO
	}
	err := d.send(byte(addr)<<1|rw, cmd)
	if errcode.Of(err) == errcode.Error {
		return errcode.New(errcode.NotFound, "litexi2c", "no ack from "+conv.Hex(uint64(addr)))
	}
	return err
}

// send writes one byte and checks the target acknowledged it. On NACK the
// bus is released before returning.
func (d *Device) send(b byte, cmd uint64) error {
	if err := d.txr.Write(uint64(b)); err != nil {
		return err
	}
	if err := d.command.Write(cmd); err != nil {
		return err
	}
	st, err := d.wait()
	if err != nil {
		return err
	}
	if st&stRXACK != 0 {
		if cmd&cmdSTO == 0 {
			if err := d.stop(); err != nil {
				return err
			}
		}
		return errcode.New(errcode.Error, "litexi2c", "nack")
	}
	return nil
}

func (d *Device) stop() error {
	if err := d.command.Write(cmdSTO); err != nil {
		return err
	}
	_, err := d.wait()
	return err
}

// wait polls until the current byte finishes and returns the final status.
func (d *Device) wait() (uint64, error) {
	for i := 0; ; i++ {
		st, err := d.status.Read()
		if err != nil {
			return 0, err
		}
		if st&stARBLOST != 0 {
			_ = d.command.Write(cmdIACK)
			return st, errcode.New(errcode.Busy, "litexi2c", "arbitration lost")
		}
		if st&stTIP == 0 {
			return st, nil
		}
		if i >= d.cfg.SpinBudget {
			return st, errcode.New(errcode.Timeout, "litexi2c", "transfer did not complete")
		}
	}
}
