// Package litexspi drives the LiteX SPIMaster core one byte at a time.
//
// Device implements tinygo.org/x/drivers.SPI. Chip select is either driven by
// the core around each transfer (the default) or held by software with
// Select when Config.ManualCS is set.
package litexspi

import (
	"tinygo.org/x/drivers"

	"litex-pac-go/errcode"
	"litex-pac-go/periph"
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// SpinBudget bounds how many times a transfer polls STATUS.DONE before
	// giving up with errcode.Timeout. Default 10000.
	SpinBudget int
	// ManualCS hands chip select to Select instead of the core.
	ManualCS bool
	// Loopback routes MOSI back into MISO inside the core.
	Loopback bool
}

// Device wraps a taken SPI handle.
type Device struct {
	h      *periph.Handle
	mosi   periph.Reg
	miso   periph.Reg
	status periph.Reg
	cfg    Config
}

var _ drivers.SPI = (*Device)(nil)

// New binds the driver to h. It does not touch the hardware.
func New(h *periph.Handle) (*Device, error) {
	d := &Device{h: h, cfg: Config{SpinBudget: 10000}}
	var err error
	if d.mosi, err = h.Register("MOSI"); err != nil {
		return nil, err
	}
	if d.miso, err = h.Register("MISO"); err != nil {
		return nil, err
	}
	if d.status, err = h.Register("STATUS"); err != nil {
		return nil, err
	}
	for _, name := range []string{"CONTROL", "CS", "LOOPBACK"} {
		if _, err := h.Register(name); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Configure applies cfg to the chip-select and loopback registers. In manual
// mode chip select starts released.
func (d *Device) Configure(cfgs ...Config) error {
	if len(cfgs) > 0 {
		c := cfgs[0]
		if c.SpinBudget <= 0 {
			c.SpinBudget = d.cfg.SpinBudget
		}
		d.cfg = c
	}
	cs := []periph.FieldValue{periph.F("SEL", 1), periph.F("MODE", 0)}
	if d.cfg.ManualCS {
		cs = []periph.FieldValue{periph.F("SEL", 0), periph.F("MODE", 1)}
	}
	if err := d.h.WriteFields("CS", cs...); err != nil {
		return err
	}
	return d.SetLoopback(d.cfg.Loopback)
}

// Select asserts or releases chip select. Only valid in manual mode.
func (d *Device) Select(on bool) error {
	if !d.cfg.ManualCS {
		return errcode.New(errcode.Busy, "litexspi", "chip select is driven by the core")
	}
	return d.h.Modify("CS", periph.F("SEL", bit(on)))
}

// SetLoopback switches internal loopback.
func (d *Device) SetLoopback(on bool) error {
	d.cfg.Loopback = on
	return d.h.WriteFields("LOOPBACK", periph.F("MODE", bit(on)))
}

// Transfer shifts out b and returns the byte shifted in.
func (d *Device) Transfer(b byte) (byte, error) {
	if err := d.mosi.Write(uint64(b)); err != nil {
		return 0, err
	}
	if err := d.h.WriteFields("CONTROL", periph.F("START", 1), periph.F("LENGTH", 8)); err != nil {
		return 0, err
	}
	for i := 0; ; i++ {
		st, err := d.status.Read()
		if err != nil {
			return 0, err
		}
		if st&1 != 0 {
			break
		}
		if i >= d.cfg.SpinBudget {
			return 0, errcode.New(errcode.Timeout, "litexspi", "transfer did not complete")
		}
	}
	v, err := d.miso.Read()
	return byte(v), err
}

// Tx writes w while reading into r. Either may be nil: a nil w clocks out
// zeros, a nil r discards what comes back. When both are given they must be
// the same length.
func (d *Device) Tx(w, r []byte) error {
	n := len(w)
	switch {
	case w == nil:
		n = len(r)
	case r != nil && len(r) != len(w):
		return errcode.New(errcode.ValueOutOfRange, "litexspi", "tx and rx lengths differ")
	}
	for i := 0; i < n; i++ {
		var out byte
		if w != nil {
			out = w[i]
		}
		in, err := d.Transfer(out)
		if err != nil {
			return err
		}
		if r != nil {
			r[i] = in
		}
	}
	return nil
}

func bit(on bool) uint64 {
	if on {
		return 1
	}
	return 0
}
