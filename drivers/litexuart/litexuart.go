// Package litexuart drives the LiteX UART core through its CSRs. It is a
// polled driver: event interrupts are left disabled and status is read from
// the TXFULL and RXEMPTY registers.
//
// Device implements tinygo.org/x/drivers.UART, so it can back anything that
// accepts a UART, including a plain console:
//
//	h, _ := feather.FEATHER_UART.Take()
//	u, _ := litexuart.New(h)
//	u.Configure()
//
// The baud rate lives in the separate UART PHY block. Bind it with WithPhy
// before asking Configure for a BaudRate.
//	u.Write([]byte("hello\r\n"))
package litexuart

import (
	"tinygo.org/x/drivers"

	"litex-pac-go/errcode"
	"litex-pac-go/periph"
	"litex-pac-go/x/conv"
)

// Event bits shared by EV_STATUS, EV_PENDING and EV_ENABLE.
const (
	evTX = 1 << 0
	evRX = 1 << 1
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// SpinBudget bounds how many times a write polls TXFULL for one byte
	// before giving up with errcode.Timeout. Default 100000.
	SpinBudget int
	// BaudRate, when set, is programmed into the PHY tuning word.
	BaudRate uint32
	// ClockHz is the PHY clock. Default 48 MHz, the FeatherSoC sys_clk.
	ClockHz uint32
}

// Device wraps a taken UART handle.
type Device struct {
	rxtx    periph.Reg
	txfull  periph.Reg
	rxempty periph.Reg
	pending periph.Reg
	enable  periph.Reg
	tuning  *periph.Reg

	cfg Config
}

var _ drivers.UART = (*Device)(nil)

// New binds the driver to h. It does not touch the hardware.
func New(h *periph.Handle) (*Device, error) {
	d := &Device{cfg: Config{SpinBudget: 100000, ClockHz: 48_000_000}}
	for _, b := range []struct {
		name string
		dst  *periph.Reg
	}{
		{"RXTX", &d.rxtx},
		{"TXFULL", &d.txfull},
		{"RXEMPTY", &d.rxempty},
		{"EV_PENDING", &d.pending},
		{"EV_ENABLE", &d.enable},
	} {
		r, err := h.Register(b.name)
		if err != nil {
			return nil, err
		}
		*b.dst = r
	}
	return d, nil
}

// WithPhy binds the UART PHY handle that owns TUNING_WORD.
func (d *Device) WithPhy(phy *periph.Handle) error {
	r, err := phy.Register("TUNING_WORD")
	if err != nil {
		return err
	}
	d.tuning = &r
	return nil
}

// Configure applies cfg, sets the baud rate when one is given and masks UART
// events. Only a stale TX event is cleared; acknowledging RX would pop a
// byte that is already waiting.
func (d *Device) Configure(cfgs ...Config) error {
	if len(cfgs) > 0 {
		c := cfgs[0]
		if c.SpinBudget > 0 {
			d.cfg.SpinBudget = c.SpinBudget
		}
		if c.ClockHz != 0 {
			d.cfg.ClockHz = c.ClockHz
		}
		d.cfg.BaudRate = c.BaudRate
	}
	if d.cfg.BaudRate != 0 {
		if err := d.SetBaudRate(d.cfg.BaudRate); err != nil {
			return err
		}
	}
	if err := d.enable.Write(0); err != nil {
		return err
	}
	return d.pending.Write(evTX)
}

// TuningWord returns the PHY phase increment for baud at clockHz.
func TuningWord(baud, clockHz uint32) (uint32, error) {
	if baud == 0 || baud >= clockHz {
		return 0, errcode.New(errcode.ValueOutOfRange, "litexuart", "baud "+conv.Uint(uint64(baud)))
	}
	n := uint64(baud) << 32
	return uint32(n / uint64(clockHz)), nil
}

// SetBaudRate reprograms the PHY. It needs WithPhy.
func (d *Device) SetBaudRate(baud uint32) error {
	if d.tuning == nil {
		return errcode.New(errcode.NotFound, "litexuart", "no phy bound for baud rate")
	}
	tw, err := TuningWord(baud, d.cfg.ClockHz)
	if err != nil {
		return err
	}
	if err := d.tuning.Write(uint64(tw)); err != nil {
		return err
	}
	d.cfg.BaudRate = baud
	return nil
}

// WriteByte queues one byte, waiting for room in the TX FIFO.
func (d *Device) WriteByte(c byte) error {
	for i := 0; ; i++ {
		full, err := d.txfull.Read()
		if err != nil {
			return err
		}
		if full == 0 {
			break
		}
		if i >= d.cfg.SpinBudget {
			return errcode.New(errcode.Timeout, "litexuart", "tx fifo full")
		}
	}
	return d.rxtx.Write(uint64(c))
}

// Write queues p. It stops at the first byte that cannot be queued.
func (d *Device) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := d.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// ReadByte pops one received byte. It returns errcode.Busy when nothing has
// arrived.
func (d *Device) ReadByte() (byte, error) {
	empty, err := d.rxempty.Read()
	if err != nil {
		return 0, err
	}
	if empty != 0 {
		return 0, errcode.Busy
	}
	v, err := d.rxtx.Read()
	if err != nil {
		return 0, err
	}
	// Acknowledging the RX event advances the FIFO.
	if err := d.pending.Write(evRX); err != nil {
		return 0, err
	}
	return byte(v), nil
}

// Read copies whatever has already arrived into p, without waiting. It
// returns 0, nil when the FIFO is empty.
func (d *Device) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		c, err := d.ReadByte()
		if err == errcode.Busy {
			break
		}
		if err != nil {
			return n, err
		}
		p[n] = c
		n++
	}
	return n, nil
}

// Buffered reports whether a byte is waiting. The core does not expose its
// FIFO level, so the answer is 0 or 1.
func (d *Device) Buffered() int {
	empty, err := d.rxempty.Read()
	if err != nil || empty != 0 {
		return 0
	}
	return 1
}
