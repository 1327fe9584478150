// Package ledchaser drives the LiteX LedChaser core: a bank of user LEDs with
// an optional global PWM dimmer.
//
//	h, _ := feather.LEDS.Take()
//	leds, _ := ledchaser.New(h)
//	leds.Set(0b101)
//
// The PWM registers only exist when the gateware was built with PWM; without
// them the brightness calls return errcode.NotFound.
package ledchaser

import (
	"time"

	"litex-pac-go/errcode"
	"litex-pac-go/periph"
	"litex-pac-go/x/mathx"
	"litex-pac-go/x/ramp"
)

const (
	regOut       = "OUT"
	regPWMEnable = "PWM_ENABLE"
	regPWMWidth  = "PWM_WIDTH"
	regPWMPeriod = "PWM_PERIOD"
)

// Device wraps a taken LEDS handle.
type Device struct {
	h      *periph.Handle
	out    periph.Reg
	n      uint8 // LED count
	pwm    bool
	width  periph.Typed[uint32]
	period periph.Typed[uint32]
}

// maxLEDs is the width of the masks Set and Get exchange.
const maxLEDs = 32

// New binds the driver to h. OUT is required; its OUT field, when declared,
// gives the number of LEDs, otherwise every bit of the register counts. Banks
// wider than a uint32 mask are driven through their low 32 bits.
func New(h *periph.Handle) (*Device, error) {
	out, err := h.Register(regOut)
	if err != nil {
		return nil, err
	}
	d := &Device{h: h, out: out, n: uint8(out.Descriptor().Width)}
	if f, err := out.Descriptor().Field(regOut); err == nil {
		d.n = f.Width
	}
	if d.n > maxLEDs {
		d.n = maxLEDs
	}

	if _, err := h.Descriptor().Resolve(regPWMEnable); err == nil {
		if d.width, err = periph.Bind[uint32](h, regPWMWidth); err != nil {
			return nil, err
		}
		if d.period, err = periph.Bind[uint32](h, regPWMPeriod); err != nil {
			return nil, err
		}
		d.pwm = true
	}
	return d, nil
}

// Count returns the number of LEDs.
func (d *Device) Count() int { return int(d.n) }

// HasPWM reports whether the gateware exposes the dimmer.
func (d *Device) HasPWM() bool { return d.pwm }

// Set lights the LEDs whose bits are set in mask.
func (d *Device) Set(mask uint32) error {
	if !mathx.Fits(uint64(mask), d.n) {
		return &errcode.E{C: errcode.ValueOutOfRange, Op: "ledchaser", Msg: "mask wider than LED bank"}
	}
	return d.out.Write(uint64(mask))
}

// Get returns the current LED mask.
func (d *Device) Get() (uint32, error) {
	v, err := d.out.Read()
	return uint32(mathx.Extract(v, 0, d.n)), err
}

// Toggle flips the LEDs whose bits are set in mask.
func (d *Device) Toggle(mask uint32) error {
	cur, err := d.Get()
	if err != nil {
		return err
	}
	return d.Set((cur ^ mask) & uint32(mathx.Mask[uint64](d.n)))
}

// Chase walks a single lit LED across the bank, calling tick between steps,
// until tick returns false. The bank is left dark.
func (d *Device) Chase(tick ramp.Tick, step time.Duration) error {
	if d.n == 0 {
		return errcode.New(errcode.InvalidConfig, "ledchaser", "no LEDs")
	}
	for i := uint8(0); ; i = (i + 1) % d.n {
		if err := d.Set(1 << i); err != nil {
			return err
		}
		if !tick(step) {
			return d.Set(0)
		}
	}
}

// EnablePWM switches the dimmer on or off.
func (d *Device) EnablePWM(on bool) error {
	if !d.pwm {
		return d.noPWM()
	}
	var v uint64
	if on {
		v = 1
	}
	return d.h.WriteFields(regPWMEnable, periph.F(regPWMEnable, v))
}

// SetBrightness sets the on-time (width) within each PWM period, both in
// system clock cycles.
func (d *Device) SetBrightness(width, period uint32) error {
	if !d.pwm {
		return d.noPWM()
	}
	if period == 0 || width > period {
		return &errcode.E{C: errcode.ValueOutOfRange, Op: "ledchaser", Msg: "width must be within a non-zero period"}
	}
	if err := d.period.Write(period); err != nil {
		return err
	}
	return d.width.Write(width)
}

// Brightness returns the current PWM width and period.
func (d *Device) Brightness() (width, period uint32, err error) {
	if !d.pwm {
		return 0, 0, d.noPWM()
	}
	if width, err = d.width.Read(); err != nil {
		return 0, 0, err
	}
	period, err = d.period.Read()
	return width, period, err
}

// Fade ramps the PWM width to 'to' (clamped to the current period) over dur
// in the given number of steps. tick paces the ramp; if it cancels, the
// width stays where the ramp stopped.
func (d *Device) Fade(to uint32, dur time.Duration, steps uint16, tick ramp.Tick) error {
	width, period, err := d.Brightness()
	if err != nil {
		return err
	}
	var werr error
	ramp.Linear(width, to, period, dur, steps, tick, func(v uint32) {
		if werr == nil {
			werr = d.width.Write(v)
		}
	})
	return werr
}

func (d *Device) noPWM() error {
	return errcode.New(errcode.NotFound, "ledchaser", d.h.Name()+" has no PWM")
}

