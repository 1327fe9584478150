// Package aht20 reads the AHT20 temperature and humidity sensor over any
// tinygo.org/x/drivers.I2C bus. On the FeatherSoC that bus is the
// betrusted_i2c master driven by litexi2c.
//
// Measurements are two-phase so callers can schedule the conversion wait:
//
//	d.Trigger()           // start a conversion
//	err := d.Collect(&s)  // errcode.Busy until the conversion is done
//
// Read does both with bounded polling. Conversions are fixed-point; Sample
// reports tenths of a degree and of a percent.
package aht20

import (
	"time"

	"tinygo.org/x/drivers"

	"litex-pac-go/errcode"
)

// Address is the fixed 7-bit bus address.
const Address = 0x38

const (
	cmdTrigger    = 0xAC
	cmdInitialize = 0xBE
	cmdSoftReset  = 0xBA
	cmdStatus     = 0x71

	statusBusy       = 0x80
	statusCalibrated = 0x08
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x38.
	Address uint16
	// PollInterval separates Collect attempts in Read. Default 15 ms.
	PollInterval time.Duration
	// CollectTimeout bounds the total wait in Read. Default 250 ms.
	CollectTimeout time.Duration
	// SkipCRC accepts frames without checking the trailing CRC byte.
	SkipCRC bool
}

// Sample is one raw 20-bit humidity and temperature pair.
type Sample struct {
	RawHumidity uint32
	RawTemp     uint32
}

// DeciRelHumidity returns tenths of %RH.
func (s Sample) DeciRelHumidity() int32 {
	h := int64(s.RawHumidity) * 1000
	return int32(h >> 20)
}

// DeciCelsius returns tenths of a degree Celsius.
func (s Sample) DeciCelsius() int32 {
	t := int64(s.RawTemp) * 2000
	return int32(t>>20) - 500
}

// Device talks to one sensor.
type Device struct {
	bus  drivers.I2C
	cfg  Config
	buf  [7]byte
	last Sample
}

// New binds the driver to an already configured bus. It does not touch the
// sensor.
func New(bus drivers.I2C) *Device {
	return &Device{bus: bus, cfg: Config{
		Address:        Address,
		PollInterval:   15 * time.Millisecond,
		CollectTimeout: 250 * time.Millisecond,
	}}
}

// Configure applies cfg and calibrates the sensor unless it reports being
// calibrated already. A sensor that does not answer yields errcode.NotFound
// from the bus.
func (d *Device) Configure(cfgs ...Config) error {
	if len(cfgs) > 0 {
		c := cfgs[0]
		if c.Address == 0 {
			c.Address = d.cfg.Address
		}
		if c.PollInterval <= 0 {
			c.PollInterval = d.cfg.PollInterval
		}
		if c.CollectTimeout <= 0 {
			c.CollectTimeout = d.cfg.CollectTimeout
		}
		d.cfg = c
	}
	st, err := d.Status()
	if err != nil {
		return err
	}
	if st&statusCalibrated != 0 {
		return nil
	}
	return d.bus.Tx(d.cfg.Address, []byte{cmdInitialize, 0x08, 0x00}, nil)
}

// Reset issues a soft reset. The sensor needs about 20 ms before the next
// command.
func (d *Device) Reset() error {
	return d.bus.Tx(d.cfg.Address, []byte{cmdSoftReset}, nil)
}

// Status returns the status byte.
func (d *Device) Status() (byte, error) {
	var b [1]byte
	if err := d.bus.Tx(d.cfg.Address, []byte{cmdStatus}, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Trigger starts a conversion, which takes about 80 ms.
func (d *Device) Trigger() error {
	return d.bus.Tx(d.cfg.Address, []byte{cmdTrigger, 0x33, 0x00}, nil)
}

// Collect reads the finished conversion into out. It returns errcode.Busy
// while the sensor is still converting and errcode.Error on a bad CRC.
func (d *Device) Collect(out *Sample) error {
	data := d.buf[:]
	if err := d.bus.Tx(d.cfg.Address, nil, data); err != nil {
		return err
	}
	if data[0]&statusCalibrated == 0 || data[0]&statusBusy != 0 {
		return errcode.New(errcode.Busy, "aht20", "conversion in progress")
	}
	if !d.cfg.SkipCRC && crc8(data[:6]) != data[6] {
		return errcode.New(errcode.Error, "aht20", "crc mismatch")
	}
	s := Sample{
		RawHumidity: uint32(data[1])<<12 | uint32(data[2])<<4 | uint32(data[3])>>4,
		RawTemp:     uint32(data[3]&0x0F)<<16 | uint32(data[4])<<8 | uint32(data[5]),
	}
	d.last = s
	if out != nil {
		*out = s
	}
	return nil
}

// Read triggers a conversion and polls Collect until it succeeds or
// CollectTimeout elapses, which yields errcode.Timeout.
func (d *Device) Read() (Sample, error) {
	if err := d.Trigger(); err != nil {
		return Sample{}, err
	}
	deadline := time.Now().Add(d.cfg.CollectTimeout)
	for {
		var s Sample
		err := d.Collect(&s)
		if errcode.Of(err) != errcode.Busy {
			return s, err
		}
		if time.Now().After(deadline) {
			return Sample{}, errcode.New(errcode.Timeout, "aht20", "no sample within "+d.cfg.CollectTimeout.String())
		}
		time.Sleep(d.cfg.PollInterval)
	}
}

// Last returns the most recent collected sample.
func (d *Device) Last() Sample { return d.last }

// crc8 is the sensor's CRC-8: polynomial 0x31, init 0xFF.
func crc8(b []byte) byte {
	crc := byte(0xFF)
	for _, x := range b {
		crc ^= x
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x31
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
