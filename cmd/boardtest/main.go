// cmd/boardtest/main.go
package main

import (
	"time"

	"litex-pac-go/config"
	"litex-pac-go/drivers/aht20"
	"litex-pac-go/drivers/ledchaser"
	"litex-pac-go/drivers/litexi2c"
	"litex-pac-go/drivers/litexspi"
	"litex-pac-go/drivers/litexuart"
	"litex-pac-go/errcode"
	"litex-pac-go/pac/feather"
	"litex-pac-go/periph"
	"litex-pac-go/reg"
	"litex-pac-go/x/conv"
)

// ---------- Configuration ----------

const (
	board = "orangecrab"

	chaseStep  = 80 * time.Millisecond
	chaseSteps = 12
	fadeTime   = 600 * time.Millisecond
	fadeSteps  = 30
	pwmPeriod  = 1024
	dwell      = 1 * time.Second

	baudRate  = 115200
	i2cFreq   = 100_000
	timerLoad = 0x00FF_FFFF

	// Cycles: 0 = loop forever
	cyclesToRun = 0
)

var scratchPatterns = []uint64{0x00000000, 0xFFFFFFFF, 0xA5A5A5A5, 0x5A5A5A5A, 0x12345678}

var spiPattern = []byte{0x00, 0xFF, 0x55, 0xAA, 0x0F, 0xF0, 0xDE, 0xAD}

// ---------- Minimal output to console + UART ----------

type out struct {
	u *litexuart.Device
}

func (o *out) println(parts ...string) {
	var line []byte
	for _, p := range parts {
		line = append(line, p...)
	}
	println(string(line))
	if o.u != nil {
		line = append(line, '\r', '\n')
		_, _ = o.u.Write(line)
	}
}

// ---------- Helpers ----------

func mustTake(t *periph.Type) *periph.Handle {
	h, err := t.Take()
	if err != nil {
		println("[boardtest] " + err.Error())
		for {
		}
	}
	return h
}

// checkMemoryMap compares the generated descriptors with the board config.
func checkMemoryMap(o *out) bool {
	b, err := config.Load(board)
	if err != nil {
		o.println("[map] ", err.Error())
		return false
	}
	descs, err := b.Describe()
	if err != nil {
		o.println("[map] ", err.Error())
		return false
	}
	gen := map[string]*reg.Peripheral{
		feather.CTRLDesc.Name(): feather.CTRLDesc,
		feather.LEDSDesc.Name(): feather.LEDSDesc,

		feather.TIMER0Desc.Name():           feather.TIMER0Desc,
		feather.FEATHER_UART_PHYDesc.Name(): feather.FEATHER_UART_PHYDesc,
		feather.FEATHER_UARTDesc.Name():     feather.FEATHER_UARTDesc,
		feather.SPIDesc.Name():              feather.SPIDesc,
		feather.BETRUSTED_I2CDesc.Name():    feather.BETRUSTED_I2CDesc,
	}
	ok := true
	for _, d := range descs {
		g := gen[d.Name()]
		switch {
		case g == nil:
			o.println("[map] ", d.Name(), " not in generated package")
			ok = false
		case g.Base() != d.Base():
			o.println("[map] ", d.Name(), " at ", conv.Hex(uint64(g.Base())), ", board says ", conv.Hex(uint64(d.Base())))
			ok = false
		}
	}
	return ok
}

func checkScratch(o *out, ctrl *periph.Handle) bool {
	ok := true
	for _, p := range scratchPatterns {
		if err := ctrl.Write("SCRATCH", p); err != nil {
			o.println("[scratch] ", err.Error())
			return false
		}
		got, err := ctrl.Read("SCRATCH")
		if err != nil || got != p {
			o.println("[scratch] wrote ", conv.Hex(p), " read ", conv.Hex(got))
			ok = false
		}
	}
	_ = ctrl.Reset("SCRATCH")
	if n, err := ctrl.Read("BUS_ERRORS"); err == nil && n != 0 {
		o.println("[scratch] bus errors: ", conv.Uint(n))
		ok = false
	}
	return ok
}

// checkTimer starts a one-shot countdown and expects VALUE to fall.
func checkTimer(o *out, t *periph.Handle) bool {
	snap := func() (uint64, error) {
		if err := t.WriteFields("UPDATE_VALUE", periph.F("UPDATE_VALUE", 1)); err != nil {
			return 0, err
		}
		return t.Read("VALUE")
	}
	_ = t.WriteFields("EN", periph.F("EN", 0))
	_ = t.Write("EV_ENABLE", 0)
	_ = t.Write("RELOAD", 0)
	if err := t.Write("LOAD", timerLoad); err != nil {
		o.println("[timer] ", err.Error())
		return false
	}
	_ = t.WriteFields("EN", periph.F("EN", 1))
	a, err := snap()
	if err != nil {
		o.println("[timer] ", err.Error())
		return false
	}
	time.Sleep(time.Millisecond)
	b, err := snap()
	_ = t.WriteFields("EN", periph.F("EN", 0))
	if err != nil || b >= a {
		o.println("[timer] not counting down: ", conv.Hex(a), " then ", conv.Hex(b))
		return false
	}
	return true
}

// readSensor reports one AHT20 sample. A missing sensor is not a failure.
func readSensor(o *out, s *aht20.Device) bool {
	v, err := s.Read()
	switch {
	case errcode.Of(err) == errcode.NotFound:
		o.println("[i2c] no AHT20 at ", conv.Hex(aht20.Address))
		return true
	case err != nil:
		o.println("[i2c] ", err.Error())
		return false
	}
	o.println("[aht20] ", deci(v.DeciCelsius()), " C, ", deci(v.DeciRelHumidity()), " %RH")
	return true
}

func deci(v int32) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	return sign + conv.Uint(uint64(v/10)) + "." + conv.Uint(uint64(v%10))
}

func checkSPILoopback(o *out, spi *litexspi.Device) bool {
	if err := spi.Configure(litexspi.Config{Loopback: true}); err != nil {
		o.println("[spi] ", err.Error())
		return false
	}
	defer spi.SetLoopback(false)

	got := make([]byte, len(spiPattern))
	if err := spi.Tx(spiPattern, got); err != nil {
		o.println("[spi] ", err.Error())
		return false
	}
	for i := range got {
		if got[i] != spiPattern[i] {
			o.println("[spi] byte ", conv.Uint(uint64(i)), ": sent ", conv.Hex(uint64(spiPattern[i])), " got ", conv.Hex(uint64(got[i])))
			return false
		}
	}
	return true
}

func chase(leds *ledchaser.Device) error {
	n := 0
	return leds.Chase(func(d time.Duration) bool {
		time.Sleep(d)
		n++
		return n < chaseSteps
	}, chaseStep)
}

func fade(leds *ledchaser.Device) error {
	if !leds.HasPWM() {
		return nil
	}
	sleep := func(d time.Duration) bool { time.Sleep(d); return true }
	if err := leds.SetBrightness(0, pwmPeriod); err != nil {
		return err
	}
	if err := leds.EnablePWM(true); err != nil {
		return err
	}
	_ = leds.Set(1<<leds.Count() - 1)
	if err := leds.Fade(pwmPeriod, fadeTime, fadeSteps, sleep); err != nil {
		return err
	}
	if err := leds.Fade(0, fadeTime, fadeSteps, sleep); err != nil {
		return err
	}
	_ = leds.Set(0)
	return leds.EnablePWM(false)
}

func flashPassFail(leds *ledchaser.Device, pass bool) {
	if pass {
		// Double short
		for i := 0; i < 2; i++ {
			_ = leds.Set(0b010)
			time.Sleep(120 * time.Millisecond)
			_ = leds.Set(0)
			time.Sleep(200 * time.Millisecond)
		}
	} else {
		// Single long
		_ = leds.Set(0b001)
		time.Sleep(400 * time.Millisecond)
		_ = leds.Set(0)
		time.Sleep(200 * time.Millisecond)
	}
}

// echo returns whatever arrived on the UART since the last call.
func echo(o *out) {
	var buf [32]byte
	n, _ := o.u.Read(buf[:])
	if n > 0 {
		o.println("[uart] rx: ", string(buf[:n]))
	}
}

// ---------- Main ----------

func main() {
	ctrl := mustTake(feather.CTRL)
	ledsH := mustTake(feather.LEDS)
	timer := mustTake(feather.TIMER0)
	phyH := mustTake(feather.FEATHER_UART_PHY)
	uartH := mustTake(feather.FEATHER_UART)
	spiH := mustTake(feather.SPI)
	i2cH := mustTake(feather.BETRUSTED_I2C)

	var o out
	if u, err := litexuart.New(uartH); err != nil {
		println("[boardtest] uart: " + err.Error())
	} else if err := u.WithPhy(phyH); err != nil {
		println("[boardtest] uart phy: " + err.Error())
	} else if err := u.Configure(litexuart.Config{BaudRate: baudRate}); err != nil {
		println("[boardtest] uart: " + err.Error())
	} else {
		o.u = u
	}

	leds, err := ledchaser.New(ledsH)
	if err != nil {
		o.println("[boardtest] leds: ", err.Error())
		for {
		}
	}
	spi, err := litexspi.New(spiH)
	if err != nil {
		o.println("[boardtest] spi: ", err.Error())
	}
	var sensor *aht20.Device
	if bus, err := litexi2c.New(i2cH); err != nil {
		o.println("[boardtest] i2c: ", err.Error())
	} else if err := bus.Configure(litexi2c.Config{Frequency: i2cFreq}); err != nil {
		o.println("[boardtest] i2c: ", err.Error())
	} else {
		sensor = aht20.New(bus)
		if err := sensor.Configure(); err != nil {
			o.println("[boardtest] aht20: ", err.Error())
		}
	}

	mapOK := checkMemoryMap(&o)

	cycle := 0
	for {
		cycle++
		o.println("=== boardtest: cycle ", conv.Uint(uint64(cycle)), " ===")

		pass := mapOK
		if !checkScratch(&o, ctrl) {
			pass = false
		}
		if !checkTimer(&o, timer) {
			pass = false
		}
		if spi != nil && !checkSPILoopback(&o, spi) {
			pass = false
		}
		if sensor != nil && !readSensor(&o, sensor) {
			pass = false
		}
		if err := chase(leds); err != nil {
			o.println("[leds] ", err.Error())
			pass = false
		}
		if err := fade(leds); err != nil {
			o.println("[leds] ", err.Error())
			pass = false
		}
		if o.u != nil {
			echo(&o)
		}

		if pass {
			o.println("[PASS] scratch, timer, SPI loopback, I2C and LEDs")
		} else {
			o.println("[FAIL] see above")
		}
		flashPassFail(leds, pass)
		time.Sleep(dwell)

		if cyclesToRun > 0 && cycle >= cyclesToRun {
			o.println("completed ", conv.Uint(uint64(cycle)), " cycles; halting")
			return
		}
	}
}
