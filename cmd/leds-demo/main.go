// Command leds-demo takes the LED bank, lights LEDs 0 and 2, and parks.
package main

import "litex-pac-go/pac/feather"

func main() {
	leds, err := feather.LEDS.Take()
	if err != nil {
		halt("take LEDS: ", err)
	}
	if err := leds.Write("OUT", 5); err != nil {
		halt("write OUT: ", err)
	}
	for {
	}
}

// halt is the demo's unwrap: report and stop here for the debugger.
func halt(what string, err error) {
	println(what + err.Error())
	for {
	}
}
