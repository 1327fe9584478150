// Package ramp steps an integer level towards a target over time.
package ramp

import (
	"time"

	"golang.org/x/exp/constraints"

	"litex-pac-go/x/mathx"
)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Linear runs a synchronous (caller-driven) ramp from cur to to, with every
// level clamped to top. set is called only when the level changes, and once
// more with the final level. steps==0 or duration<=0 snaps to 'to'.
// Levels must fit in an int64. Reports false if tick cancelled the ramp.
func Linear[T constraints.Unsigned](cur, to, top T, duration time.Duration, steps uint16, tick Tick, set func(T)) bool {
	to = mathx.Min(to, top)
	if steps == 0 || duration <= 0 {
		set(to)
		return true
	}
	d := int64(to) - int64(cur)
	st := int64(steps)
	acc := int64(0)
	lvl := int64(cur)
	stepDur := duration / time.Duration(steps)
	if stepDur <= 0 {
		stepDur = time.Millisecond
	}

	for i := uint16(1); i < steps; i++ {
		if !tick(stepDur) {
			return false
		}
		acc += d
		inc := acc / st
		if inc != 0 {
			acc -= inc * st
			lvl = mathx.Clamp(lvl+inc, 0, int64(top))
			set(T(lvl))
		}
	}
	if !tick(stepDur) {
		return false
	}
	set(to)
	return true
}
