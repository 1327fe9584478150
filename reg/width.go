package reg

import "litex-pac-go/x/mathx"

// Width is a register width in bits.
type Width uint8

const (
	W8  Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
)

func (w Width) Valid() bool {
	switch w {
	case W8, W16, W32, W64:
		return true
	}
	return false
}

func (w Width) Bytes() uintptr { return uintptr(w) / 8 }

// Mask has the low w bits set.
func (w Width) Mask() uint64 { return mathx.Mask[uint64](uint8(w)) }

// Fits reports 0 <= v < 2^w.
func (w Width) Fits(v uint64) bool { return mathx.Fits(v, uint8(w)) }
