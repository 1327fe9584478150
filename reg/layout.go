package reg

import (
	"litex-pac-go/errcode"
	"litex-pac-go/x/conv"
)

// Layout describes the address space and the memory bus a peripheral sits on.
type Layout struct {
	// AddressBits bounds every register address to [0, 2^AddressBits).
	AddressBits uint8
	// BusWidth is the natural access width of the bus. Registers may be
	// narrower but never wider.
	BusWidth Width
}

// DefaultLayout matches the LiteX CSR bus: 32-bit addresses, 32-bit words.
var DefaultLayout = Layout{AddressBits: 32, BusWidth: W32}

func (l Layout) orDefault() Layout {
	if l.AddressBits == 0 {
		l.AddressBits = DefaultLayout.AddressBits
	}
	if l.BusWidth == 0 {
		l.BusWidth = DefaultLayout.BusWidth
	}
	return l
}

// limit is the first address past the space; 0 means the full 64-bit range.
func (l Layout) limit() uint64 {
	if l.AddressBits >= 64 {
		return 0
	}
	return 1 << l.AddressBits
}

// NewLayout builds a Layout from untyped sizes, such as command-line flags.
// Zero keeps the default for that dimension.
func NewLayout(addressBits, busWidth uint) (Layout, error) {
	if addressBits > 64 {
		return Layout{}, &errcode.E{C: errcode.OutOfBounds, Op: "layout", Msg: "address bits " + conv.Uint(uint64(addressBits))}
	}
	w := Width(busWidth)
	if busWidth > 64 || (busWidth != 0 && !w.Valid()) {
		return Layout{}, &errcode.E{C: errcode.InvalidWidth, Op: "layout", Msg: "bus width " + conv.Uint(uint64(busWidth))}
	}
	return Layout{AddressBits: uint8(addressBits), BusWidth: w}, nil
}
