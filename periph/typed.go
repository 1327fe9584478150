package periph

import (
	"golang.org/x/exp/constraints"

	"litex-pac-go/errcode"
	"litex-pac-go/reg"
	"litex-pac-go/x/conv"
	"litex-pac-go/x/mathx"
)

// Typed is a register accessor whose Go type matches the register width, so
// a write can never be out of range.
type Typed[T constraints.Unsigned] struct {
	h *Handle
	r reg.Register
}

// Bind resolves name and checks that T is exactly as wide as the register.
func Bind[T constraints.Unsigned](h *Handle, name string) (Typed[T], error) {
	r, err := h.t.desc.Resolve(name)
	if err != nil {
		return Typed[T]{}, err
	}
	if n := mathx.BitSize[T](); n != int(r.Width) {
		return Typed[T]{}, &errcode.E{
			C:   errcode.InvalidWidth,
			Op:  "bind",
			Msg: h.t.desc.Name() + "." + r.Name + " is " + conv.Uint(uint64(r.Width)) + " bits, not " + conv.Uint(uint64(n)),
		}
	}
	return Typed[T]{h: h, r: r}, nil
}

func (x Typed[T]) Read() (T, error) {
	v, err := x.h.read(x.r)
	return T(v), err
}

func (x Typed[T]) Write(v T) error {
	if !x.r.Access.CanWrite() {
		return x.h.accessErr("write", x.r.Name)
	}
	x.h.t.mem.Store(x.h.t.desc.Address(x.r), x.r.Width, uint64(v))
	return nil
}
