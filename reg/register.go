package reg

import (
	"litex-pac-go/errcode"
	"litex-pac-go/x/mathx"
)

// Field is a bit range inside a register.
type Field struct {
	Name   string
	Offset uint8 // lowest bit
	Width  uint8 // bits
	Access Access
}

// Mask is the field mask in register position.
func (f Field) Mask() uint64 { return mathx.Mask[uint64](f.Width) << f.Offset }

// Fits reports whether v fits the field width.
func (f Field) Fits(v uint64) bool { return mathx.Fits(v, f.Width) }

// Register describes one memory-mapped register.
type Register struct {
	Name        string
	Offset      uintptr // bytes from the peripheral base
	Width       Width
	Access      Access
	Reset       uint64
	Fields      []Field
	Description string
}

// Field looks up a field by name.
func (r Register) Field(name string) (Field, error) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, &errcode.E{C: errcode.NotFound, Op: "field", Msg: r.Name + "." + name}
}

// end is the first byte offset past the register.
func (r Register) end() uintptr { return r.Offset + r.Width.Bytes() }
