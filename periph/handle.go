package periph

import (
	"litex-pac-go/errcode"
	"litex-pac-go/reg"
	"litex-pac-go/x/conv"
	"litex-pac-go/x/mathx"
)

// Handle is the proof of exclusive ownership of one peripheral. It is the
// only path by which register accesses reach the peripheral's memory.
type Handle struct {
	t *Type
}

// FieldValue names a field and the value to place in it.
type FieldValue struct {
	Name  string
	Value uint64
}

// F is shorthand for FieldValue{name, v}.
func F(name string, v uint64) FieldValue { return FieldValue{Name: name, Value: v} }

func (h *Handle) Name() string                { return h.t.desc.Name() }
func (h *Handle) Descriptor() *reg.Peripheral { return h.t.desc }

// Write stores v into the named register.
func (h *Handle) Write(name string, v uint64) error {
	r, err := h.t.desc.Resolve(name)
	if err != nil {
		return err
	}
	return h.write(r, v)
}

// WriteInt is Write for signed callers; negative values never fit.
func (h *Handle) WriteInt(name string, v int64) error {
	r, err := h.t.desc.Resolve(name)
	if err != nil {
		return err
	}
	if v < 0 {
		return h.rangeErr("write", r.Name, r.Width)
	}
	return h.write(r, uint64(v))
}

// Read loads the named register, widened to uint64.
func (h *Handle) Read(name string) (uint64, error) {
	r, err := h.t.desc.Resolve(name)
	if err != nil {
		return 0, err
	}
	return h.read(r)
}

// WriteFields stores a whole register assembled from fields. Fields not
// listed are written as zero.
func (h *Handle) WriteFields(name string, fields ...FieldValue) error {
	r, err := h.t.desc.Resolve(name)
	if err != nil {
		return err
	}
	if !r.Access.CanWrite() {
		return h.accessErr("write", r.Name)
	}
	v, err := h.assemble(r, 0, fields)
	if err != nil {
		return err
	}
	h.t.mem.Store(h.t.desc.Address(r), r.Width, v)
	return nil
}

// Modify rewrites the listed fields and preserves the rest of the register.
// The register must be read-write.
func (h *Handle) Modify(name string, fields ...FieldValue) error {
	r, err := h.t.desc.Resolve(name)
	if err != nil {
		return err
	}
	if r.Access != reg.ReadWrite {
		return h.accessErr("modify", r.Name)
	}
	// Validate before touching memory.
	if _, err := h.assemble(r, 0, fields); err != nil {
		return err
	}
	addr := h.t.desc.Address(r)
	cur := h.t.mem.Load(addr, r.Width)
	v, _ := h.assemble(r, cur, fields)
	h.t.mem.Store(addr, r.Width, v)
	return nil
}

// ReadField loads the register and extracts one field.
func (h *Handle) ReadField(name, field string) (uint64, error) {
	r, err := h.t.desc.Resolve(name)
	if err != nil {
		return 0, err
	}
	f, err := r.Field(field)
	if err != nil {
		return 0, err
	}
	if !f.Access.CanRead() {
		return 0, h.accessErr("read", r.Name+"."+f.Name)
	}
	v, err := h.read(r)
	if err != nil {
		return 0, err
	}
	return mathx.Extract(v, f.Offset, f.Width), nil
}

// Reset writes the register's declared reset value.
func (h *Handle) Reset(name string) error {
	r, err := h.t.desc.Resolve(name)
	if err != nil {
		return err
	}
	return h.write(r, r.Reset)
}

// Register resolves name once and returns an accessor that skips the lookup
// on every later access.
func (h *Handle) Register(name string) (Reg, error) {
	r, err := h.t.desc.Resolve(name)
	if err != nil {
		return Reg{}, err
	}
	return Reg{h: h, r: r}, nil
}

func (h *Handle) write(r reg.Register, v uint64) error {
	if !r.Access.CanWrite() {
		return h.accessErr("write", r.Name)
	}
	if !r.Width.Fits(v) {
		return h.rangeErr("write", r.Name, r.Width)
	}
	h.t.mem.Store(h.t.desc.Address(r), r.Width, v)
	return nil
}

func (h *Handle) read(r reg.Register) (uint64, error) {
	if !r.Access.CanRead() {
		return 0, h.accessErr("read", r.Name)
	}
	return h.t.mem.Load(h.t.desc.Address(r), r.Width), nil
}

// assemble merges field values into base after checking each one.
func (h *Handle) assemble(r reg.Register, base uint64, fields []FieldValue) (uint64, error) {
	v := base
	for _, fv := range fields {
		f, err := r.Field(fv.Name)
		if err != nil {
			return 0, err
		}
		if !f.Access.CanWrite() {
			return 0, h.accessErr("write", r.Name+"."+f.Name)
		}
		if !f.Fits(fv.Value) {
			return 0, h.rangeErr("write", r.Name+"."+f.Name, reg.Width(f.Width))
		}
		v = mathx.Insert(v, f.Offset, f.Width, fv.Value)
	}
	return v, nil
}

func (h *Handle) accessErr(op, what string) error {
	return &errcode.E{C: errcode.AccessDenied, Op: op, Msg: h.t.desc.Name() + "." + what}
}

func (h *Handle) rangeErr(op, what string, bits reg.Width) error {
	return &errcode.E{C: errcode.ValueOutOfRange, Op: op, Msg: h.t.desc.Name() + "." + what + " is " + conv.Uint(uint64(bits)) + " bits"}
}

// Reg is a pre-resolved register of a handle.
type Reg struct {
	h *Handle
	r reg.Register
}

func (x Reg) Descriptor() reg.Register { return x.r }
func (x Reg) Read() (uint64, error)    { return x.h.read(x.r) }
func (x Reg) Write(v uint64) error     { return x.h.write(x.r, v) }
func (x Reg) Address() uintptr         { return x.h.t.desc.Address(x.r) }
