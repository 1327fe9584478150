// Package reg describes the memory layout of peripherals: where each named
// register lives, how wide it is, and what software may do with it.
//
// Descriptors are built once, usually in package-level vars, and are
// immutable afterwards. Validation happens at construction; lookups never
// revalidate.
package reg

import (
	"litex-pac-go/errcode"
	"litex-pac-go/x/conv"
)

// Peripheral is the static description of one peripheral's register block.
type Peripheral struct {
	name  string
	base  uintptr
	regs  []Register
	index map[string]int
}

func (p *Peripheral) Name() string  { return p.name }
func (p *Peripheral) Base() uintptr { return p.base }
func (p *Peripheral) Len() int      { return len(p.regs) }

// At returns the i-th register in declaration order.
func (p *Peripheral) At(i int) Register { return p.regs[i] }

// Registers returns a copy of the register list in declaration order.
func (p *Peripheral) Registers() []Register {
	out := make([]Register, len(p.regs))
	copy(out, p.regs)
	return out
}

// Resolve looks up a register by name. A NotFound result means the caller
// used a name the descriptor never declared.
func (p *Peripheral) Resolve(name string) (Register, error) {
	if i, ok := p.index[name]; ok {
		return p.regs[i], nil
	}
	return Register{}, &errcode.E{C: errcode.NotFound, Op: "resolve", Msg: p.name + "." + name}
}

// Address is the absolute address of r inside this peripheral.
func (p *Peripheral) Address(r Register) uintptr { return p.base + r.Offset }

// Describe validates and builds a descriptor.
func Describe(name string, base uintptr, l Layout, regs ...Register) (*Peripheral, error) {
	l = l.orDefault()
	if !l.BusWidth.Valid() {
		return nil, describeErr(errcode.InvalidWidth, name, "bus width "+conv.Uint(uint64(l.BusWidth)))
	}
	if uint64(base)%uint64(l.BusWidth.Bytes()) != 0 {
		return nil, describeErr(errcode.Misaligned, name, "base "+conv.Hex(uint64(base)))
	}

	p := &Peripheral{
		name:  name,
		base:  base,
		regs:  make([]Register, len(regs)),
		index: make(map[string]int, len(regs)),
	}
	limit := l.limit()

	for i, r := range regs {
		where := name + "." + r.Name
		if !r.Width.Valid() || r.Width > l.BusWidth {
			return nil, describeErr(errcode.InvalidWidth, where, "width "+conv.Uint(uint64(r.Width)))
		}
		if r.Access > WriteOnly {
			return nil, describeErr(errcode.InvalidConfig, where, "access "+r.Access.String())
		}
		if r.Offset%r.Width.Bytes() != 0 {
			return nil, describeErr(errcode.Misaligned, where, "offset "+conv.Hex(uint64(r.Offset)))
		}
		if !inBounds(base, r, limit) {
			return nil, describeErr(errcode.OutOfBounds, where, "offset "+conv.Hex(uint64(r.Offset)))
		}
		if _, dup := p.index[r.Name]; dup {
			return nil, describeErr(errcode.Duplicate, where, "register name")
		}
		for _, prev := range p.regs[:i] {
			if r.Offset < prev.end() && prev.Offset < r.end() {
				return nil, describeErr(errcode.Overlap, where, "overlaps "+prev.Name)
			}
		}
		fields, err := checkFields(where, r)
		if err != nil {
			return nil, err
		}

		r.Fields = fields
		p.regs[i] = r
		p.index[r.Name] = i
	}
	return p, nil
}

// inBounds reports whether base+offset+bytes stays inside the address space
// without wrapping in either uint64 or uintptr.
func inBounds(base uintptr, r Register, limit uint64) bool {
	rel := uint64(r.Offset) + uint64(r.Width.Bytes())
	if rel < uint64(r.Offset) {
		return false
	}
	end := uint64(base) + rel
	if end < rel {
		return false
	}
	if limit != 0 && end > limit {
		return false
	}
	last := end - 1
	return uint64(uintptr(last)) == last
}

// MustDescribe is Describe for package-level declarations; a bad layout is a
// programming error and panics.
func MustDescribe(name string, base uintptr, l Layout, regs ...Register) *Peripheral {
	p, err := Describe(name, base, l, regs...)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// checkFields returns a private copy of r's fields with each field's access
// narrowed to what the register permits.
func checkFields(where string, r Register) ([]Field, error) {
	if len(r.Fields) == 0 {
		return nil, nil
	}
	out := make([]Field, len(r.Fields))
	var seen uint64
	for i, f := range r.Fields {
		fw := where + "." + f.Name
		if f.Width == 0 || uint(f.Offset)+uint(f.Width) > uint(r.Width) {
			return nil, describeErr(errcode.OutOfBounds, fw, "bits "+conv.Uint(uint64(f.Offset))+"+"+conv.Uint(uint64(f.Width)))
		}
		for _, g := range r.Fields[:i] {
			if g.Name == f.Name {
				return nil, describeErr(errcode.Duplicate, fw, "field name")
			}
		}
		if seen&f.Mask() != 0 {
			return nil, describeErr(errcode.Overlap, fw, "field bits")
		}
		seen |= f.Mask()
		a, ok := r.Access.Intersect(f.Access)
		if !ok {
			return nil, describeErr(errcode.InvalidConfig, fw, "field is "+f.Access.String()+" in "+r.Access.String()+" register")
		}
		f.Access = a
		out[i] = f
	}
	return out, nil
}

func describeErr(c errcode.Code, where, msg string) error {
	return &errcode.E{C: c, Op: "describe", Msg: where + ": " + msg}
}

// Span returns the address range [lo, hi) covered by the registers. An empty
// descriptor has lo == hi.
func (p *Peripheral) Span() (lo, hi uintptr) {
	if len(p.regs) == 0 {
		return p.base, p.base
	}
	lo, hi = p.regs[0].Offset, p.regs[0].end()
	for _, r := range p.regs[1:] {
		if r.Offset < lo {
			lo = r.Offset
		}
		if e := r.end(); e > hi {
			hi = e
		}
	}
	return p.base + lo, p.base + hi
}
