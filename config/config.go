// Package config loads board descriptions from embedded JSON and turns them
// into validated peripheral descriptors at run time, for boards that have no
// generated access package.
package config

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"litex-pac-go/errcode"
	"litex-pac-go/reg"
)

// EmbeddedConfigLookup allows overriding how board configs are resolved.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedConfigs[board]
	return b, ok
}

// Board is one board description.
type Board struct {
	Name        string       `json:"name"`
	AddressBits uint8        `json:"address_bits,omitempty"`
	BusWidth    uint8        `json:"bus_width,omitempty"`
	Peripherals []Peripheral `json:"peripherals"`
}

type Peripheral struct {
	Name      string     `json:"name"`
	Base      Hex        `json:"base"`
	Registers []Register `json:"registers"`
}

type Register struct {
	Name        string  `json:"name"`
	Offset      Hex     `json:"offset"`
	Width       uint8   `json:"width,omitempty"` // bits; 0 means bus width
	Access      string  `json:"access,omitempty"`
	Reset       Hex     `json:"reset,omitempty"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
}

type Field struct {
	Name   string `json:"name"`
	Offset uint8  `json:"offset"`
	Width  uint8  `json:"width"`
	Access string `json:"access,omitempty"`
}

// Hex is a number written either as a JSON number or as a string with an
// optional 0x prefix.
type Hex uint64

func (h *Hex) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		var err error
		if s, err = strconv.Unquote(s); err != nil {
			return err
		}
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return err
	}
	*h = Hex(v)
	return nil
}

// Load resolves and decodes the named board. Unknown keys are rejected.
func Load(board string) (Board, error) {
	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return Board{}, errcode.New(errcode.NotFound, "config", "no embedded config for board: "+board)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var b Board
	if err := dec.Decode(&b); err != nil {
		return Board{}, &errcode.E{C: errcode.InvalidConfig, Op: "config", Msg: board, Err: err}
	}
	if b.Name == "" {
		b.Name = board
	}
	return b, nil
}

// Layout returns the board's bus layout, with zero values left for
// reg.Describe to default.
func (b Board) Layout() reg.Layout {
	return reg.Layout{AddressBits: b.AddressBits, BusWidth: reg.Width(b.BusWidth)}
}

// Describe validates every peripheral on the board. The first failure is
// returned and no descriptors are produced.
func (b Board) Describe() ([]*reg.Peripheral, error) {
	l := b.Layout()
	bus := l.BusWidth
	if bus == 0 {
		bus = reg.DefaultLayout.BusWidth
	}
	out := make([]*reg.Peripheral, 0, len(b.Peripherals))
	for _, p := range b.Peripherals {
		regs := make([]reg.Register, 0, len(p.Registers))
		for _, r := range p.Registers {
			rr, err := r.convert(p.Name, bus)
			if err != nil {
				return nil, err
			}
			regs = append(regs, rr)
		}
		d, err := reg.Describe(p.Name, uintptr(p.Base), l, regs...)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Peripheral returns the named peripheral description.
func (b Board) Peripheral(name string) (Peripheral, bool) {
	for _, p := range b.Peripherals {
		if p.Name == name {
			return p, true
		}
	}
	return Peripheral{}, false
}

func (r Register) convert(periph string, bus reg.Width) (reg.Register, error) {
	where := periph + "." + r.Name
	access, err := parseAccess(where, r.Access)
	if err != nil {
		return reg.Register{}, err
	}
	w := reg.Width(r.Width)
	if w == 0 {
		w = bus
	}
	out := reg.Register{
		Name:        r.Name,
		Offset:      uintptr(r.Offset),
		Width:       w,
		Access:      access,
		Reset:       uint64(r.Reset),
		Description: r.Description,
	}
	for _, f := range r.Fields {
		fa := access
		if f.Access != "" {
			if fa, err = parseAccess(where+"."+f.Name, f.Access); err != nil {
				return reg.Register{}, err
			}
		}
		out.Fields = append(out.Fields, reg.Field{Name: f.Name, Offset: f.Offset, Width: f.Width, Access: fa})
	}
	return out, nil
}

func parseAccess(where, s string) (reg.Access, error) {
	if s == "" {
		return reg.ReadWrite, nil
	}
	a, ok := reg.ParseAccess(s)
	if !ok {
		return 0, errcode.New(errcode.InvalidConfig, "config", where+": access "+s)
	}
	return a, nil
}
