// Package svd reads CMSIS-SVD device descriptions, as written by LiteX for
// its CSR map, and turns each peripheral into a validated reg.Peripheral.
package svd

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"litex-pac-go/errcode"
	"litex-pac-go/reg"
	"litex-pac-go/x/conv"
)

// Options controls the conversion.
type Options struct {
	// Layout overrides the bus layout. A zero BusWidth takes the device's
	// <width>; a zero AddressBits takes reg.DefaultLayout.
	Layout reg.Layout
	// Skip lists peripheral names to leave out.
	Skip []string
}

// Device is the converted SVD document.
type Device struct {
	Name        string
	Layout      reg.Layout
	Peripherals []*reg.Peripheral
}

// Peripheral returns the named peripheral, or nil.
func (d *Device) Peripheral(name string) *reg.Peripheral {
	for _, p := range d.Peripherals {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// Register properties inherited device -> peripheral -> register.
type props struct {
	Size       string `xml:"size"`
	Access     string `xml:"access"`
	ResetValue string `xml:"resetValue"`
}

func (p props) over(parent props) props {
	if p.Size == "" {
		p.Size = parent.Size
	}
	if p.Access == "" {
		p.Access = parent.Access
	}
	if p.ResetValue == "" {
		p.ResetValue = parent.ResetValue
	}
	return p
}

type xDevice struct {
	Name  string `xml:"name"`
	Width string `xml:"width"`
	props
	Peripherals []xPeripheral `xml:"peripherals>peripheral"`
}

type xPeripheral struct {
	DerivedFrom string `xml:"derivedFrom,attr"`
	Name        string `xml:"name"`
	BaseAddress string `xml:"baseAddress"`
	props
	Registers []xRegister `xml:"registers>register"`
}

type xRegister struct {
	Name          string `xml:"name"`
	Description   string `xml:"description"`
	AddressOffset string `xml:"addressOffset"`
	props
	Fields []xField `xml:"fields>field"`
}

type xField struct {
	Name      string `xml:"name"`
	BitOffset string `xml:"bitOffset"`
	BitWidth  string `xml:"bitWidth"`
	Lsb       string `xml:"lsb"`
	Msb       string `xml:"msb"`
	BitRange  string `xml:"bitRange"`
	Access    string `xml:"access"`
}

// Parse decodes an SVD document.
func Parse(r io.Reader, opts Options) (*Device, error) {
	var xd xDevice
	if err := xml.NewDecoder(r).Decode(&xd); err != nil {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "svd", Msg: "decode", Err: err}
	}

	l := opts.Layout
	if l.BusWidth == 0 && xd.Width != "" {
		w, err := parseNum(xd.Width)
		if err != nil {
			return nil, svdErr("device width", err)
		}
		if w > 64 || !reg.Width(w).Valid() {
			return nil, svdErr("device width "+xd.Width, nil)
		}
		l.BusWidth = reg.Width(w)
	}
	if l.AddressBits == 0 {
		l.AddressBits = reg.DefaultLayout.AddressBits
	}
	if l.BusWidth == 0 {
		l.BusWidth = reg.DefaultLayout.BusWidth
	}

	byName := make(map[string]*xPeripheral, len(xd.Peripherals))
	for i := range xd.Peripherals {
		byName[xd.Peripherals[i].Name] = &xd.Peripherals[i]
	}

	dev := &Device{Name: xd.Name, Layout: l}
	for i := range xd.Peripherals {
		xp := xd.Peripherals[i]
		if skipped(opts.Skip, xp.Name) {
			continue
		}
		if xp.DerivedFrom != "" {
			base, ok := byName[xp.DerivedFrom]
			if !ok || base.DerivedFrom != "" {
				return nil, svdErr(xp.Name+": derivedFrom "+xp.DerivedFrom, nil)
			}
			if len(xp.Registers) == 0 {
				xp.Registers = base.Registers
			}
			xp.props = xp.props.over(base.props)
		}
		p, err := convertPeripheral(xp, xd.props, l)
		if err != nil {
			return nil, err
		}
		dev.Peripherals = append(dev.Peripherals, p)
	}
	return dev, nil
}

func convertPeripheral(xp xPeripheral, dp props, l reg.Layout) (*reg.Peripheral, error) {
	base, err := parseNum(xp.BaseAddress)
	if err != nil {
		return nil, svdErr(xp.Name+": baseAddress", err)
	}
	if uint64(uintptr(base)) != base {
		return nil, svdErr(xp.Name+": baseAddress "+xp.BaseAddress+" exceeds uintptr", nil)
	}
	pp := xp.props.over(dp)

	regs := make([]reg.Register, 0, len(xp.Registers))
	for _, xr := range xp.Registers {
		where := xp.Name + "." + xr.Name
		rp := xr.props.over(pp)

		off, err := parseNum(xr.AddressOffset)
		if err != nil {
			return nil, svdErr(where+": addressOffset", err)
		}
		if uint64(uintptr(off)) != off {
			return nil, svdErr(where+": addressOffset "+xr.AddressOffset+" exceeds uintptr", nil)
		}
		size, err := parseNum(rp.Size)
		if err != nil {
			return nil, svdErr(where+": size", err)
		}
		if size > 64 {
			return nil, svdErr(where+": size "+rp.Size, nil)
		}
		width := reg.Width(size)
		access := reg.ReadWrite
		if rp.Access != "" {
			a, ok := reg.ParseAccess(rp.Access)
			if !ok {
				return nil, svdErr(where+": access "+rp.Access, nil)
			}
			access = a
		}
		var reset uint64
		if rp.ResetValue != "" {
			if reset, err = parseNum(rp.ResetValue); err != nil {
				return nil, svdErr(where+": resetValue", err)
			}
			if width.Valid() && !width.Fits(reset) {
				return nil, svdErr(where+": resetValue "+rp.ResetValue+" wider than register", nil)
			}
		}
		fields, err := convertFields(where, xr.Fields, access)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg.Register{
			Name:        xr.Name,
			Offset:      uintptr(off),
			Width:       width,
			Access:      access,
			Reset:       reset,
			Fields:      fields,
			Description: strings.Join(strings.Fields(xr.Description), " "),
		})
	}
	return reg.Describe(xp.Name, uintptr(base), l, regs...)
}

func convertFields(where string, xfs []xField, regAccess reg.Access) ([]reg.Field, error) {
	if len(xfs) == 0 {
		return nil, nil
	}
	out := make([]reg.Field, 0, len(xfs))
	for _, xf := range xfs {
		fw := where + "." + xf.Name
		off, width, err := bitPosition(xf)
		if err != nil {
			return nil, svdErr(fw, err)
		}
		if off >= 64 || width > 64-off {
			return nil, svdErr(fw+": bits "+conv.Uint(off)+"+"+conv.Uint(width)+" past 64", nil)
		}
		access := regAccess
		if xf.Access != "" {
			a, ok := reg.ParseAccess(xf.Access)
			if !ok {
				return nil, svdErr(fw+": access "+xf.Access, nil)
			}
			access = a
		}
		out = append(out, reg.Field{Name: xf.Name, Offset: uint8(off), Width: uint8(width), Access: access})
	}
	return out, nil
}

// bitPosition accepts the three SVD spellings of a field position.
func bitPosition(xf xField) (off, width uint64, err error) {
	switch {
	case xf.BitOffset != "" || xf.BitWidth != "":
		if off, err = parseNum(xf.BitOffset); err != nil {
			return
		}
		width = 1
		if xf.BitWidth != "" {
			width, err = parseNum(xf.BitWidth)
		}
		return
	case xf.Lsb != "" && xf.Msb != "":
		var msb uint64
		if off, err = parseNum(xf.Lsb); err != nil {
			return
		}
		if msb, err = parseNum(xf.Msb); err != nil {
			return
		}
		return off, msb - off + 1, checkOrder(off, msb)
	case xf.BitRange != "":
		s := strings.TrimSpace(xf.BitRange)
		if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
			return 0, 0, errcode.New(errcode.InvalidConfig, "svd", "bitRange "+xf.BitRange)
		}
		msbs, lsbs, ok := strings.Cut(s[1:len(s)-1], ":")
		if !ok {
			return 0, 0, errcode.New(errcode.InvalidConfig, "svd", "bitRange "+xf.BitRange)
		}
		var msb uint64
		if msb, err = parseNum(msbs); err != nil {
			return
		}
		if off, err = parseNum(lsbs); err != nil {
			return
		}
		return off, msb - off + 1, checkOrder(off, msb)
	}
	return 0, 0, errcode.New(errcode.InvalidConfig, "svd", "field has no bit position")
}

func checkOrder(lsb, msb uint64) error {
	if msb < lsb {
		return errcode.New(errcode.InvalidConfig, "svd", "msb below lsb")
	}
	return nil
}

// parseNum reads SVD scaledNonNegativeInteger values: decimal, 0x hex, or
// #binary.
func parseNum(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errcode.New(errcode.InvalidConfig, "svd", "missing number")
	}
	if strings.HasPrefix(s, "#") {
		return strconv.ParseUint(s[1:], 2, 64)
	}
	if strings.HasPrefix(s, "0X") {
		s = "0x" + s[2:]
	}
	return strconv.ParseUint(s, 0, 64)
}

func skipped(list []string, name string) bool {
	for _, s := range list {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

func svdErr(msg string, cause error) error {
	return &errcode.E{C: errcode.InvalidConfig, Op: "svd", Msg: msg, Err: cause}
}
