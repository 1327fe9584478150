// Package pacgen renders peripheral descriptors as Go source: one validated
// reg.Peripheral and one periph.Type per peripheral, ready to Take.
package pacgen

import (
	"bytes"
	"go/format"
	"io"
	"strconv"
	"strings"
	"text/template"

	"litex-pac-go/errcode"
	"litex-pac-go/reg"
)

// Options describes the generated file.
type Options struct {
	Package string
	Tags    string // copied to a //go:build line when set
	Source  string // input file name, for the header
	Layout  reg.Layout
}

type fileData struct {
	Package     string
	Tags        string
	Source      string
	Layout      reg.Layout
	Peripherals []*reg.Peripheral
}

var funcs = template.FuncMap{
	"hex":    func(v uintptr) string { return "0x" + strings.ToUpper(strconv.FormatUint(uint64(v), 16)) },
	"hex64":  func(v uint64) string { return "0x" + strings.ToUpper(strconv.FormatUint(v, 16)) },
	"width":  widthName,
	"access": accessName,
	"ident":  ident,
	"quote":  strconv.Quote,
	"regs":   func(p *reg.Peripheral) []reg.Register { return p.Registers() },
}

const fileTemplateText = `// Code generated by pacgen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.
{{if .Tags}}
//go:build {{.Tags}}
{{end}}
package {{.Package}}

import (
	"litex-pac-go/mmio"
	"litex-pac-go/periph"
	"litex-pac-go/reg"
)

// Layout is the bus layout these descriptors were validated against.
var Layout = reg.Layout{AddressBits: {{.Layout.AddressBits}}, BusWidth: {{width .Layout.BusWidth}}}
{{range .Peripherals}}
// {{ident .Name}}Desc describes {{.Name}} at {{hex .Base}}.
var {{ident .Name}}Desc = reg.MustDescribe({{quote .Name}}, {{hex .Base}}, Layout,
{{- range regs .}}
	reg.Register{Name: {{quote .Name}}, Offset: {{hex .Offset}}, Width: {{width .Width}}, Access: {{access .Access}}
		{{- if .Reset}}, Reset: {{hex64 .Reset}}{{end}}
		{{- if .Description}}, Description: {{quote .Description}}{{end}}
		{{- if .Fields}}, Fields: []reg.Field{
		{{- range .Fields}}
		{Name: {{quote .Name}}, Offset: {{.Offset}}, Width: {{.Width}}, Access: {{access .Access}}},
		{{- end}}
	}{{end}}},
{{- end}}
)

// {{ident .Name}} is the {{.Name}} peripheral. Take it once.
var {{ident .Name}} = periph.Define({{ident .Name}}Desc, mmio.Default())
{{end}}`

var fileTemplate = template.Must(template.New("pac").Funcs(funcs).Parse(fileTemplateText))

// Generate writes a gofmt-formatted Go file for ps.
func Generate(w io.Writer, ps []*reg.Peripheral, opts Options) error {
	if opts.Package == "" {
		return errcode.New(errcode.InvalidConfig, "pacgen", "package name required")
	}
	if opts.Layout.AddressBits == 0 {
		opts.Layout.AddressBits = reg.DefaultLayout.AddressBits
	}
	if opts.Layout.BusWidth == 0 {
		opts.Layout.BusWidth = reg.DefaultLayout.BusWidth
	}
	seen := make(map[string]string, len(ps))
	for _, p := range ps {
		id := ident(p.Name())
		if prev, dup := seen[id]; dup {
			return errcode.New(errcode.Duplicate, "pacgen", p.Name()+" and "+prev+" map to "+id)
		}
		seen[id] = p.Name()
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, fileData{
		Package:     opts.Package,
		Tags:        opts.Tags,
		Source:      opts.Source,
		Layout:      opts.Layout,
		Peripherals: ps,
	})
	if err != nil {
		return &errcode.E{C: errcode.Error, Op: "pacgen", Msg: "template", Err: err}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return &errcode.E{C: errcode.Error, Op: "pacgen", Msg: "format", Err: err}
	}
	_, err = w.Write(src)
	return err
}

func widthName(w reg.Width) string {
	switch w {
	case reg.W8:
		return "reg.W8"
	case reg.W16:
		return "reg.W16"
	case reg.W32:
		return "reg.W32"
	case reg.W64:
		return "reg.W64"
	}
	return "reg.Width(" + strconv.Itoa(int(w)) + ")"
}

func accessName(a reg.Access) string {
	switch a {
	case reg.ReadOnly:
		return "reg.ReadOnly"
	case reg.WriteOnly:
		return "reg.WriteOnly"
	}
	return "reg.ReadWrite"
}

// ident keeps SVD names recognisable while making them valid exported Go
// identifiers: FEATHER_UART stays FEATHER_UART, "spi-flash" becomes SPI_FLASH.
func ident(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteString("P")
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 || b.String()[0] == '_' {
		return "P" + b.String()
	}
	return b.String()
}
