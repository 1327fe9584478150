// Command pacgen turns a LiteX csr.svd into a Go peripheral access package.
//
//	pacgen -p feather -skip "IDENTIFIER_MEM" -o feather.go csr.svd
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/google/shlex"

	"litex-pac-go/pacgen"
	"litex-pac-go/reg"
	"litex-pac-go/svd"
)

var (
	outfile  = flag.String("o", "", "output filename (stdout when empty)")
	pkg      = flag.String("p", "", "package to emit generated code into")
	outtags  = flag.String("b", "", "build constraint for the output (copied verbatim)")
	skip     = flag.String("skip", "", "shell-quoted list of peripherals to leave out")
	addrBits = flag.Uint("addr-bits", 0, "address space bits (default 32)")
	busWidth = flag.Uint("bus-width", 0, "bus width in bits (default: the SVD <width>)")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pacgen: ")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: pacgen -p <pkg> [-o <file>] [-b <tags>] [-skip <names>] <csr.svd>")
	}
	in := flag.Arg(0)

	skipList, err := shlex.Split(*skip)
	if err != nil {
		log.Fatalf("bad -skip list: %v", err)
	}
	name := *pkg
	if name == "" && *outfile != "" {
		name = filepath.Base(filepath.Dir(mustAbs(*outfile)))
	}

	layout, err := reg.NewLayout(*addrBits, *busWidth)
	if err != nil {
		log.Fatalf("bad -addr-bits/-bus-width: %v", err)
	}

	fp, err := os.Open(in)
	if err != nil {
		log.Fatal(err)
	}
	defer fp.Close()

	dev, err := svd.Parse(fp, svd.Options{
		Layout: layout,
		Skip:   skipList,
	})
	if err != nil {
		log.Fatalf("%s: %v", in, err)
	}

	var buf bytes.Buffer
	err = pacgen.Generate(&buf, dev.Peripherals, pacgen.Options{
		Package: name,
		Tags:    *outtags,
		Source:  filepath.Base(in),
		Layout:  dev.Layout,
	})
	if err != nil {
		log.Fatal(err)
	}

	if *outfile == "" {
		_, err = os.Stdout.Write(buf.Bytes())
	} else {
		err = os.WriteFile(*outfile, buf.Bytes(), 0o644)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s: %d peripherals -> %s", dev.Name, len(dev.Peripherals), orStdout(*outfile))
}

func mustAbs(p string) string {
	a, err := filepath.Abs(p)
	if err != nil {
		log.Fatal(err)
	}
	return a
}

func orStdout(s string) string {
	if s == "" {
		return "stdout"
	}
	return s
}
