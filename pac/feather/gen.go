// Package feather is the peripheral access package for the FeatherSoC
// gateware on the OrangeCrab board.
package feather

//go:generate go run ../../cmd/pacgen -p feather -skip "IDENTIFIER_MEM" -o feather.go csr.svd
