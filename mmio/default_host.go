//go:build !baremetal

package mmio

var hostMem = NewSim()

// Default returns a process-wide Sim on host builds, so generated peripheral
// definitions can be exercised without hardware.
func Default() Memory { return hostMem }

// HostSim exposes the Sim returned by Default for inspection in tests and
// host tools.
func HostSim() *Sim { return hostMem }
