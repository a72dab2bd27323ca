//go:build !windows

package device

// WebGPU bindings are only built for windows.
func probeWebGPU() bool {
	return false
}
