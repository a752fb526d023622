//go:build !amd64 && !arm64

package coremark

func init() {
	cpuName = "generic"
}
