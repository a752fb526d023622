//go:build arm64

package coremark

import "golang.org/x/sys/cpu"

func init() {
	flags := []struct {
		name string
		ok   bool
	}{
		{"asimd", cpu.ARM64.HasASIMD},
		{"crc32", cpu.ARM64.HasCRC32},
		{"atomics", cpu.ARM64.HasATOMICS},
		{"sve", cpu.ARM64.HasSVE},
		{"sve2", cpu.ARM64.HasSVE2},
	}
	for _, f := range flags {
		if f.ok {
			cpuFeatures = append(cpuFeatures, f.name)
		}
	}

	// ASIMD is part of the ARMv8-A base architecture.
	cpuName = "neon"
	if cpu.ARM64.HasSVE {
		cpuName = "sve"
	}
}
