// Package sysmon describes the machine a benchmark ran on and samples
// system-wide CPU and memory usage.
package sysmon

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// Unknown is reported for any property that could not be determined.
const Unknown = "failed to determine"

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Spec is one labeled property of the system.
type Spec struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Describe returns the system properties recorded next to benchmark
// results, in a fixed order. Properties that cannot be read are reported
// as Unknown rather than failing the whole description.
func Describe() []Spec {
	getters := []struct {
		label string
		get   func() (string, error)
	}{
		{"OS", func() (string, error) { return runtime.GOOS + "/" + runtime.GOARCH, nil }},
		{"Distribution", distribution},
		{"Kernel", kernel},
		{"CPU", cpuModel},
		{"Number of cores", cpuCores},
		{"Cache size", cpuCache},
		{"CPU features", func() (string, error) { return cpuFeatures(), nil }},
		{"Memory", memoryTotal},
		{"Go", func() (string, error) { return runtime.Version(), nil }},
	}

	specs := make([]Spec, 0, len(getters))
	for _, g := range getters {
		v, err := g.get()
		if err != nil || v == "" {
			v = Unknown
		}
		specs = append(specs, Spec{Label: g.label, Value: v})
	}
	return specs
}

func distribution() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(info.Platform + " " + info.PlatformVersion), nil
}

func kernel() (string, error) {
	return host.KernelVersion()
}

func cpuModel() (string, error) {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		return "", err
	}
	return infos[0].ModelName, nil
}

func cpuCores() (string, error) {
	physical, err := cpu.Counts(false)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d physical, %d logical", physical, runtime.NumCPU()), nil
}

func cpuCache() (string, error) {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 || infos[0].CacheSize == 0 {
		return "", err
	}
	return fmt.Sprintf("%d KB", infos[0].CacheSize), nil
}

func memoryTotal() (string, error) {
	vmem, err := mem.VirtualMemory()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.1f MB", float64(vmem.Total)/(1024*1024)), nil
}

// cpuFeatures lists the SIMD extensions relevant to integer throughput.
func cpuFeatures() string {
	var features []string
	switch runtime.GOARCH {
	case "amd64", "386":
		flags := []struct {
			name string
			has  bool
		}{
			{"sse4.2", xcpu.X86.HasSSE42},
			{"avx", xcpu.X86.HasAVX},
			{"avx2", xcpu.X86.HasAVX2},
			{"bmi2", xcpu.X86.HasBMI2},
			{"avx512f", xcpu.X86.HasAVX512F},
		}
		for _, f := range flags {
			if f.has {
				features = append(features, f.name)
			}
		}
	case "arm64":
		if xcpu.ARM64.HasASIMD {
			features = append(features, "asimd")
		}
		if xcpu.ARM64.HasSVE {
			features = append(features, "sve")
		}
	}
	if len(features) == 0 {
		return "none detected"
	}
	return strings.Join(features, " ")
}
