// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sys/cpu"
)

// NewRunID returns a fresh identifier for one verification run.
func NewRunID() string {
	return uuid.NewString()
}

// HostHeader returns preamble lines identifying the run and the machine the
// verification ran on. Candidate results usually come from SIMD kernels, so
// the vector features the host advertises are listed as well.
func HostHeader(runID string) []string {
	features := SIMDFeatures()
	simd := "none detected"
	if len(features) > 0 {
		simd = strings.Join(features, " ")
	}
	return []string{
		"Run: " + runID,
		fmt.Sprintf("Host: %s/%s, %d CPUs", runtime.GOOS, runtime.GOARCH, runtime.NumCPU()),
		"SIMD: " + simd,
	}
}

// SIMDFeatures lists the vector extensions reported by golang.org/x/sys/cpu
// for the current architecture, in a fixed order.
func SIMDFeatures() []string {
	var flags []struct {
		name string
		on   bool
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		flags = []struct {
			name string
			on   bool
		}{
			{"sse2", cpu.X86.HasSSE2},
			{"sse4.1", cpu.X86.HasSSE41},
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
			{"avx512vnni", cpu.X86.HasAVX512VNNI},
		}
	case "arm64":
		flags = []struct {
			name string
			on   bool
		}{
			{"asimd", cpu.ARM64.HasASIMD},
			{"asimdhp", cpu.ARM64.HasASIMDHP},
			{"asimddp", cpu.ARM64.HasASIMDDP},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}
	var out []string
	for _, f := range flags {
		if f.on {
			out = append(out, f.name)
		}
	}
	return out
}
