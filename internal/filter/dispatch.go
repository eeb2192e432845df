package filter

import (
	"fmt"
	"strings"

	errs "github.com/23skdu/colfilter/internal/errors"
	"github.com/23skdu/colfilter/internal/metrics"
	"github.com/kelseyhightower/envconfig"
	"github.com/klauspost/cpuid/v2"
)

// Kernel names a Primitive implementation.
type Kernel string

const (
	// KernelAuto picks a kernel from the detected CPU features.
	KernelAuto Kernel = "auto"
	// KernelUnrolled is the generated 256-arm switch.
	KernelUnrolled Kernel = "unrolled"
	// KernelBitScan iterates set bits with a trailing-zero count.
	KernelBitScan Kernel = "bitscan"
)

// CPUFeatures contains the CPU capabilities relevant to kernel selection
type CPUFeatures struct {
	Vendor    string
	HasPOPCNT bool
	HasBMI1   bool
	HasASIMD  bool
}

// Config holds kernel selection configuration
type Config struct {
	Kernel string `envconfig:"KERNEL" default:"auto"`
}

// Global dispatch state. Selected once at init and on explicit
// reconfiguration, never concurrently with Primitive.
var (
	features     CPUFeatures
	activeKernel Kernel
)

func init() {
	detectCPU()
	if err := configureFromEnv(); err != nil {
		selectKernel(KernelAuto)
	}
}

// configureFromEnv applies COLFILTER_KERNEL, leaving dispatch untouched when
// the variable cannot be parsed.
func configureFromEnv() error {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return err
	}
	return Configure(cfg)
}

// detectCPU records the CPU features used by KernelAuto.
func detectCPU() {
	features = CPUFeatures{
		Vendor:    cpuid.CPU.VendorString,
		HasPOPCNT: cpuid.CPU.Supports(cpuid.POPCNT),
		HasBMI1:   cpuid.CPU.Supports(cpuid.BMI1),
		HasASIMD:  cpuid.CPU.Supports(cpuid.ASIMD),
	}
}

// autoKernel prefers the bit-scan loop when trailing-zero counts compile to
// a single instruction (TZCNT on x86 with BMI1, RBIT+CLZ on arm64).
func autoKernel(f CPUFeatures) Kernel {
	switch {
	case f.HasBMI1 && f.HasPOPCNT:
		return KernelBitScan
	case f.HasASIMD:
		return KernelBitScan
	default:
		return KernelUnrolled
	}
}

func selectKernel(k Kernel) {
	if k == KernelAuto {
		k = autoKernel(features)
	}
	activeKernel = k
	metrics.KernelDispatchTotal.WithLabelValues(string(k)).Inc()
	if k == KernelBitScan {
		metrics.KernelActive.Set(1)
	} else {
		metrics.KernelActive.Set(0)
	}
}

// ParseKernel converts a configuration string to a Kernel.
func ParseKernel(s string) (Kernel, error) {
	switch k := Kernel(strings.ToLower(strings.TrimSpace(s))); k {
	case KernelAuto, KernelUnrolled, KernelBitScan:
		return k, nil
	case "":
		return KernelAuto, nil
	default:
		return "", errs.NewConfigurationError("parse_kernel", fmt.Sprintf("unknown kernel %q", s)).
			WithContext("kernel", s)
	}
}

// SetKernel switches the implementation used by Primitive. It must not be
// called while other goroutines are filtering.
func SetKernel(name string) error {
	k, err := ParseKernel(name)
	if err != nil {
		return err
	}
	selectKernel(k)
	return nil
}

// CurrentKernel returns the kernel Primitive dispatches to.
func CurrentKernel() Kernel {
	return activeKernel
}

// Features returns the detected CPU capabilities
func Features() CPUFeatures {
	return features
}

// ConfigFromEnv reads COLFILTER_* variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("COLFILTER", &cfg); err != nil {
		return Config{}, errs.WrapConfigurationError(err, "load", "reading COLFILTER environment")
	}
	return cfg, nil
}

// Configure applies cfg to the package dispatch state.
func Configure(cfg Config) error {
	return SetKernel(cfg.Kernel)
}
