// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

// Package main provides a diagnostic tool to print the dispatch state and
// the CPU features it was derived from.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/pulsedsp/go-pulse/pulse"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("pulse dispatch level: %s\n", pulse.CurrentLevel())
	fmt.Printf("pulse dispatch width: %d bytes\n", pulse.CurrentWidth())
	fmt.Printf("pulse dispatch name: %s\n", pulse.CurrentName())
	fmt.Printf("pulse float32 lanes: %d\n", pulse.MaxLanes[float32]())
	fmt.Printf("pulse int16 lanes: %d\n", pulse.MaxLanes[int16]())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
	fmt.Printf("  HasATOMICS:  %v (Large System Extensions)\n", cpu.ARM64.HasATOMICS)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
	fmt.Printf("  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
	fmt.Printf("  HasFMA:      %v\n", cpu.X86.HasFMA)
}
