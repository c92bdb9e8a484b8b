package utils

import (
	"fmt"
	"math"
	"runtime"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

func IsNan(A any) bool {
	switch v := A.(type) {
	case float64:
		return math.IsNaN(v)
	case []float64:
		for _, f := range v {
			if math.IsNaN(f) {
				return true
			}
		}
	case [4]float64:
		for _, f := range v {
			if math.IsNaN(f) {
				return true
			}
		}
	}
	return false
}

// IsFinite is false for NaN and +/-Inf
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
