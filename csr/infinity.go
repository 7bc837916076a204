// Centralizes the "+Inf = largest finite value of T" convention so every
// distance-bearing kernel (cluster's Bellman-Ford, Lloyd, Floyd-Warshall)
// shares one definition instead of re-deriving math.MaxInt64 /
// math.MaxFloat64 locally.
package csr

import "math"

// Infinity returns the largest finite value representable by Val. It is
// explicitly NOT an IEEE infinity for floating-point Val; adding a finite
// edge weight to it must still be avoided by the caller.
//
// Val must be exactly int32, int64, float32 or float64; a named type
// defined over one of these (allowed by Value's ~ constraint) panics.
func Infinity[Val Value]() Val {
	var zero Val
	switch any(zero).(type) {
	case int32:
		return any(int32(math.MaxInt32)).(Val)
	case int64:
		return any(int64(math.MaxInt64)).(Val)
	case float32:
		return any(float32(math.MaxFloat32)).(Val)
	case float64:
		return any(float64(math.MaxFloat64)).(Val)
	default:
		panic("csr.Infinity: unsupported Value type")
	}
}
