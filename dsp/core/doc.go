// Package core provides the scalar helpers shared by the kernels: absolute
// value, sign transfer, clamping and multiply-accumulate, generic over the
// float sample types.
package core
