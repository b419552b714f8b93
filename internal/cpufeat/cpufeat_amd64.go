//go:build amd64

package cpufeat

import "golang.org/x/sys/cpu"

func init() {
	hasAVX512F = cpu.X86.HasAVX512F
	hasAVX2 = cpu.X86.HasAVX2
	hasAES = cpu.X86.HasAES
}
