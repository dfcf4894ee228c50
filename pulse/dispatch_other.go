//go:build !amd64 && !arm64

package pulse

func init() {
	// Other architectures run the scalar reference paths.
	// riscv64 with the vector extension is the natural next target.
	setScalarMode()
}
