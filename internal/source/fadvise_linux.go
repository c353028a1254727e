//go:build linux

package source

import (
	"os"

	"golang.org/x/sys/unix"
)

// fadviseSequential hints that the file will be read front to back so the
// kernel can read ahead aggressively. Failure is harmless.
func fadviseSequential(f *os.File) {
	_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
