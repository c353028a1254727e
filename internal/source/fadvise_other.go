//go:build !linux

package source

import "os"

func fadviseSequential(_ *os.File) {}
