//go:build !linux

package hiddev

import "os"

// Describe is only implemented for linux hidraw nodes.
func Describe(_ *os.File) (Identity, bool) {
	return Identity{}, false
}
