package hiddev

import (
	"os"

	"golang.org/x/sys/unix"
)

// Describe queries the hidraw identity ioctls on f. ok is false when f is
// not a hidraw node, e.g. a replay file.
func Describe(f *os.File) (Identity, bool) {
	fd := int(f.Fd())

	info, err := unix.IoctlHIDGetRawInfo(fd)
	if err != nil {
		return Identity{}, false
	}

	id := Identity{
		Bustype: uint32(info.Bustype),
		Vendor:  uint16(info.Vendor),
		Product: uint16(info.Product),
	}
	if name, err := unix.IoctlHIDGetRawName(fd); err == nil {
		id.Name = name
	}
	return id, true
}
