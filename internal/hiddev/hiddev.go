// Package hiddev provides access to raw HID report nodes. The caller
// supplies the device path; enumeration and matching are out of scope.
package hiddev

import "os"

// Identity is the identity a hidraw node reports about its device.
type Identity struct {
	Name    string
	Bustype uint32
	Vendor  uint16
	Product uint16
}

// Open opens a report source for reading: a hidraw node or a replay file.
func Open(path string) (*os.File, error) {
	return os.Open(path)
}

// OpenOutput opens a device node for writing output reports.
func OpenOutput(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY, 0)
}
