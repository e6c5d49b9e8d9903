package device

import (
	"unsafe"

	"github.com/zeebo/errs"
	"golang.org/x/sys/unix"
)

// ErrUnavailable reports that the accelerator register window could not
// be reached. Callers recover by switching to the software path.
var ErrUnavailable = errs.Class("accelerator unavailable")

// Bus is a 32-bit register read/write capability over the accelerator's
// register window. Offsets are byte offsets from the window base.
type Bus interface {
	Read32(offset uint32) uint32
	Write32(offset uint32, value uint32)
}

// MMIO maps the accelerator's AXI register window from a memory device
// node (/dev/mem or a UIO node) into the process address space.
type MMIO struct {
	fd   int
	mem  []byte
	size uint32
}

// OpenMMIO opens the device node and maps size bytes at physical address
// base. Any failure is reported as ErrUnavailable.
func OpenMMIO(path string, base uint64, size uint32) (*MMIO, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return nil, ErrUnavailable.New("opening %s: %v", path, err)
	}

	mem, err := unix.Mmap(fd, int64(base), int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = unix.Close(fd)
		return nil, ErrUnavailable.New("mapping %s at 0x%08X: %v", path, base, err)
	}

	return &MMIO{fd: fd, mem: mem, size: size}, nil
}

// Read32 reads the 32-bit register at the given byte offset.
func (m *MMIO) Read32(offset uint32) uint32 {
	return *(*uint32)(unsafe.Pointer(&m.mem[offset]))
}

// Write32 writes the 32-bit register at the given byte offset.
func (m *MMIO) Write32(offset uint32, value uint32) {
	*(*uint32)(unsafe.Pointer(&m.mem[offset])) = value
}

// Close releases the mapping and the device node.
func (m *MMIO) Close() error {
	if m.mem != nil {
		_ = unix.Munmap(m.mem)
		m.mem = nil
	}
	if m.fd != 0 {
		_ = unix.Close(m.fd)
		m.fd = 0
	}
	return nil
}
