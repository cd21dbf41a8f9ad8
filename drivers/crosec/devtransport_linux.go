//go:build linux

package crosec

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DevPathDefault is the character device the kernel's cros_ec driver
// exposes.
const DevPathDefault = "/dev/cros_ec"

// struct cros_ec_command_v2 header: version, command, outsize, insize,
// result — five u32 fields, payload follows.
const devHeaderSize = 20

// CROS_EC_DEV_IOCXCMD_V2: _IOWR(0xEC, 0, struct cros_ec_command_v2).
const devIocXcmd = (3 << 30) | (devHeaderSize << 16) | (0xEC << 8)

// DevTransport issues host commands through the kernel's cros_ec
// character device. The kernel owns packet framing and checksums; this
// transport only lays out the ioctl argument.
type DevTransport struct {
	mu sync.Mutex
	f  *os.File
}

// OpenDevTransport opens the EC character device. path "" selects
// DevPathDefault.
func OpenDevTransport(path string) (*DevTransport, error) {
	if path == "" {
		path = DevPathDefault
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &DevTransport{f: f}, nil
}

func (t *DevTransport) Exchange(cmd Command) (Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.f == nil {
		return Response{}, ErrNotPresent
	}

	n := len(cmd.Request)
	if cmd.ResponseSize > n {
		n = cmd.ResponseSize
	}
	buf := make([]byte, devHeaderSize+n)
	binary.LittleEndian.PutUint32(buf[0:], uint32(cmd.Version))
	binary.LittleEndian.PutUint32(buf[4:], uint32(cmd.Opcode))
	binary.LittleEndian.PutUint32(buf[8:], uint32(len(cmd.Request)))
	binary.LittleEndian.PutUint32(buf[12:], uint32(cmd.ResponseSize))
	copy(buf[devHeaderSize:], cmd.Request)

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, t.f.Fd(),
		uintptr(devIocXcmd), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return Response{}, fmt.Errorf("ioctl %s: %w", t.f.Name(), errno)
	}

	return Response{
		Status:  Result(binary.LittleEndian.Uint32(buf[16:])),
		Payload: buf[devHeaderSize : devHeaderSize+cmd.ResponseSize],
	}, nil
}

// Close releases the device. Later exchanges fail with ErrNotPresent.
func (t *DevTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.f == nil {
		return nil
	}
	err := t.f.Close()
	t.f = nil
	return err
}
