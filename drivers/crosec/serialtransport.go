package crosec

import (
	"fmt"
	"io"
	"sync"

	"github.com/tarm/serial"
)

// Baud rate EC debug bridges run their host-command UART at.
const SerialBaudDefault = 115200

// SerialTransport speaks the v3 host-command protocol over a host
// serial port, as exposed by EC development boards and servo debug
// bridges. Packets travel unframed: write the request packet, read the
// response header, then read data_len payload bytes.
type SerialTransport struct {
	mu   sync.Mutex
	port io.ReadWriteCloser
}

// OpenSerialTransport opens the named port. baud 0 selects
// SerialBaudDefault.
func OpenSerialTransport(name string, baud int) (*SerialTransport, error) {
	if baud == 0 {
		baud = SerialBaudDefault
	}
	p, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return &SerialTransport{port: p}, nil
}

func (t *SerialTransport) Exchange(cmd Command) (Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.port == nil {
		return Response{}, ErrNotPresent
	}

	if _, err := t.port.Write(encodeRequestPacket(cmd)); err != nil {
		return Response{}, fmt.Errorf("serial write: %w", err)
	}

	pkt := make([]byte, hostResponseSize+cmd.ResponseSize)
	if _, err := io.ReadFull(t.port, pkt[:hostResponseSize]); err != nil {
		return Response{}, fmt.Errorf("serial read header: %w", err)
	}
	dlen := int(pkt[4]) | int(pkt[5])<<8
	if dlen > cmd.ResponseSize {
		return Response{}, ErrFrame
	}
	if dlen > 0 {
		if _, err := io.ReadFull(t.port, pkt[hostResponseSize:hostResponseSize+dlen]); err != nil {
			return Response{}, fmt.Errorf("serial read payload: %w", err)
		}
	}
	return decodeResponsePacket(pkt[:hostResponseSize+dlen])
}

// Close releases the port. Later exchanges fail with ErrNotPresent.
func (t *SerialTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	return err
}
