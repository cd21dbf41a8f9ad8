package crosec

import (
	"fmt"
	"sync"

	"tinygo.org/x/drivers"
)

// 7-bit address the EC answers on when tunnelled over I2C.
const I2CAddressDefault = 0x1E

// I2CTransport tunnels v3 host-command packets over an I2C bus. One
// Tx carries the whole exchange: write framing byte + request packet,
// read status preamble + response packet.
//
// Read frame: tunnel result(1) packet_len(1) response packet…
type I2CTransport struct {
	mu   sync.Mutex
	bus  drivers.I2C
	addr uint16
}

// NewI2CTransport wraps an I2C bus. addr 0 selects I2CAddressDefault.
func NewI2CTransport(bus drivers.I2C, addr uint16) *I2CTransport {
	if addr == 0 {
		addr = I2CAddressDefault
	}
	return &I2CTransport{bus: bus, addr: addr}
}

func (t *I2CTransport) Exchange(cmd Command) (Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bus == nil {
		return Response{}, ErrNotPresent
	}

	pkt := encodeRequestPacket(cmd)
	w := make([]byte, 0, 1+len(pkt))
	w = append(w, i2cFramingByte)
	w = append(w, pkt...)

	r := make([]byte, 2+hostResponseSize+cmd.ResponseSize)
	if err := t.bus.Tx(t.addr, w, r); err != nil {
		return Response{}, fmt.Errorf("i2c exchange: %w", err)
	}

	// Tunnel-level status precedes the packet; a non-success value
	// means the packet bytes are not to be trusted.
	if res := Result(r[0]); res != ResSuccess {
		return Response{}, &ResultError{Result: res}
	}
	plen := int(r[1])
	if plen < hostResponseSize || plen > len(r)-2 {
		return Response{}, ErrFrame
	}
	return decodeResponsePacket(r[2 : 2+plen])
}
