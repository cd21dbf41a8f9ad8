package crosec

import "encoding/binary"

// Host-command protocol v3 packet layout, shared by the I2C and serial
// transports. The kernel ioctl transport hands framing to the kernel.
//
// Request:  version(1) csum(1) command(2 LE) cmdver(1) rsvd(1) dlen(2 LE) data…
// Response: version(1) csum(1) result(2 LE) dlen(2 LE) rsvd(2) data…
//
// The checksum byte makes the whole packet sum to zero mod 256.
const (
	hostRequestVersion = 3
	hostRequestSize    = 8
	hostResponseSize   = 8

	// I2C framing byte announcing a v3 packet (EC_COMMAND_PROTOCOL_3).
	i2cFramingByte = 0xDA
)

func packetChecksum(b []byte) uint8 {
	var sum uint8
	for _, v := range b {
		sum += v
	}
	return 0 - sum
}

func encodeRequestPacket(cmd Command) []byte {
	pkt := make([]byte, hostRequestSize+len(cmd.Request))
	pkt[0] = hostRequestVersion
	binary.LittleEndian.PutUint16(pkt[2:], cmd.Opcode)
	pkt[4] = cmd.Version
	binary.LittleEndian.PutUint16(pkt[6:], uint16(len(cmd.Request)))
	copy(pkt[hostRequestSize:], cmd.Request)
	pkt[1] = packetChecksum(pkt)
	return pkt
}

func decodeResponsePacket(pkt []byte) (Response, error) {
	if len(pkt) < hostResponseSize {
		return Response{}, ErrFrame
	}
	if pkt[0] != hostRequestVersion {
		return Response{}, ErrFrame
	}
	dlen := int(binary.LittleEndian.Uint16(pkt[4:]))
	if dlen > len(pkt)-hostResponseSize {
		return Response{}, ErrFrame
	}
	var sum uint8
	for _, v := range pkt[:hostResponseSize+dlen] {
		sum += v
	}
	if sum != 0 {
		return Response{}, ErrChecksum
	}
	return Response{
		Status:  Result(binary.LittleEndian.Uint16(pkt[2:])),
		Payload: pkt[hostResponseSize : hostResponseSize+dlen],
	}, nil
}
