package crosec

import (
	"encoding/binary"
	"errors"
	"testing"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2CEC)(nil)

// fakeI2CEC emulates an EC behind the I2C tunnel: it parses the framed
// v3 request out of the write buffer and lays a framed response into
// the read buffer.
type fakeI2CEC struct {
	threshold uint8
	badSum    bool
	busErr    error
}

func (f *fakeI2CEC) Tx(addr uint16, w, r []byte) error {
	if f.busErr != nil {
		return f.busErr
	}
	if addr != I2CAddressDefault {
		return errors.New("wrong address")
	}
	if len(w) < 1+hostRequestSize || w[0] != i2cFramingByte {
		return errors.New("not a v3 frame")
	}
	req := w[1:]
	var sum uint8
	for _, b := range req {
		sum += b
	}
	if sum != 0 {
		return errors.New("request checksum")
	}

	opcode := binary.LittleEndian.Uint16(req[2:])
	dlen := int(binary.LittleEndian.Uint16(req[6:]))
	data := req[hostRequestSize : hostRequestSize+dlen]

	var payload []byte
	result := ResSuccess
	switch opcode {
	case CmdChargeLimitControl:
		if ChargeLimitModes(data[0]).WantsSet() {
			f.threshold = data[1]
		}
		payload = []byte{f.threshold, 0}
	default:
		result = ResInvalidCommand
	}

	pkt := buildResponsePacket(result, payload)
	if f.badSum {
		pkt[1] ^= 0xFF
	}
	r[0] = byte(ResSuccess)
	r[1] = byte(len(pkt))
	copy(r[2:], pkt)
	return nil
}

func TestI2CTransportRoundTrip(t *testing.T) {
	tr := NewI2CTransport(&fakeI2CEC{threshold: 75}, 0)
	cl := New(tr, DefaultConfig()).ChargeLimit()

	got, err := cl.Threshold()
	if err != nil {
		t.Fatalf("Threshold over i2c failed: %v", err)
	}
	if got != 75 {
		t.Fatalf("Threshold = %d, want 75", got)
	}

	if err := cl.SetThreshold(60); err != nil {
		t.Fatalf("SetThreshold over i2c failed: %v", err)
	}
	if got, _ := cl.Threshold(); got != 60 {
		t.Fatalf("Threshold after set = %d, want 60", got)
	}
}

func TestI2CTransportChecksumRejected(t *testing.T) {
	tr := NewI2CTransport(&fakeI2CEC{badSum: true}, 0)

	_, err := tr.Exchange(Command{
		Opcode:       CmdChargeLimitControl,
		Request:      ChargeLimitParams{Modes: ChgLimitGet}.encode(),
		ResponseSize: chargeLimitResponseSize,
	})
	if !errors.Is(err, ErrChecksum) {
		t.Fatalf("err = %v, want ErrChecksum", err)
	}
}

func TestI2CTransportBusFault(t *testing.T) {
	fault := errors.New("nak")
	tr := NewI2CTransport(&fakeI2CEC{busErr: fault}, 0)

	_, err := tr.Exchange(Command{
		Opcode:       CmdPWMGetKeyboardBacklight,
		ResponseSize: backlightGetResponseSize,
	})
	if !errors.Is(err, fault) {
		t.Fatalf("err = %v, want wrapped bus fault", err)
	}
}

func TestI2CTransportNoBus(t *testing.T) {
	tr := NewI2CTransport(nil, 0)
	if _, err := tr.Exchange(Command{Opcode: CmdPWMGetKeyboardBacklight}); !errors.Is(err, ErrNotPresent) {
		t.Fatalf("err = %v, want ErrNotPresent", err)
	}
}
