// Package crosec implements the host side of the ChromeOS EC
// host-command protocol as used by the Framework laptop's embedded
// controller: a typed command/response layer over one shared transport,
// with charge-limit and keyboard-backlight operations on top.
package crosec

// Driver configuration.
type Config struct {
	// Version is the host-command struct version sent with every
	// command. Both commands this driver issues are version 0.
	Version uint8
}

// DefaultConfig returns the configuration the Framework EC expects.
func DefaultConfig() Config {
	return Config{}
}

// Device represents one EC reachable through a Transport. The transport
// reference is set at construction and never mutated; a nil transport
// is the valid "EC not present" state and fails every exchange fast.
type Device struct {
	tr      Transport
	version uint8
}

// New constructs a Device over the supplied transport. tr may be nil.
func New(tr Transport, cfg Config) *Device {
	return &Device{tr: tr, version: cfg.Version}
}

// Present reports whether a transport handle exists. It does not probe
// the controller.
func (d *Device) Present() bool { return d != nil && d.tr != nil }

// Views over the common device, one per capability.

// ChargeLimit returns the battery charge-limit view.
func (d *Device) ChargeLimit() ChargeLimit { return ChargeLimit{d: d} }

// KeyboardBacklight returns the keyboard backlight view.
func (d *Device) KeyboardBacklight() KeyboardBacklight { return KeyboardBacklight{d: d} }

// exchange performs exactly one round trip and returns the payload,
// which is guaranteed to be respSize bytes on success.
func (d *Device) exchange(opcode uint16, req []byte, respSize int) ([]byte, error) {
	if d == nil || d.tr == nil {
		return nil, ErrNotPresent
	}
	resp, err := d.tr.Exchange(Command{
		Version:      d.version,
		Opcode:       opcode,
		Request:      req,
		ResponseSize: respSize,
	})
	if err != nil {
		return nil, err
	}
	if resp.Status != ResSuccess {
		return nil, &ResultError{Result: resp.Status}
	}
	if len(resp.Payload) != respSize {
		return nil, ErrResponseSize
	}
	return resp.Payload, nil
}
