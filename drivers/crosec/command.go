package crosec

// Command is one host-to-EC request. Immutable once built; constructed
// and consumed within a single exchange.
type Command struct {
	Version      uint8
	Opcode       uint16
	Request      []byte
	ResponseSize int
}

// Response carries the EC status code and the raw response payload.
// Payload fields are only meaningful when Status == ResSuccess.
type Response struct {
	Status  Result
	Payload []byte
}

// Fixed wire sizes. The EC interprets bytes positionally, so these are
// bit-exact: fixed-width fields, no padding, declaration order.
const (
	chargeLimitParamsSize    = 3
	chargeLimitResponseSize  = 2
	backlightGetResponseSize = 2
	backlightSetParamsSize   = 1
)

// ChargeLimitParams is the request payload of CmdChargeLimitControl.
type ChargeLimitParams struct {
	Modes         ChargeLimitModes
	MaxPercentage uint8
	MinPercentage uint8
}

func (p ChargeLimitParams) encode() []byte {
	b := make([]byte, chargeLimitParamsSize)
	b[0] = byte(p.Modes)
	b[1] = p.MaxPercentage
	b[2] = p.MinPercentage
	return b
}

// ChargeLimitSettings is the response payload of CmdChargeLimitControl.
type ChargeLimitSettings struct {
	MaxPercentage uint8
	MinPercentage uint8
}

func decodeChargeLimitSettings(b []byte) (ChargeLimitSettings, error) {
	if len(b) < chargeLimitResponseSize {
		return ChargeLimitSettings{}, ErrResponseSize
	}
	return ChargeLimitSettings{MaxPercentage: b[0], MinPercentage: b[1]}, nil
}

// KeyboardBacklightState is the response payload of
// CmdPWMGetKeyboardBacklight. Percent may hold a stale value while the
// backlight is disabled.
type KeyboardBacklightState struct {
	Percent uint8
	Enabled bool
}

func decodeKeyboardBacklightState(b []byte) (KeyboardBacklightState, error) {
	if len(b) < backlightGetResponseSize {
		return KeyboardBacklightState{}, ErrResponseSize
	}
	return KeyboardBacklightState{Percent: b[0], Enabled: b[1] != 0}, nil
}

func encodeKeyboardBacklightPercent(percent uint8) []byte {
	return []byte{percent}
}
