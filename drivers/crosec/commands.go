// Package crosec provides constants for the host-command opcodes and
// bitfields used when driving a ChromeOS-style embedded controller.
package crosec

const (
	// --- Host command opcodes ---

	// Keyboard backlight PWM.
	CmdPWMGetKeyboardBacklight uint16 = 0x0022 // R
	CmdPWMSetKeyboardBacklight uint16 = 0x0023 // W

	// Battery charge limit (Framework vendor range, 0x3E00+).
	CmdChargeLimitControl uint16 = 0x3E03 // R/W, selected by modes bits
)

// ChargeLimitModes selects the charge-limit operation. GET and SET share
// the one opcode; only the bits differ.
type ChargeLimitModes uint8

const (
	// Disable all limits, hand control back to the charge manager.
	ChgLimitDisable ChargeLimitModes = 1 << 0
	// Apply maximum and minimum percentage.
	ChgLimitSet ChargeLimitModes = 1 << 1
	// Read back the current setting.
	ChgLimitGet ChargeLimitModes = 1 << 3
	// Allow a full charge this one time.
	ChgLimitOverride ChargeLimitModes = 1 << 7
)

func (m ChargeLimitModes) Has(flag ChargeLimitModes) bool { return m&flag != 0 }

// Named predicates so call sites never do mask arithmetic.
func (m ChargeLimitModes) WantsDisable() bool  { return m.Has(ChgLimitDisable) }
func (m ChargeLimitModes) WantsSet() bool      { return m.Has(ChgLimitSet) }
func (m ChargeLimitModes) WantsGet() bool      { return m.Has(ChgLimitGet) }
func (m ChargeLimitModes) WantsOverride() bool { return m.Has(ChgLimitOverride) }

// Result is the EC's status code for one completed exchange.
type Result uint16

const (
	ResSuccess Result = iota
	ResInvalidCommand
	ResError
	ResInvalidParam
	ResAccessDenied
	ResInvalidResponse
	ResInvalidVersion
	ResInvalidChecksum
	ResInProgress
	ResUnavailable
	ResTimeout
	ResOverflow
	ResInvalidHeader
	ResRequestTruncated
	ResResponseTooBig
	ResBusError
	ResBusy
)

func (r Result) String() string {
	switch r {
	case ResSuccess:
		return "success"
	case ResInvalidCommand:
		return "invalid_command"
	case ResError:
		return "error"
	case ResInvalidParam:
		return "invalid_param"
	case ResAccessDenied:
		return "access_denied"
	case ResInvalidResponse:
		return "invalid_response"
	case ResInvalidVersion:
		return "invalid_version"
	case ResInvalidChecksum:
		return "invalid_checksum"
	case ResInProgress:
		return "in_progress"
	case ResUnavailable:
		return "unavailable"
	case ResTimeout:
		return "timeout"
	case ResOverflow:
		return "overflow"
	case ResInvalidHeader:
		return "invalid_header"
	case ResRequestTruncated:
		return "request_truncated"
	case ResResponseTooBig:
		return "response_too_big"
	case ResBusError:
		return "bus_error"
	case ResBusy:
		return "busy"
	default:
		return "unknown"
	}
}
