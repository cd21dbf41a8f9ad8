package crosec

import "errors"

// Compile-time check.
var _ Transport = (*fakeEC)(nil)

var errFakeBus = errors.New("bus fault")

// fakeEC is a scripted controller behind the Transport interface. It
// keeps the charge-limit and backlight state a real EC would, counts
// exchanges, and can be told to fail.
type fakeEC struct {
	threshold uint8
	percent   uint8
	enabled   bool

	failBus    bool   // transport-level failure
	status     Result // EC status returned when not ResSuccess
	exchanges  int
	lastOpcode uint16
	lastReq    []byte
}

func (f *fakeEC) Exchange(cmd Command) (Response, error) {
	f.exchanges++
	f.lastOpcode = cmd.Opcode
	f.lastReq = append([]byte(nil), cmd.Request...)

	if f.failBus {
		return Response{}, errFakeBus
	}
	if f.status != ResSuccess {
		return Response{Status: f.status}, nil
	}

	switch cmd.Opcode {
	case CmdChargeLimitControl:
		modes := ChargeLimitModes(cmd.Request[0])
		if modes.WantsSet() {
			f.threshold = cmd.Request[1]
		}
		return Response{Payload: []byte{f.threshold, 0}}, nil

	case CmdPWMGetKeyboardBacklight:
		var en byte
		if f.enabled {
			en = 1
		}
		return Response{Payload: []byte{f.percent, en}}, nil

	case CmdPWMSetKeyboardBacklight:
		f.percent = cmd.Request[0]
		f.enabled = true
		return Response{}, nil

	default:
		return Response{Status: ResInvalidCommand}, nil
	}
}
