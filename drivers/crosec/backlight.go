package crosec

// MaxBacklightLevel is the EC's backlight scale: percent of maximum.
const MaxBacklightLevel = 100

// KeyboardBacklight exposes the keyboard backlight operations over the
// common Device.
type KeyboardBacklight struct{ d *Device }

// Level reads the current backlight level in percent. The read path
// has no error channel: a missing EC, a failed exchange, and a
// disabled backlight all read as 0 ("off"), even when the EC retains a
// stale percent value.
func (k KeyboardBacklight) Level() uint8 {
	raw, err := k.d.exchange(CmdPWMGetKeyboardBacklight, nil, backlightGetResponseSize)
	if err != nil {
		return 0
	}
	st, err := decodeKeyboardBacklightState(raw)
	if err != nil || !st.Enabled {
		return 0
	}
	return st.Percent
}

// SetLevel applies percent as the new backlight level. The brightness
// boundary keeps percent within [0, MaxBacklightLevel] upstream.
func (k KeyboardBacklight) SetLevel(percent uint8) error {
	_, err := k.d.exchange(CmdPWMSetKeyboardBacklight, encodeKeyboardBacklightPercent(percent), 0)
	return err
}

// MaxLevel reports the maximum level. Constant; read once at
// registration time, never re-queried.
func (k KeyboardBacklight) MaxLevel() uint8 { return MaxBacklightLevel }
