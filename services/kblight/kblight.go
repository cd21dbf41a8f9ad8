// Package kblight adapts the EC keyboard backlight to the capability
// set a brightness-controllable device must satisfy: read the current
// level, apply a new level, report the maximum.
package kblight

import (
	"frameworkec-go/drivers/crosec"
	"frameworkec-go/errcode"
	"frameworkec-go/x/mathx"
)

// DeviceName is the fixed name the backlight registers under.
const DeviceName = "framework_acpi::kbd_backlight"

// Brightness is the interface a registrar consumes. Brightness has no
// error channel: a device that cannot be read reports 0.
type Brightness interface {
	Brightness() int
	SetBrightness(level int) error
	MaxBrightness() int
}

// Registration is what a LED-class style registrar needs to publish
// the device. Max is captured once; it never changes.
type Registration struct {
	Name string
	Max  int
	Dev  Brightness
}

// KeyboardLight implements Brightness over the EC backlight view.
type KeyboardLight struct {
	kb crosec.KeyboardBacklight
}

var _ Brightness = (*KeyboardLight)(nil)

func New(dev *crosec.Device) *KeyboardLight {
	return &KeyboardLight{kb: dev.KeyboardBacklight()}
}

// Brightness reads the current level; failures and a disabled
// backlight both read as 0, never as an error.
func (l *KeyboardLight) Brightness() int { return int(l.kb.Level()) }

// MaxBrightness is constant at 100.
func (l *KeyboardLight) MaxBrightness() int { return int(l.kb.MaxLevel()) }

// SetBrightness validates level against [0, max] before the core is
// touched; out-of-range input never causes an exchange.
func (l *KeyboardLight) SetBrightness(level int) error {
	if !mathx.Between(level, 0, l.MaxBrightness()) {
		return &errcode.E{C: errcode.InvalidParams, Op: "kblight.set", Msg: "level out of range"}
	}
	if err := l.kb.SetLevel(uint8(level)); err != nil {
		return &errcode.E{C: errcode.MapDriverErr(err), Op: "kblight.set", Err: err}
	}
	return nil
}

// Registration returns the fixed registration record for this device.
func (l *KeyboardLight) Registration() Registration {
	return Registration{Name: DeviceName, Max: l.MaxBrightness(), Dev: l}
}
