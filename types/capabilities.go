package types

// ------------------------
// Capability kinds
// ------------------------

type Kind string

const (
	KindBattery   Kind = "battery"
	KindBacklight Kind = "kbd_backlight"
)
