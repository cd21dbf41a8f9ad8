// Package battery exposes the charge-limit attribute boundary: a
// textual show/store pair shaped like a power-supply sysfs attribute.
package battery

import (
	"io"
	"strconv"
	"strings"

	"frameworkec-go/drivers/crosec"
	"frameworkec-go/errcode"
	"frameworkec-go/x/mathx"
)

const (
	// The Framework EC manages exactly one battery.
	BatteryName = "BAT1"

	// AttrName is the attribute the threshold appears under.
	AttrName = "charge_control_end_threshold"
)

// ThresholdAttr is the charge_control_end_threshold attribute handler.
// Stateless: every Show re-queries the EC, every Store is one write.
type ThresholdAttr struct {
	limit crosec.ChargeLimit
}

func NewThresholdAttr(dev *crosec.Device) *ThresholdAttr {
	return &ThresholdAttr{limit: dev.ChargeLimit()}
}

// AttachTo reports whether the attribute belongs on the named battery.
// Anything other than BAT1 is refused, mirroring the battery hook.
func (a *ThresholdAttr) AttachTo(name string) error {
	if name != BatteryName {
		return &errcode.E{C: errcode.NotPresent, Op: "battery.attach", Msg: "not " + BatteryName}
	}
	return nil
}

// Show writes the current threshold as a decimal integer followed by a
// newline. On failure the read fails; no stale or default value is
// emitted.
func (a *ThresholdAttr) Show(w io.Writer) error {
	v, err := a.limit.Threshold()
	if err != nil {
		return &errcode.E{C: errcode.MapDriverErr(err), Op: "battery.show", Err: err}
	}
	_, err = io.WriteString(w, strconv.Itoa(int(v))+"\n")
	return err
}

// Store parses a decimal percentage and applies it. Non-numeric input
// and values above 100 are rejected with invalid_params before any
// exchange is attempted; nothing out of range ever reaches the wire.
func (a *ThresholdAttr) Store(s string) error {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "battery.store", Err: err}
	}
	if !mathx.Between(v, 0, 100) {
		return &errcode.E{C: errcode.InvalidParams, Op: "battery.store", Msg: "threshold above 100"}
	}
	if err := a.limit.SetThreshold(uint8(v)); err != nil {
		return &errcode.E{C: errcode.MapDriverErr(err), Op: "battery.store", Err: err}
	}
	return nil
}
