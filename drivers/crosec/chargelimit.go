package crosec

// ChargeLimit exposes the battery charge-limit operations over the
// common Device. GET and SET share one opcode; only the modes bits
// differ.
//
// Concurrency: methods are not safe for concurrent use from multiple
// goroutines. Serialise calls externally if needed.
type ChargeLimit struct{ d *Device }

// Threshold reads the current upper charge threshold in percent.
func (c ChargeLimit) Threshold() (uint8, error) {
	p := ChargeLimitParams{Modes: ChgLimitGet}
	raw, err := c.d.exchange(CmdChargeLimitControl, p.encode(), chargeLimitResponseSize)
	if err != nil {
		return 0, err
	}
	s, err := decodeChargeLimitSettings(raw)
	if err != nil {
		return 0, err
	}
	return s.MaxPercentage, nil
}

// SetThreshold applies max as the upper charge threshold. The caller
// must have validated max <= 100 already; out-of-range input is
// rejected at the attribute boundary, never sent to the EC. The EC
// echoes the applied maximum back; the echo is discarded (writes are
// fire-and-forget, read back with Threshold to confirm).
func (c ChargeLimit) SetThreshold(max uint8) error {
	p := ChargeLimitParams{Modes: ChgLimitSet, MaxPercentage: max}
	_, err := c.d.exchange(CmdChargeLimitControl, p.encode(), chargeLimitResponseSize)
	return err
}
