package platform

import (
	"errors"
	"testing"

	"frameworkec-go/drivers/crosec"
)

type fakeTransport struct {
	exchanges int
	closed    bool
}

func (f *fakeTransport) Exchange(cmd crosec.Command) (crosec.Response, error) {
	f.exchanges++
	return crosec.Response{Payload: make([]byte, cmd.ResponseSize)}, nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

func TestBindResolvesByName(t *testing.T) {
	reg := NewRegistry()
	tr := &fakeTransport{}
	reg.Add(ECDeviceName, tr)

	h := Bind(reg, ECDeviceName)
	if !h.Present() {
		t.Fatal("handle not present after successful bind")
	}
	if _, err := h.Exchange(crosec.Command{Opcode: crosec.CmdPWMGetKeyboardBacklight}); err != nil {
		t.Fatalf("Exchange through handle failed: %v", err)
	}
	if tr.exchanges != 1 {
		t.Fatalf("underlying transport saw %d exchanges, want 1", tr.exchanges)
	}
}

func TestBindUnknownNameActsAsAbsent(t *testing.T) {
	h := Bind(NewRegistry(), ECDeviceName)

	if h.Present() {
		t.Fatal("handle present with nothing registered")
	}
	if _, err := h.Exchange(crosec.Command{}); !errors.Is(err, crosec.ErrNotPresent) {
		t.Fatalf("Exchange on unbound handle: err = %v, want ErrNotPresent", err)
	}
}

func TestCloseFailsFast(t *testing.T) {
	reg := NewRegistry()
	tr := &fakeTransport{}
	reg.Add(ECDeviceName, tr)

	h := Bind(reg, ECDeviceName)
	if err := h.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !tr.closed {
		t.Fatal("Close did not release the underlying transport")
	}
	if _, err := h.Exchange(crosec.Command{}); !errors.Is(err, crosec.ErrNotPresent) {
		t.Fatalf("Exchange after Close: err = %v, want ErrNotPresent", err)
	}
	if tr.exchanges != 0 {
		t.Fatalf("closed handle still reached the transport (%d exchanges)", tr.exchanges)
	}
}

// The handle satisfies the driver's transport contract, so controllers
// stack straight on top of it.
func TestHandleDrivesDevice(t *testing.T) {
	h := Bind(NewRegistry(), ECDeviceName)
	kb := crosec.New(h, crosec.DefaultConfig()).KeyboardBacklight()

	if got := kb.Level(); got != 0 {
		t.Fatalf("Level through absent handle = %d, want 0", got)
	}
}
