// Package platform holds the device-presence boundary: transports are
// published under well-known channel names, and the rest of the module
// reaches the EC only through the one process-wide Handle bound here.
package platform

import (
	"io"
	"sync"

	"frameworkec-go/drivers/crosec"
)

// ECDeviceName is the well-known channel name of the Framework EC.
const ECDeviceName = "cros_ec_lpcs.0"

// Registry maps channel names to live transports.
type Registry struct {
	mu     sync.Mutex
	byName map[string]crosec.Transport
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]crosec.Transport)}
}

func (r *Registry) Add(name string, tr crosec.Transport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[name] = tr
}

func (r *Registry) Resolve(name string) (crosec.Transport, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tr, ok := r.byName[name]
	return tr, ok
}

// Handle is the single process-wide reference to the EC channel. It is
// acquired once at startup and read-only until Close; after Close every
// exchange fails fast with crosec.ErrNotPresent instead of touching a
// released channel. A Handle over a name that never resolved behaves
// the same way, so "no EC" is an ordinary state, not a special case.
type Handle struct {
	mu sync.Mutex
	tr crosec.Transport
}

// Bind resolves name in reg and wraps whatever it finds (possibly
// nothing) in a Handle.
func Bind(reg *Registry, name string) *Handle {
	tr, _ := reg.Resolve(name)
	return &Handle{tr: tr}
}

// Exchange forwards to the bound transport. Handle itself is a
// crosec.Transport, so Devices are constructed directly over it.
func (h *Handle) Exchange(cmd crosec.Command) (crosec.Response, error) {
	h.mu.Lock()
	tr := h.tr
	h.mu.Unlock()
	if tr == nil {
		return crosec.Response{}, crosec.ErrNotPresent
	}
	return tr.Exchange(cmd)
}

// Present reports whether a transport is currently bound.
func (h *Handle) Present() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tr != nil
}

// Close drops the transport reference, closing it if it owns resources.
func (h *Handle) Close() error {
	h.mu.Lock()
	tr := h.tr
	h.tr = nil
	h.mu.Unlock()
	if c, ok := tr.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
