//go:build !linux

package crosec

import "errors"

// DevTransport is a dummy on hosts without the cros_ec character
// device.
type DevTransport struct{}

// OpenDevTransport returns an error on non-Linux hosts.
func OpenDevTransport(path string) (*DevTransport, error) {
	return nil, errors.New("cros_ec device transport is only available on linux")
}

func (t *DevTransport) Exchange(cmd Command) (Response, error) {
	return Response{}, ErrNotPresent
}

func (t *DevTransport) Close() error { return nil }
