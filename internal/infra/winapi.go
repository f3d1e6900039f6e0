package infra

import "errors"

// ErrUnsupportedPlatform is returned when the host has no supported windowing API.
var ErrUnsupportedPlatform = errors.New("window patching requires 64-bit Windows")
