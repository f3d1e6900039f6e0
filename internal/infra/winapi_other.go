//go:build !windows

package infra

import "github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"

// NewWindowSystem reports that no windowing backend exists on this platform.
func NewWindowSystem() (domain.WindowSystem, error) {
	return nil, ErrUnsupportedPlatform
}
