//go:build !windows

package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWindowSystem_Unsupported(t *testing.T) {
	ws, err := NewWindowSystem()

	assert.Nil(t, ws)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}
