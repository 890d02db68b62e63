package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateModes_Anonymous(t *testing.T) {
	modes := GateModes(12, 9, false)
	assert.Len(t, modes, 12)
	for i := 0; i < 9; i++ {
		assert.Equal(t, RenderCard, modes[i], i)
	}
	for i := 9; i < 12; i++ {
		assert.Equal(t, RenderLocked, modes[i], i)
	}
}

func TestGateModes_Authenticated(t *testing.T) {
	for i, m := range GateModes(12, 9, true) {
		assert.Equal(t, RenderCard, m, i)
	}
}

func TestGateModes_Small(t *testing.T) {
	assert.Equal(t, []RenderMode{RenderCard, RenderCard}, GateModes(2, 9, false))
	assert.Empty(t, GateModes(0, 9, false))
}
