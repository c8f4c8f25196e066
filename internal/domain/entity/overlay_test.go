package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlayState_String(t *testing.T) {
	tests := []struct {
		state OverlayState
		want  string
	}{
		{OverlayUninitialized, "uninitialized"},
		{OverlayDetached, "detached"},
		{OverlayAttachedHidden, "attached-hidden"},
		{OverlayAttachedVisible, "attached-visible"},
		{OverlayState(42), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestOverlayState_IsAttached(t *testing.T) {
	assert.False(t, OverlayUninitialized.IsAttached())
	assert.False(t, OverlayDetached.IsAttached())
	assert.True(t, OverlayAttachedHidden.IsAttached())
	assert.True(t, OverlayAttachedVisible.IsAttached())
}

func TestLayoutID_IsSet(t *testing.T) {
	assert.False(t, LayoutID(0).IsSet())
	assert.True(t, LayoutID(7).IsSet())
}
