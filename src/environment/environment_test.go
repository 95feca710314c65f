package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForceSetInteractive(t *testing.T) {
	t.Cleanup(ClearInteractiveOverride)

	ForceSetInteractive(true)
	assert.True(t, IsInteractive(), "Expected IsInteractive to return true when overridden with true")

	ForceSetInteractive(false)
	assert.False(t, IsInteractive(), "Expected IsInteractive to return false when overridden with false")
}
