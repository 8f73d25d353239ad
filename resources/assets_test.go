package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppIcon(t *testing.T) {
	icon := AppIcon()
	require.NotNil(t, icon)
	assert.Equal(t, "icon/timer.svg", icon.Name())
	assert.Contains(t, string(icon.Content()), "<svg")
	assert.Same(t, icon, AppIcon())
}

func TestIconMissing(t *testing.T) {
	_, err := Icon("missing.png")
	assert.Error(t, err)
}
