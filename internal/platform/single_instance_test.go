package platform

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromNameIsStable(t *testing.T) {
	port := portFromName("InterviewTimer")
	assert.Equal(t, port, portFromName("InterviewTimer"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestSingleInstanceGuard(t *testing.T) {
	appName := fmt.Sprintf("InterviewTimerTest-%d", time.Now().UnixNano())

	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	defer func() { _ = guard.Release() }()
	assert.NotEmpty(t, guard.Address())

	_, err = AcquireSingleInstance(appName)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	activated := make(chan struct{}, 1)
	guard.SetOnActivate(func() { activated <- struct{}{} })
	require.NoError(t, ActivateRunning(appName))

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestReleaseAllowsReacquire(t *testing.T) {
	appName := fmt.Sprintf("InterviewTimerRelease-%d", time.Now().UnixNano())

	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	require.NoError(t, again.Release())

	var nilGuard *InstanceGuard
	assert.NoError(t, nilGuard.Release())
	assert.Empty(t, nilGuard.Address())
}

func TestConfigDir(t *testing.T) {
	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.NotEmpty(t, dir)
}
