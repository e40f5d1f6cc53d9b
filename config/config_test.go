package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	const name = "SNAKE_TEST_ENV_INT"
	defer os.Unsetenv(name)

	require.NoError(t, os.Unsetenv(name))
	require.Equal(t, 7, getEnvInt(name, 7))

	require.NoError(t, os.Setenv(name, "42"))
	require.Equal(t, 42, getEnvInt(name, 7))

	require.NoError(t, os.Setenv(name, "not-a-number"))
	require.Equal(t, 7, getEnvInt(name, 7))
}

func TestTickInterval(t *testing.T) {
	require.Equal(t, 100*time.Millisecond, TickInterval(10))
	require.Equal(t, 20*time.Millisecond, TickInterval(50))
	require.Equal(t, time.Second, TickInterval(0))
	require.Equal(t, time.Second, TickInterval(-3))
}
