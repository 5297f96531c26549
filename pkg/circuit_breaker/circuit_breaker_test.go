package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	var (
		errBroker = errors.New("broker down")
		ok        = func() error { return nil }
		failing   = func() error { return errBroker }
	)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	cb := NewCircuitBreaker(10, 2*time.Second, 0.3, 2).(*circuitBreaker)
	cb.now = func() time.Time { return now }

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())

	require.ErrorIs(t, cb.Call(failing), errBroker)
	require.ErrorIs(t, cb.Call(failing), errBroker)
	require.Equal(t, Closed, cb.State())
	require.ErrorIs(t, cb.Call(failing), errBroker)
	require.Equal(t, Open, cb.State())

	called := false
	require.ErrorIs(t, cb.Call(func() error { called = true; return nil }), ErrOpenCB)
	require.False(t, called)

	// timeout elapsed: one probe fails and reopens
	now = now.Add(3 * time.Second)
	require.ErrorIs(t, cb.Call(failing), errBroker)
	require.Equal(t, Open, cb.State())

	now = now.Add(3 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_Reset(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Hour, 1, 1)
	require.Error(t, cb.Call(func() error { return errors.New("x") }))
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}
