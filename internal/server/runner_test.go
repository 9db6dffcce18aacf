package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

func TestRunner_ServesAndStops(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	runner := NewRunner(Config{}, okHandler(), nil)
	closed := make(chan struct{})
	runner.OnShutdown(func(context.Context) error {
		close(closed)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runner.Serve(ctx, ln)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for runner to stop")
	}
	select {
	case <-closed:
	default:
		t.Fatal("shutdown hook did not run")
	}
}

func TestRunner_ShutdownHookError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	runner := NewRunner(Config{}, okHandler(), nil)
	runner.OnShutdown(func(context.Context) error { return errors.New("flush failed") })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = runner.Serve(ctx, ln)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flush failed")
}

func TestRunner_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	runner := NewRunner(Config{Addr: ln.Addr().String()}, okHandler(), nil)
	err = runner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}

func TestNewRunner_Defaults(t *testing.T) {
	runner := NewRunner(Config{}, okHandler(), nil)
	require.NotNil(t, runner.logger)
	assert.Equal(t, DefaultShutdownTimeout, runner.config.ShutdownTimeout)
}
