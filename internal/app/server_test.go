package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServe(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	t.Run("Stops on context cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- serve(ctx, createServer("127.0.0.1:0", handler), zap.NewNop())
		}()

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(shutdownTimeout):
			t.Fatal("serve did not return after cancel")
		}
	})

	t.Run("Listen error is returned", func(t *testing.T) {
		err := serve(context.Background(), createServer("no-port", handler), zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http server")
	})
}

func TestCreateServer(t *testing.T) {
	srv := createServer(":8080", http.NotFoundHandler())
	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, serverReadHeaderTimeout, srv.ReadHeaderTimeout)
	assert.Equal(t, serverWriteTimeout, srv.WriteTimeout)
}
