package api_test

import (
	"context"
	"testing"
	"time"

	"github.com/limbo/accountability/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAsync(ctx context.Context, serv *api.Server, addr string) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- serv.Run(ctx, addr)
	}()
	return done
}

func TestRunStopsWithContext(t *testing.T) {
	testCases := []struct {
		Desc          string
		CancelAtStart bool
	}{
		{Desc: "cancelled while serving"},
		{Desc: "cancelled before start", CancelAtStart: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tc.CancelAtStart {
				cancel()
			}
			done := runAsync(ctx, api.New(&api.ServicesList{}), "127.0.0.1:0")
			if !tc.CancelAtStart {
				time.Sleep(50 * time.Millisecond)
				cancel()
			}
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("server did not stop")
			}
		})
	}
}

func TestRunListenError(t *testing.T) {
	done := runAsync(context.Background(), api.New(&api.ServicesList{}), "127.0.0.1:-1")
	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listen error was not returned")
	}
}
