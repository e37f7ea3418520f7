package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/skillpath/learning-service/internal/ai"
	"github.com/skillpath/learning-service/internal/store"
)

// newTestKV backs the store with an in-process miniredis.
func newTestKV(t *testing.T) *store.KV {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return store.NewKV(client)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubProvider is a hand-rolled CompletionProvider that records calls.
type stubProvider struct {
	configured bool
	reply      string
	err        error
	calls      int
	lastReq    ai.CompletionRequest
}

func (p *stubProvider) Name() string     { return "stub" }
func (p *stubProvider) Configured() bool { return p.configured }

func (p *stubProvider) Complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	p.calls++
	p.lastReq = req
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}
