package store

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) (*KV, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewKV(client), mr
}

func TestKV_SetGet(t *testing.T) {
	ctx := context.Background()
	kv, _ := newTestStore(t)

	want := record{Name: "alpha", Count: 3}
	if err := kv.Set(ctx, "r:1", want); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var got record
	if err := kv.Get(ctx, "r:1", &got); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestKV_Get_Missing(t *testing.T) {
	kv, _ := newTestStore(t)

	var got record
	err := kv.Get(context.Background(), "missing", &got)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestKV_Set_Overwrites(t *testing.T) {
	ctx := context.Background()
	kv, _ := newTestStore(t)

	if err := kv.Set(ctx, "r:1", record{Name: "first"}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := kv.Set(ctx, "r:1", record{Name: "second"}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var got record
	if err := kv.Get(ctx, "r:1", &got); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "second" {
		t.Errorf("expected last write to win, got %q", got.Name)
	}
}

func TestKV_Exists(t *testing.T) {
	ctx := context.Background()
	kv, _ := newTestStore(t)

	if err := kv.Set(ctx, "present", record{}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	ok, err := kv.Exists(ctx, "present")
	if err != nil || !ok {
		t.Errorf("expected present key to exist, ok=%v err=%v", ok, err)
	}

	ok, err = kv.Exists(ctx, "absent")
	if err != nil || ok {
		t.Errorf("expected absent key to not exist, ok=%v err=%v", ok, err)
	}
}

func TestKV_GetByPrefix(t *testing.T) {
	ctx := context.Background()
	kv, _ := newTestStore(t)

	seed := map[string]record{
		"progress:u1:m1": {Name: "m1"},
		"progress:u1:m2": {Name: "m2"},
		"progress:u2:m1": {Name: "other user"},
		"profile:u1":     {Name: "not progress"},
	}
	for key, value := range seed {
		if err := kv.Set(ctx, key, value); err != nil {
			t.Fatalf("seeding %s failed: %v", key, err)
		}
	}

	got, err := kv.GetByPrefix(ctx, "progress:u1:")
	if err != nil {
		t.Fatalf("getByPrefix failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d: %v", len(got), got)
	}
	for _, key := range []string{"progress:u1:m1", "progress:u1:m2"} {
		if _, ok := got[key]; !ok {
			t.Errorf("expected key %s in result", key)
		}
	}
}

func TestKV_GetByPrefix_Empty(t *testing.T) {
	kv, _ := newTestStore(t)

	got, err := kv.GetByPrefix(context.Background(), "nothing:")
	if err != nil {
		t.Fatalf("getByPrefix failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}

func TestKV_NilClient(t *testing.T) {
	ctx := context.Background()
	kv := NewKV(nil)

	if kv.Available() {
		t.Error("expected unavailable store")
	}

	var got record
	if err := kv.Get(ctx, "k", &got); !errors.Is(err, ErrNotAvailable) {
		t.Errorf("expected ErrNotAvailable from Get, got %v", err)
	}
	if err := kv.Set(ctx, "k", got); !errors.Is(err, ErrNotAvailable) {
		t.Errorf("expected ErrNotAvailable from Set, got %v", err)
	}
	if _, err := kv.GetByPrefix(ctx, "k"); !errors.Is(err, ErrNotAvailable) {
		t.Errorf("expected ErrNotAvailable from GetByPrefix, got %v", err)
	}
	if err := kv.Ping(ctx); !errors.Is(err, ErrNotAvailable) {
		t.Errorf("expected ErrNotAvailable from Ping, got %v", err)
	}
}
