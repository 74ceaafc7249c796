package store

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemory_PutGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := &Session{
		Name:    "alpha",
		SavedAt: time.Now(),
		Pages:   [][]byte{[]byte("page-one"), []byte("page-two")},
	}
	if err := m.Put(ctx, in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := m.Get(ctx, "alpha")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "alpha" || len(got.Pages) != 2 {
		t.Errorf("Get = %+v, want 2 pages under %q", got, "alpha")
	}
	if !bytes.Equal(got.Pages[0], []byte("page-one")) || !bytes.Equal(got.Pages[1], []byte("page-two")) {
		t.Error("page blobs differ after round trip")
	}
}

func TestMemory_NotFound(t *testing.T) {
	m := NewMemory()
	_, err := m.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
}

func TestMemory_Overwrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Put(ctx, &Session{Name: "s", Pages: [][]byte{[]byte("a"), []byte("b")}}); err != nil {
		t.Fatal(err)
	}
	if err := m.Put(ctx, &Session{Name: "s", Pages: [][]byte{[]byte("c")}}); err != nil {
		t.Fatal(err)
	}

	got, err := m.Get(ctx, "s")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Pages) != 1 || !bytes.Equal(got.Pages[0], []byte("c")) {
		t.Errorf("overwrite left %d pages, want the replacement record", len(got.Pages))
	}
}

func TestMemory_DeepCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	blob := []byte("original")
	if err := m.Put(ctx, &Session{Name: "s", Pages: [][]byte{blob}}); err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's blob must not reach the stored record.
	blob[0] = 'X'
	got, _ := m.Get(ctx, "s")
	if !bytes.Equal(got.Pages[0], []byte("original")) {
		t.Error("stored record aliases the caller's blob")
	}

	// Mutating a returned blob must not reach the stored record either.
	got.Pages[0][0] = 'Y'
	again, _ := m.Get(ctx, "s")
	if !bytes.Equal(again.Pages[0], []byte("original")) {
		t.Error("returned record aliases the stored blob")
	}
}

func TestMemory_CanceledContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := m.Put(ctx, &Session{Name: "s"}); err == nil {
		t.Error("Put with canceled context succeeded")
	}
	if _, err := m.Get(ctx, "s"); err == nil {
		t.Error("Get with canceled context succeeded")
	}
}
