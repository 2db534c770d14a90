package storage

import (
	"context"
	"testing"
)

func TestFileDriverRoundTrip(t *testing.T) {
	driver, err := NewFileDriver(t.TempDir())
	if err != nil {
		t.Fatalf("creating driver: %v", err)
	}
	ctx := context.Background()

	if _, err := driver.Load(ctx, KeyProducts); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	value := []byte(`[{"id":"p1"}]`)
	if err := driver.Save(ctx, KeyProducts, value); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := driver.Load(ctx, KeyProducts)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(value) {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestFileDriverOverwrite(t *testing.T) {
	driver, err := NewFileDriver(t.TempDir())
	if err != nil {
		t.Fatalf("creating driver: %v", err)
	}
	ctx := context.Background()

	if err := driver.Save(ctx, KeyOrders, []byte("old")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := driver.Save(ctx, KeyOrders, []byte("new")); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := driver.Load(ctx, KeyOrders)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "new" {
		t.Fatalf("expected whole-value replace, got %q", got)
	}
}
