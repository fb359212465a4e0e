package alloc_test

import (
	"testing"

	"tcl9.dev/pickle/pkg/alloc"
)

func TestGoAllocatorReturnsRequestedLength(t *testing.T) {
	var a alloc.GoAllocator
	b := a.Alloc(10)
	if len(b) != 10 {
		t.Errorf("len = %d, want 10", len(b))
	}
	a.Free(b) // no-op, must not panic
}

func TestArenaAllocatorReusesFreedBlocks(t *testing.T) {
	a := alloc.NewArenaAllocator(2, 16)

	b1 := a.Alloc(16)
	b2 := a.Alloc(16)
	if free, _ := a.Stats(); free != 0 {
		t.Fatalf("free = %d, want 0 after exhausting the slab", free)
	}

	a.Free(b1)
	if free, _ := a.Stats(); free != 1 {
		t.Fatalf("free = %d, want 1 after one Free", free)
	}

	b3 := a.Alloc(16)
	if len(b3) != 16 {
		t.Errorf("len = %d, want 16", len(b3))
	}
	_ = b2
}

func TestArenaAllocatorFallsBackToMakeWhenExhausted(t *testing.T) {
	a := alloc.NewArenaAllocator(1, 16)
	a.Alloc(16) // exhaust the single block

	b := a.Alloc(16)
	if len(b) != 16 {
		t.Errorf("len = %d, want 16", len(b))
	}
	if _, oversized := a.Stats(); oversized != 1 {
		t.Errorf("oversized = %d, want 1", oversized)
	}
}

func TestArenaAllocatorFallsBackForOversizedRequest(t *testing.T) {
	a := alloc.NewArenaAllocator(4, 16)
	b := a.Alloc(64)
	if len(b) != 64 {
		t.Errorf("len = %d, want 64", len(b))
	}
	if free, oversized := a.Stats(); free != 4 || oversized != 1 {
		t.Errorf("free=%d oversized=%d, want free=4 oversized=1", free, oversized)
	}
}

func TestArenaAllocatorFreeIgnoresForeignSlices(t *testing.T) {
	a := alloc.NewArenaAllocator(1, 16)
	foreign := make([]byte, 16)
	a.Free(foreign)
	if free, _ := a.Stats(); free != 1 {
		t.Errorf("free = %d, want 1 (unchanged, foreign slice ignored)", free)
	}
}
