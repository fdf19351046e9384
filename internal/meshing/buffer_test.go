package meshing

import (
	"errors"
	"testing"
)

func TestMemoryBufferWriteAndFlush(t *testing.T) {
	b := NewMemoryBuffer(64)
	if b.CapacityBytes() != 64 {
		t.Fatalf("capacity %d, want 64", b.CapacityBytes())
	}
	if err := b.WriteRegion(8, []float32{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteRegion(32, []float32{3}); err != nil {
		t.Fatal(err)
	}

	calls := 0
	b.Flush(func(off int, data []float32) {
		calls++
		if off != 8 || len(data) != 7 {
			t.Errorf("flush range off=%d len=%d, want off=8 len=7", off, len(data))
		}
		if data[0] != 1 || data[1] != 2 || data[6] != 3 {
			t.Errorf("flush data %v", data)
		}
	})
	if calls != 1 {
		t.Fatalf("flush called %d times, want 1", calls)
	}
	if b.Dirty() {
		t.Fatal("buffer still dirty after flush")
	}
	b.Flush(func(int, []float32) { t.Fatal("clean buffer flushed") })
}

func TestMemoryBufferRejectsOutOfRange(t *testing.T) {
	b := NewMemoryBuffer(16)
	if err := b.WriteRegion(12, []float32{1, 2}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("overflow write: got %v, want ErrOutOfRange", err)
	}
	if err := b.WriteRegion(2, []float32{1}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unaligned write: got %v, want ErrOutOfRange", err)
	}
	if b.Dirty() {
		t.Error("rejected writes marked the buffer dirty")
	}
}
