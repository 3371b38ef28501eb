package bpool

import (
	"testing"

	"github.com/sirkon/xferbuf/internal/testlog"
)

func TestPoolAccounting(t *testing.T) {
	p, err := New(32, 3)
	if testlog.Check(t, err) {
		return
	}

	if p.BlockSize() != 32 {
		t.Errorf("expected block size 32, got %d", p.BlockSize())
	}
	if p.Capacity() != 3 {
		t.Errorf("expected capacity 3, got %d", p.Capacity())
	}

	var blocks [][]byte
	for i := 0; i < 3; i++ {
		b, ok := p.AllocBlock()
		if !ok {
			t.Fatalf("allocation %d must succeed", i)
		}
		if len(b) != 32 {
			t.Fatalf("allocation %d: expected a 32 bytes long block, got %d", i, len(b))
		}
		blocks = append(blocks, b)
	}

	if p.FreeBlocks() != 0 {
		t.Errorf("expected 0 free blocks, got %d", p.FreeBlocks())
	}

	if _, ok := p.AllocBlock(); ok {
		t.Error("allocation over the capacity must fail")
	}

	for _, b := range blocks {
		p.FreeBlock(b)
	}

	if p.FreeBlocks() != p.Capacity() {
		t.Errorf("all blocks were freed, yet only %d of %d are free", p.FreeBlocks(), p.Capacity())
	}

	// Возвращённые блоки должны выдаваться снова.
	if _, ok := p.AllocBlock(); !ok {
		t.Error("allocation must succeed after blocks were returned")
	}
}

func TestPoolBlocksAreDistinct(t *testing.T) {
	p, err := New(8, 2)
	if testlog.Check(t, err) {
		return
	}

	b1, _ := p.AllocBlock()
	b2, _ := p.AllocBlock()

	for i := range b1 {
		b1[i] = 0x11
	}
	for i := range b2 {
		b2[i] = 0x22
	}

	if b1[0] != 0x11 || b2[0] != 0x22 {
		t.Error("blocks must not overlap")
	}
}

func TestPoolDoubleFree(t *testing.T) {
	p, err := New(16, 1)
	if testlog.Check(t, err) {
		return
	}

	b, _ := p.AllocBlock()
	p.FreeBlock(b)

	defer func() {
		if recover() == nil {
			t.Error("double free must panic")
		}
	}()
	p.FreeBlock(b)
}

func TestPoolForeignBlock(t *testing.T) {
	p, err := New(16, 1)
	if testlog.Check(t, err) {
		return
	}

	defer func() {
		if recover() == nil {
			t.Error("freeing a foreign block must panic")
		}
	}()
	p.FreeBlock(make([]byte, 16))
}

func TestPoolInvalidConfig(t *testing.T) {
	if _, err := New(0, 4); err == nil {
		t.Error("zero block size must be rejected")
	}
	if _, err := New(16, -1); err == nil {
		t.Error("negative block count must be rejected")
	}
}
