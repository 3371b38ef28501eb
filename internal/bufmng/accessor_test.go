package bufmng

import (
	"bytes"
	"testing"

	"github.com/sirkon/xferbuf/internal/bpool"
	"github.com/sirkon/xferbuf/internal/testlog"
	"github.com/sirkon/xferbuf/internal/types"
)

func TestAccessor(t *testing.T) {
	p, err := bpool.New(16, 4)
	if testlog.Check(t, err) {
		return
	}

	m, err := New(32, 1, p)
	if testlog.Check(t, err) {
		return
	}
	defer func() { _ = m.Close() }()

	key := types.NewTransferKey(9, 4)
	acc, err := NewAccessor(m, key)
	if testlog.Check(t, err) {
		return
	}

	if acc.Access() != nil {
		t.Error("no buffer expected before creation")
	}

	buf := acc.Create()
	if buf == nil {
		t.Fatal("buffer creation must succeed")
	}
	if n, err := buf.WriteAt(0, []byte("payload")); err != nil || n != 7 {
		t.Fatalf("unexpected write result %d %v", n, err)
	}

	// Обёртка и прямое обращение к хранилищу видят один и тот же буфер.
	dst := make([]byte, 7)
	if n, err := acc.Access().ReadAt(0, dst); err != nil || n != 7 {
		t.Fatalf("unexpected read result %d %v", n, err)
	}
	if !bytes.Equal(dst, []byte("payload")) {
		t.Error("readout differs from what was written")
	}
	if m.Access(key) == nil {
		t.Error("the buffer must be visible through the manager as well")
	}

	acc.Remove()
	if acc.Access() != nil || m.Access(key) != nil {
		t.Error("removed buffer must not be accessible")
	}
}

func TestAccessorWithNullStore(t *testing.T) {
	acc, err := NewAccessor(NullManager{}, types.NewTransferKey(1, 1))
	if testlog.Check(t, err) {
		return
	}

	if acc.Create() != nil || acc.Access() != nil {
		t.Error("null store must serve no buffers")
	}
	acc.Remove()
}

func TestAccessorContractViolations(t *testing.T) {
	if _, err := NewAccessor(nil, types.NewTransferKey(1, 1)); err == nil {
		t.Error("missing store must be rejected")
	}
	if _, err := NewAccessor(NullManager{}, types.TransferKey{}); err == nil {
		t.Error("empty key must be rejected")
	}
}
