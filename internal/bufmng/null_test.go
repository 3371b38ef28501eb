package bufmng

import (
	"testing"

	"github.com/sirkon/xferbuf/internal/types"
)

func TestNullManager(t *testing.T) {
	var m NullManager

	key := types.NewTransferKey(1, 1)

	if m.Create(key) != nil {
		t.Error("null manager must not create buffers")
	}
	if m.Access(key) != nil {
		t.Error("null manager must not hold buffers")
	}

	m.Remove(key)

	if !m.IsEmpty() {
		t.Error("null manager must always be empty")
	}
	if err := m.Close(); err != nil {
		t.Error(err)
	}
}
