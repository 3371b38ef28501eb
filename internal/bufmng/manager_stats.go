package bufmng

import (
	"golang.org/x/exp/slices"

	"github.com/sirkon/xferbuf/internal/types"
)

// IsEmpty true если нет ни одной живой записи.
func (m *Manager) IsEmpty() bool {
	return m.NumStaticBuffers() == 0 && m.NumDynamicBuffers() == 0
}

// NumStaticBuffers число занятых статических слотов.
func (m *Manager) NumStaticBuffers() int {
	var res int
	for i := range m.statics {
		if !m.statics[i].key.IsEmpty() {
			res++
		}
	}

	return res
}

// NumDynamicBuffers число живых динамических записей.
func (m *Manager) NumDynamicBuffers() int {
	return m.dynamics.Len()
}

// Keys отсортированный снимок ключей всех живых записей.
func (m *Manager) Keys() []types.TransferKey {
	keys := make([]types.TransferKey, 0, len(m.statics)+m.dynamics.Len())
	for i := range m.statics {
		if !m.statics[i].key.IsEmpty() {
			keys = append(keys, m.statics[i].key)
		}
	}
	for n := m.dynamics.First(); n != nil; n = n.Next() {
		keys = append(keys, n.Value().key)
	}

	slices.SortFunc(keys, func(a, b types.TransferKey) bool {
		if a.Node != b.Node {
			return a.Node < b.Node
		}

		return a.Type < b.Type
	})

	return keys
}
