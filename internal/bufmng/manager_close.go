package bufmng

import "github.com/sirkon/xferbuf/internal/types"

// Close детерминированное освобождение ресурсов: каждая динамическая
// запись возвращает свои блоки в пул, статические слоты освобождаются.
// Повторный вызов безопасен.
func (m *Manager) Close() error {
	for n := m.dynamics.First(); n != nil; {
		next := n.Next()
		de := n.Value()
		m.dynamics.Delete(n)
		de.reset()
		n = next
	}

	for i := range m.statics {
		m.statics[i].reset(types.TransferKey{})
	}

	return nil
}
