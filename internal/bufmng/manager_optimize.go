package bufmng

import "github.com/sirkon/xferbuf/internal/types"

// optimizeStorage перенос динамических записей в освободившиеся
// статические слоты ради снижения нагрузки на пул. Жадная процедура:
// пока находится пара свободный слот + динамическая запись, переносится
// первая запись списка. Запускается только реактивно, из Remove.
func (m *Manager) optimizeStorage() {
	for !m.dynamics.IsEmpty() {
		se := m.findStatic(types.TransferKey{})
		if se == nil {
			break
		}

		n := m.dynamics.First()
		de := n.Value()
		if !se.migrateFrom(de) {
			// Содержимое динамической записи не поместилось в слот.
			// В нормальной работе это невозможно, рост динамических
			// буферов ограничен той же константой что и ёмкость слота.
			// Запись остаётся динамической, проход прекращается.
			if m.log != nil {
				m.log.BufferMigrationFailed(de.key, de.size(), m.maxBufSize)
			}

			break
		}

		if m.log != nil {
			m.log.BufferMigrated(se.key, se.buf.maxWritePos)
		}

		m.dynamics.Delete(n)
		de.reset()
	}
}
