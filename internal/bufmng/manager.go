package bufmng

import (
	"github.com/sirkon/errors"
	"github.com/sirkon/xferbuf/internal/dllist"
	"github.com/sirkon/xferbuf/internal/logging"
	"github.com/sirkon/xferbuf/internal/types"
)

// New конструктор управления буферами сборки. Параметр maxBufSize
// задаёт одновременно и ёмкость каждого из staticCount статических
// слотов, и потолок роста динамических буферов: одна и та же константа
// гарантирует, что содержимое динамического буфера всегда помещается
// в статический слот при миграции. Все параметры фиксируются на всё
// время жизни объекта.
func New(maxBufSize, staticCount int, alloc Allocator, opts ...Option) (*Manager, error) {
	if maxBufSize <= 0 {
		return nil, errors.New("max buffer size must be positive").Int("invalid-max-buf-size", maxBufSize)
	}

	if staticCount < 0 {
		return nil, errors.New("static slot count must not be negative").Int("invalid-static-count", staticCount)
	}

	if alloc == nil {
		return nil, errors.New("allocator is required")
	}

	if alloc.BlockSize() <= 0 {
		return nil, errors.New("allocator block size must be positive").Int("invalid-block-size", alloc.BlockSize())
	}

	m := &Manager{
		statics:    make([]staticEntry, staticCount),
		dynamics:   dllist.New[*dynamicEntry](),
		alloc:      alloc,
		maxBufSize: maxBufSize,
	}

	for i := range m.statics {
		m.statics[i].buf.data = make([]byte, maxBufSize)
	}

	for _, opt := range opts {
		opt(m, optionRestriction{})
	}

	return m, nil
}

// Manager хранилище буферов сборки. Владеет статическими слотами,
// списком динамических записей и всеми блоками пула до которых можно
// дотянуться через них. WARNING: не предоставляет гарантий безопасности
// при многопоточном доступе, рассчитан на вызовы из единственного
// цикла обработки кадров.
type Manager struct {
	statics    []staticEntry
	dynamics   *dllist.DLList[*dynamicEntry]
	alloc      Allocator
	maxBufSize int
	log        logging.Logger
}

// Create идемпотентно заводит единственный пустой буфер под данным
// ключом: существующая запись предварительно удаляется. Статические
// слоты предпочитаются как не несущие ни риска выделения, ни нагрузки
// на пул; динамический буфер это путь переполнения. nil возвращается
// при пустом ключе либо при исчерпании пула, в этом случае никакой
// записи под ключом не остаётся.
func (m *Manager) Create(key types.TransferKey) Buffer {
	if key.IsEmpty() {
		return nil
	}

	m.Remove(key)

	if se := m.findStatic(types.TransferKey{}); se != nil {
		se.reset(key)
		return se
	}

	de, ok := newDynamicEntry(key, m.alloc, m.maxBufSize)
	if !ok {
		if m.log != nil {
			m.log.BufferAllocationFailed(key)
		}

		return nil
	}

	m.dynamics.Push(de)

	return de
}

// Access выдаёт живой буфер под данным ключом. Сначала просматриваются
// статические слоты, затем динамический список. Побочных эффектов нет.
func (m *Manager) Access(key types.TransferKey) Buffer {
	if key.IsEmpty() {
		return nil
	}

	if se := m.findStatic(key); se != nil {
		return se
	}

	if n := m.findDynamic(key); n != nil {
		return n.Value()
	}

	return nil
}

// Remove удаляет запись под данным ключом. Освобождение статического
// слота даёт возможность разгрузить пул, поэтому сразу же запускается
// перенос динамических записей в статические слоты. Удаление
// динамической записи слотов не освобождает и переноса не требует.
func (m *Manager) Remove(key types.TransferKey) {
	if key.IsEmpty() {
		return
	}

	if se := m.findStatic(key); se != nil {
		se.reset(types.TransferKey{})
		m.optimizeStorage()
		return
	}

	if n := m.findDynamic(key); n != nil {
		de := n.Value()
		m.dynamics.Delete(n)
		de.reset()
	}
}

func (m *Manager) findStatic(key types.TransferKey) *staticEntry {
	for i := range m.statics {
		if m.statics[i].key == key {
			return &m.statics[i]
		}
	}

	return nil
}

func (m *Manager) findDynamic(key types.TransferKey) *dllist.Node[*dynamicEntry] {
	for n := m.dynamics.First(); n != nil; n = n.Next() {
		if n.Value().key == key {
			return n
		}
	}

	return nil
}

var _ Store = &Manager{}
