package bufmng

import "github.com/sirkon/xferbuf/internal/types"

// NullManager хранилище нулевой ёмкости, для случаев когда буферизация
// сборки не нужна вовсе: например, для категорий передач состоящих из
// единственного кадра. Никакой памяти не резервирует.
type NullManager struct{}

// Create всегда nil, буферизация отключена.
func (NullManager) Create(types.TransferKey) Buffer {
	return nil
}

// Access всегда nil.
func (NullManager) Access(types.TransferKey) Buffer {
	return nil
}

// Remove ничего не делает.
func (NullManager) Remove(types.TransferKey) {}

// IsEmpty всегда true.
func (NullManager) IsEmpty() bool {
	return true
}

// Close ничего не делает.
func (NullManager) Close() error {
	return nil
}

var _ Store = NullManager{}
