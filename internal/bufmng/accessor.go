package bufmng

import (
	"github.com/sirkon/errors"
	"github.com/sirkon/xferbuf/internal/types"
)

// NewAccessor конструктор обёртки связывающей хранилище с ключом для
// повторяющихся обращений. Пустой ключ является нарушением контракта
// вызывающей стороны.
func NewAccessor(store Store, key types.TransferKey) (Accessor, error) {
	if store == nil {
		return Accessor{}, errors.New("store is required")
	}

	if key.IsEmpty() {
		return Accessor{}, errors.New("transfer key must not be empty")
	}

	return Accessor{
		store: store,
		key:   key,
	}, nil
}

// Accessor обёртка для удобства: хранилище плюс ключ. Собственного
// состояния не имеет, все вызовы просто переадресуются хранилищу.
type Accessor struct {
	store Store
	key   types.TransferKey
}

// Access см. Store.Access.
func (a Accessor) Access() Buffer {
	return a.store.Access(a.key)
}

// Create см. Store.Create.
func (a Accessor) Create() Buffer {
	return a.store.Create(a.key)
}

// Remove см. Store.Remove.
func (a Accessor) Remove() {
	a.store.Remove(a.key)
}
