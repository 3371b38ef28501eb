package bufmng

import "github.com/sirkon/xferbuf/internal/types"

// Buffer минимальная абстракция поверх байтового хранилища слота сборки.
// Не зависит от яруса в котором физически лежат данные. Ссылка действительна
// до ближайшего Remove или Create по тому же ключу.
type Buffer interface {
	// ReadAt чтение в dst начиная с данного смещения. Возвращается число
	// скопированных байтов, оно ограничено наибольшей записанной позицией.
	// Чтение за пределами записанного это не ошибка, просто данных нет.
	ReadAt(offset int, dst []byte) (int, error)
	// WriteAt запись src начиная с данного смещения. Возвращается число
	// записанных байтов, запись за пределами ёмкости обрезается.
	// Вызывающая сторона обязана проверять именно возвращённое число,
	// а не предполагать полную запись.
	WriteAt(offset int, src []byte) (int, error)
}

// Allocator возможность синхронного выделения блоков фиксированного
// размера из ограниченного пула. Реализация не должна блокироваться:
// при исчерпании пула выделение сразу же завершается неудачей.
type Allocator interface {
	AllocBlock() ([]byte, bool)
	FreeBlock(b []byte)
	BlockSize() int
}

// Store общий интерфейс хранилища буферов сборки. Реализуется как
// полноценным Manager, так и NullManager нулевой ёмкости.
type Store interface {
	// Create идемпотентно заводит единственный пустой буфер под данным
	// ключом. nil означает что буферизация невозможна и передачу
	// следует отбросить.
	Create(key types.TransferKey) Buffer
	// Access выдаёт живой буфер под данным ключом, nil если такого нет.
	Access(key types.TransferKey) Buffer
	// Remove удаляет буфер под данным ключом вместе с его содержимым.
	Remove(key types.TransferKey)
	// IsEmpty true если нет ни одной живой записи.
	IsEmpty() bool
}
