package logging

import "github.com/sirkon/xferbuf/internal/types"

// Logger абстракция предназначенная для логирования в строго определённых
// ситуациях. Реализация логирования должна делаться пользователями
// библиотеки.
type Logger interface {
	// BufferMigrated динамический буфер перенесён в статический слот.
	BufferMigrated(key types.TransferKey, size int)
	// BufferMigrationFailed содержимое динамического буфера не поместилось
	// в статический слот. В нормальной работе такого быть не должно.
	BufferMigrationFailed(key types.TransferKey, size int, capacity int)
	// BufferAllocationFailed не удалось выделить динамический буфер
	// из-за исчерпания пула.
	BufferAllocationFailed(key types.TransferKey)
}
