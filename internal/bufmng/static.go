package bufmng

import "github.com/sirkon/xferbuf/internal/types"

// staticBuffer статический буфер фиксированной ёмкости с отметкой
// наибольшей записанной позиции. Выделяется один раз при создании
// Manager, никакого обращения к пулу не требует.
type staticBuffer struct {
	data        []byte
	maxWritePos int
}

func (b *staticBuffer) readAt(offset int, dst []byte) (int, error) {
	if offset < 0 {
		return 0, errNegativeOffset(offset)
	}

	if offset >= b.maxWritePos {
		return 0, nil
	}

	return copy(dst, b.data[offset:b.maxWritePos]), nil
}

func (b *staticBuffer) writeAt(offset int, src []byte) (int, error) {
	if offset < 0 {
		return 0, errNegativeOffset(offset)
	}

	if offset >= len(b.data) {
		return 0, nil
	}

	n := copy(b.data[offset:], src)
	if offset+n > b.maxWritePos {
		b.maxWritePos = offset + n
	}

	return n, nil
}

// reset логическое стирание содержимого. Физическое зануление не
// требуется, чтение за пределами отметки и так ничего не возвращает.
func (b *staticBuffer) reset() {
	b.maxWritePos = 0
}

// staticEntry статический слот: ключ плюс статический буфер.
// Пустой ключ означает свободный слот.
type staticEntry struct {
	key types.TransferKey
	buf staticBuffer
}

// ReadAt для реализации Buffer.
func (e *staticEntry) ReadAt(offset int, dst []byte) (int, error) {
	return e.buf.readAt(offset, dst)
}

// WriteAt для реализации Buffer.
func (e *staticEntry) WriteAt(offset int, src []byte) (int, error) {
	return e.buf.writeAt(offset, src)
}

// reset перевод слота в новое состояние: пустой ключ освобождает слот,
// непустой закрепляет его за новой передачей. Содержимое стирается
// в любом случае.
func (e *staticEntry) reset(key types.TransferKey) {
	e.key = key
	e.buf.reset()
}

// migrateFrom перенос содержимого динамической записи в данный слот.
// Перед копированием проверяется, что содержимое помещается целиком:
// частичный перенос недопустим. Слот перенимает ключ источника.
func (e *staticEntry) migrateFrom(src *dynamicEntry) bool {
	size := src.size()
	if size > len(e.buf.data) {
		return false
	}

	e.buf.reset()
	n, err := src.ReadAt(0, e.buf.data[:size])
	if err != nil || n != size {
		e.reset(types.TransferKey{})
		return false
	}

	e.key = src.key
	e.buf.maxWritePos = n

	return true
}

var _ Buffer = &staticEntry{}
