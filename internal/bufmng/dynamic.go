package bufmng

import "github.com/sirkon/xferbuf/internal/types"

// newDynamicEntry создание динамической записи. Первый блок выделяется
// сразу же, это "посадочное место" записи в пуле: при исчерпании пула
// создание завершается неудачей и никаких следов в пуле не остаётся.
func newDynamicEntry(key types.TransferKey, alloc Allocator, maxSize int) (*dynamicEntry, bool) {
	first, ok := alloc.AllocBlock()
	if !ok {
		return nil, false
	}

	return &dynamicEntry{
		key:     key,
		alloc:   alloc,
		blocks:  [][]byte{first},
		maxSize: maxSize,
	}, true
}

// dynamicEntry запись с данными лежащими в цепочке блоков пула.
// Блоки упорядочены по возрастанию смещения и покрывают диапазон
// [0, len(blocks)*BlockSize) без дыр. Цепочка наращивается лениво,
// по мере того как запись уходит за покрытый диапазон, но никогда
// не выходит за maxSize.
type dynamicEntry struct {
	key         types.TransferKey
	alloc       Allocator
	blocks      [][]byte
	maxWritePos int
	maxSize     int
}

// ReadAt для реализации Buffer. Чтение идёт по цепочке блоков
// с переходом через их границы.
func (e *dynamicEntry) ReadAt(offset int, dst []byte) (int, error) {
	if offset < 0 {
		return 0, errNegativeOffset(offset)
	}

	if offset >= e.maxWritePos {
		return 0, nil
	}

	if rest := e.maxWritePos - offset; len(dst) > rest {
		dst = dst[:rest]
	}

	bsize := e.alloc.BlockSize()
	var read int
	for read < len(dst) {
		pos := offset + read
		read += copy(dst[read:], e.blocks[pos/bsize][pos%bsize:])
	}

	return read, nil
}

// WriteAt для реализации Buffer. Поддерживается запись в произвольном
// порядке смещений, недостающие блоки довыделяются из пула. Если пул
// исчерпался посреди роста, записывается покрытая часть: вызывающая
// сторона узнаёт об этом по возвращённому числу байтов.
func (e *dynamicEntry) WriteAt(offset int, src []byte) (int, error) {
	if offset < 0 {
		return 0, errNegativeOffset(offset)
	}

	if offset >= e.maxSize {
		return 0, nil
	}

	if rest := e.maxSize - offset; len(src) > rest {
		src = src[:rest]
	}

	bsize := e.alloc.BlockSize()
	end := offset + len(src)
	for len(e.blocks)*bsize < end {
		b, ok := e.alloc.AllocBlock()
		if !ok {
			end = len(e.blocks) * bsize
			break
		}

		e.blocks = append(e.blocks, b)
	}

	if end <= offset {
		return 0, nil
	}

	var written int
	for written < end-offset {
		pos := offset + written
		written += copy(e.blocks[pos/bsize][pos%bsize:], src[written:end-offset])
	}

	if offset+written > e.maxWritePos {
		e.maxWritePos = offset + written
	}

	return written, nil
}

// reset возврат всех блоков в пул и перевод записи в пустое состояние.
// Повторный вызов безопасен.
func (e *dynamicEntry) reset() {
	for _, b := range e.blocks {
		e.alloc.FreeBlock(b)
	}

	e.blocks = nil
	e.maxWritePos = 0
	e.key = types.TransferKey{}
}

// size объём записанных данных в байтах.
func (e *dynamicEntry) size() int {
	return e.maxWritePos
}

var _ Buffer = &dynamicEntry{}
