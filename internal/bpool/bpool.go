package bpool

import (
	"github.com/sirkon/errors"
)

// New конструктор пула блоков фиксированного размера. Вся память
// выделяется одним куском в момент создания, дальнейших выделений
// пул не производит.
func New(blockSize, blockCount int) (*Pool, error) {
	if blockSize <= 0 {
		return nil, errors.New("block size must be positive").Int("invalid-block-size", blockSize)
	}

	if blockCount <= 0 {
		return nil, errors.New("block count must be positive").Int("invalid-block-count", blockCount)
	}

	p := &Pool{
		arena:     make([]byte, blockSize*blockCount),
		free:      make([][]byte, 0, blockCount),
		busy:      make(map[*byte]struct{}, blockCount),
		blockSize: blockSize,
	}

	for i := blockCount - 1; i >= 0; i-- {
		p.free = append(p.free, p.arena[i*blockSize:(i+1)*blockSize:(i+1)*blockSize])
	}

	return p, nil
}

// Pool пул блоков фиксированного размера поверх единственной арены.
// Свободные блоки лежат в стеке, выделение и возврат за O(1).
// WARNING: не предоставляет гарантий безопасности при многопоточном
// доступе.
type Pool struct {
	arena     []byte
	free      [][]byte
	busy      map[*byte]struct{}
	blockSize int
}

// AllocBlock выдача свободного блока. Возвращает false если свободных
// блоков не осталось, никакого ожидания при этом не производится.
func (p *Pool) AllocBlock() ([]byte, bool) {
	if len(p.free) == 0 {
		return nil, false
	}

	b := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.busy[&b[0]] = struct{}{}

	return b, true
}

// FreeBlock возврат блока в пул. Блок не принадлежащий пулу или уже
// возвращённый является нарушением контракта вызывающей стороны,
// в этом случае происходит паника.
func (p *Pool) FreeBlock(b []byte) {
	if len(b) != p.blockSize {
		panic(errors.New("attempt to free a block of foreign size").
			Int("block-size", len(b)).
			Int("pool-block-size", p.blockSize))
	}

	if _, ok := p.busy[&b[0]]; !ok {
		panic(errors.New("attempt to free a block which was not taken from this pool"))
	}

	delete(p.busy, &b[0])
	p.free = append(p.free, b)
}

// BlockSize размер блока в байтах.
func (p *Pool) BlockSize() int {
	return p.blockSize
}

// Capacity общее число блоков в пуле.
func (p *Pool) Capacity() int {
	return len(p.arena) / p.blockSize
}

// FreeBlocks число свободных блоков на данный момент.
func (p *Pool) FreeBlocks() int {
	return len(p.free)
}
