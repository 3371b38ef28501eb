package dllist

// New конструктор пустого двусвязного списка.
func New[T any]() *DLList[T] {
	return &DLList[T]{}
}

// DLList двусвязный список с удалением произвольного узла за O(1).
// WARNING: не предоставляет гарантий безопасности при многопоточном
// доступе.
type DLList[T any] struct {
	first *Node[T]
	last  *Node[T]
	size  int
}

// Push добавление нового значения в конец списка с возвратом
// созданного узла.
func (l *DLList[T]) Push(v T) *Node[T] {
	n := &Node[T]{
		prev:  l.last,
		value: v,
	}
	l.size++

	if l.first == nil {
		l.first = n
		l.last = n
		return n
	}

	l.last.next = n
	l.last = n

	return n
}

// First получение первого узла списка. nil для пустого списка.
func (l *DLList[T]) First() *Node[T] {
	return l.first
}

// Delete удаление данного узла из списка.
func (l *DLList[T]) Delete(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	}

	if l.first == n {
		l.first = n.next
	}

	if l.last == n {
		l.last = n.prev
	}

	l.size--
	n.cleanup()
}

// Len число узлов в списке.
func (l *DLList[T]) Len() int {
	return l.size
}

// IsEmpty true если в списке нет узлов.
func (l *DLList[T]) IsEmpty() bool {
	return l.size == 0
}
