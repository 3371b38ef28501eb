package types

import "fmt"

// NewTransferKey конструктор ключа буфера сборки.
func NewTransferKey(node NodeID, ttype TransferType) TransferKey {
	return TransferKey{
		Node: node,
		Type: ttype,
	}
}

// TransferKey идентификатор слота сборки: узел-отправитель плюс
// категория передачи. Сравнение структурное. Нулевое значение является
// "пустым" ключом, оно не идентифицирует никакую реальную передачу и
// используется как признак свободного слота.
type TransferKey struct {
	Node NodeID
	Type TransferType
}

// IsEmpty true если ключ пустой, т.е. не идентифицирует передачу.
func (k TransferKey) IsEmpty() bool {
	return !k.Node.IsValid()
}

// String для использования в контексте ошибок и логировании.
func (k TransferKey) String() string {
	if k.IsEmpty() {
		return "<empty>"
	}

	return fmt.Sprintf("node %d / type %d", k.Node, k.Type)
}
