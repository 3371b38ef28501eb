package types

// MaxNodeID максимально допустимый идентификатор узла.
const MaxNodeID NodeID = 127

// NodeID идентификатор узла-отправителя. Нулевое значение и значения
// больше MaxNodeID корректными идентификаторами не являются.
type NodeID uint8

// IsValid true если идентификатор лежит в допустимом диапазоне.
func (n NodeID) IsValid() bool {
	return n > 0 && n <= MaxNodeID
}

// TransferType категория передачи. Значение непрозрачное, библиотека
// использует его исключительно для сравнения ключей.
type TransferType uint8
