package bufmng

import "github.com/sirkon/xferbuf/internal/logging"

// Option определение опции создания Manager.
type Option func(m *Manager, _ optionRestriction)

type optionRestriction struct{}

// WithLogger задаёт получателя уведомлений о заслуживающих внимания
// событиях: перенос буфера, неудача переноса, исчерпание пула.
// По умолчанию уведомления никуда не рассылаются.
func WithLogger(log logging.Logger) Option {
	return func(m *Manager, _ optionRestriction) {
		m.log = log
	}
}
