package testlog_test

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/errors"
	"github.com/sirkon/xferbuf/internal/testlog"
)

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		testlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-ctxed-error", func(t *testing.T) {
		testlog.Log(t, errors.New("ctx error").Int("int", 12).Any("map", map[string]string{
			"a": "b",
		}).Str("string", "str").Bool("is-error", false))
	})
}
