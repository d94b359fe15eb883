package testutil

import (
	"io"

	"github.com/foodygo/identity-server/internal/logger"
)

// MakeNoopLogger returns a Logger that discards everything.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}
