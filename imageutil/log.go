package imageutil

import (
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var logger atomic.Pointer[log.Logger]

// SetLogger replaces the logger used for non-fatal warnings. A nil logger
// restores log.Default().
func SetLogger(l *log.Logger) {
	logger.Store(l)
}

func pkgLogger() *log.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return log.Default()
}
